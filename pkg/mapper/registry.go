package mapper

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ledgrid/panelmap/pkg/errors"
	"github.com/ledgrid/panelmap/pkg/observability"
)

// Factory constructs one unconfigured mapper instance. The logger is used
// for configuration diagnostics; implementations prefix it with their
// display name.
type Factory func(logger *log.Logger) PixelMapper

// Registry resolves mapper names to configured mapper instances.
//
// Names are matched case-insensitively; Names reports the display casing
// each mapper declares. Every Find constructs and configures a fresh
// instance, so the returned mapper is immutable and safe for concurrent use
// while the registry stays untouched.
//
// Populate the registry fully before any concurrent lookups: Register is not
// safe to call concurrently with Find.
type Registry struct {
	logger    *log.Logger
	factories map[string]Factory // key: case-folded display name
	names     map[string]string  // key: case-folded name, value: display name
}

// NewRegistry creates a registry with all seven built-in mappers registered.
// The logger receives configuration diagnostics, prefixed per mapper; nil
// falls back to the process default logger.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	r := &Registry{
		logger:    logger,
		factories: make(map[string]Factory),
		names:     make(map[string]string),
	}

	r.Register(func(l *log.Logger) PixelMapper { return NewRowArrangementMapper(l) })
	r.Register(func(l *log.Logger) PixelMapper { return NewRotatePanelMapper(l) })
	r.Register(func(l *log.Logger) PixelMapper { return NewReorderMapper(l) })
	r.Register(func(l *log.Logger) PixelMapper { return NewRotateMapper(l) })
	r.Register(func(l *log.Logger) PixelMapper { return NewMirrorMapper(l) })
	r.Register(func(l *log.Logger) PixelMapper { return NewUArrangementMapper(l) })
	r.Register(func(l *log.Logger) PixelMapper { return NewVerticalMapper(l) })

	return r
}

// Register adds a mapper factory under the case-folded form of the name the
// constructed mapper declares. The last registration for a name wins.
func (r *Registry) Register(f Factory) {
	name := f(r.logger).Name()
	key := strings.ToLower(name)
	r.factories[key] = f
	r.names[key] = name
}

// Find resolves name case-insensitively, constructs a fresh mapper and
// configures it with the given topology and parameter string.
//
// An unrecognized name yields an UNKNOWN_MAPPER error. A rejected parameter
// string yields the mapper's own error; the mapper has already logged a
// diagnostic naming the offending input.
func (r *Registry) Find(name string, chain, parallel int, param string) (PixelMapper, error) {
	f, ok := r.factories[strings.ToLower(name)]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownMapper, "%s: no such mapper", name)
	}

	observability.Mapper().OnLookup(r.names[strings.ToLower(name)])

	m := f(r.logger)
	if err := m.SetParameters(chain, parallel, param); err != nil {
		observability.Mapper().OnReject(m.Name(), err)
		return nil, err
	}

	observability.Mapper().OnConfigure(m.Name(), chain, parallel, param)
	return m, nil
}

// Names returns the display names of all registered mappers, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.names))
	for _, name := range r.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
