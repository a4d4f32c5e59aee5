package cli

import (
	"github.com/charmbracelet/log"

	"github.com/ledgrid/panelmap/pkg/config"
	"github.com/ledgrid/panelmap/pkg/mapper"
)

// display bundles a resolved configuration with its mapper sequence. A nil
// sequence means the identity mapping: the application draws straight onto
// the physical matrix.
type display struct {
	cfg config.Config
	seq *mapper.Sequence
}

// newDisplay resolves the configured mapper sequence against a fresh
// registry.
func newDisplay(cfg config.Config, logger *log.Logger) (*display, error) {
	reg := mapper.NewRegistry(logger)
	seq, err := cfg.Sequence(reg)
	if err != nil {
		return nil, err
	}
	return &display{cfg: cfg, seq: seq}, nil
}

// VisibleSize returns the canvas size an application should draw into.
func (d *display) VisibleSize() (int, int, error) {
	if d.seq == nil {
		return d.cfg.Width(), d.cfg.Height(), nil
	}
	return d.seq.VisibleSize(d.cfg.Width(), d.cfg.Height())
}

// Map translates one visible coordinate into a physical matrix coordinate.
func (d *display) Map(x, y int) (int, int) {
	if d.seq == nil {
		return x, y
	}
	return d.seq.MapVisibleToMatrix(d.cfg.Width(), d.cfg.Height(), x, y)
}

// MapperSpec returns the textual mapper sequence, or "none".
func (d *display) MapperSpec() string {
	if d.seq == nil {
		return "none"
	}
	return d.seq.String()
}
