package mapper

import (
	"strings"

	"github.com/ledgrid/panelmap/pkg/errors"
)

// Sequence is an ordered composition of configured mappers. The first
// mapper in the list is applied directly to the physical matrix; every
// following mapper sees the visible canvas of the one before it as its
// matrix. A typical folded-and-rotated display:
//
//	seq, err := mapper.ParseSequence(reg, "U-mapper;Rotate:90", chain, parallel)
//
// Sequence satisfies the same VisibleSize/MapVisibleToMatrix shape as a
// single PixelMapper and is immutable after construction.
type Sequence struct {
	stages []PixelMapper
	spec   string
}

// NewSequence composes already-configured mappers. Stages apply in the
// given order, starting at the physical matrix.
func NewSequence(stages ...PixelMapper) *Sequence {
	names := make([]string, len(stages))
	for i, m := range stages {
		names[i] = m.Name()
	}
	return &Sequence{stages: stages, spec: strings.Join(names, ";")}
}

// ParseSequence builds a Sequence from a semicolon-separated mapper list.
// Each element is a mapper name optionally followed by a colon and its
// parameter string, e.g. "U-mapper;Rotate:90". Empty elements are skipped;
// an entirely empty list is an error. Every element is resolved through the
// registry with the given topology.
func ParseSequence(reg *Registry, spec string, chain, parallel int) (*Sequence, error) {
	var stages []PixelMapper
	for _, part := range strings.Split(spec, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, param := part, ""
		if i := strings.IndexByte(part, ':'); i >= 0 {
			name, param = part[:i], part[i+1:]
		}

		m, err := reg.Find(name, chain, parallel, param)
		if err != nil {
			return nil, err
		}
		stages = append(stages, m)
	}

	if len(stages) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "empty pixel-mapper list %q", spec)
	}
	return &Sequence{stages: stages, spec: spec}, nil
}

// String returns the textual form the sequence was built from.
func (s *Sequence) String() string { return s.spec }

// Stages returns the composed mappers in application order.
func (s *Sequence) Stages() []PixelMapper { return s.stages }

// VisibleSize folds VisibleSize through every stage, starting at the
// physical matrix size.
func (s *Sequence) VisibleSize(matrixWidth, matrixHeight int) (int, int, error) {
	w, h := matrixWidth, matrixHeight
	for _, m := range s.stages {
		var err error
		w, h, err = m.VisibleSize(w, h)
		if err != nil {
			return 0, 0, err
		}
	}
	return w, h, nil
}

// MapVisibleToMatrix maps a coordinate in the final visible canvas down
// through every stage to the physical matrix.
func (s *Sequence) MapVisibleToMatrix(matrixWidth, matrixHeight, x, y int) (int, int) {
	return s.down(len(s.stages), matrixWidth, matrixHeight, x, y)
}

// down maps (x, y), expressed in the visible canvas of stages[:n], onto the
// physical matrix of size (w, h). Stage sizes are recomputed on the way
// down; stage counts are tiny, so this stays allocation-free constant work.
func (s *Sequence) down(n, w, h, x, y int) (int, int) {
	if n == 0 {
		return x, y
	}
	uw, uh := w, h
	for _, m := range s.stages[:n-1] {
		uw, uh, _ = m.VisibleSize(uw, uh)
	}
	x, y = s.stages[n-1].MapVisibleToMatrix(uw, uh, x, y)
	return s.down(n-1, w, h, x, y)
}
