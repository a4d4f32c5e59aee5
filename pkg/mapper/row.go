package mapper

import (
	"github.com/charmbracelet/log"

	"github.com/ledgrid/panelmap/pkg/errors"
)

// rowMode selects how the parallel chains are unrolled into one row.
type rowMode int

const (
	rowNormal rowMode = iota
	rowBandHorizontal
	rowBandVertical
)

// RowArrangementMapper collapses parallel stacked chains into one wide
// logical row. Six panels wired as three parallel chains of two
// (chain=2, parallel=3):
//
//	[<][<]
//	[<][<]
//	[<][<]
//
// appear to the application as one long row:
//
//	[<][<][<][<][<][<]
//
// This is useful when running code written for a single chain on an adapter
// with multiple parallel chains.
//
// The band modes support scrolling around the sides of a panel cube: the
// visible row is shortened by the two panels that form the cube's top and
// bottom. Parameter "H" uses only the horizontal panel sides, "V" only the
// vertical ones (offsetting the row by one panel before unrolling).
type RowArrangementMapper struct {
	log      *log.Logger
	chain    int
	parallel int
	mode     rowMode
}

// NewRowArrangementMapper creates an unconfigured Row-mapper.
func NewRowArrangementMapper(logger *log.Logger) *RowArrangementMapper {
	return &RowArrangementMapper{log: logger.WithPrefix("Row-mapper"), parallel: 1}
}

// Name implements PixelMapper.
func (m *RowArrangementMapper) Name() string { return "Row-mapper" }

// SetParameters implements PixelMapper. It requires parallel >= 2; a chain
// of one would technically work but is pointless. A parameter longer than
// one character is diagnosed and ignored; a single character other than
// 'H' or 'V' is rejected.
func (m *RowArrangementMapper) SetParameters(chain, parallel int, param string) error {
	if parallel < 2 {
		m.log.Error("need at least parallel=2 for usefulness")
		return errors.New(errors.ErrCodeInvalidTopology, "%s: need at least parallel=2", m.Name())
	}

	mode := rowNormal
	switch {
	case param == "":
	case len(param) != 1:
		m.log.Errorf("parameter should be a single character: 'V' or 'H', got %q", param)
	default:
		switch param[0] {
		case 'V', 'v':
			mode = rowBandVertical
		case 'H', 'h':
			mode = rowBandHorizontal
		default:
			m.log.Errorf("parameter should be either 'V' or 'H', got %q", param)
			return errors.New(errors.ErrCodeInvalidParameter, "%s: parameter should be 'V' or 'H'", m.Name())
		}
	}

	m.chain = chain
	m.parallel = parallel
	m.mode = mode
	return nil
}

// VisibleSize implements PixelMapper. The band modes drop two panel-widths
// from the unrolled row.
func (m *RowArrangementMapper) VisibleSize(matrixWidth, matrixHeight int) (int, int, error) {
	panelWidth := matrixWidth / m.chain

	switch m.mode {
	case rowBandHorizontal, rowBandVertical:
		return matrixWidth*m.parallel - panelWidth*2, matrixHeight / m.parallel, nil
	default:
		return matrixWidth * m.parallel, matrixHeight / m.parallel, nil
	}
}

// MapVisibleToMatrix implements PixelMapper. The slab of panel-height rows
// is picked by how many whole matrix-widths fit into x.
func (m *RowArrangementMapper) MapVisibleToMatrix(matrixWidth, matrixHeight, x, y int) (int, int) {
	panelHeight := matrixHeight / m.parallel
	panelWidth := matrixWidth / m.chain

	switch m.mode {
	case rowBandVertical:
		return (x + panelWidth) % matrixWidth, ((x+panelWidth)/matrixWidth)*panelHeight + y
	default: // rowNormal and rowBandHorizontal share the plain unroll
		return x % matrixWidth, (x/matrixWidth)*panelHeight + y
	}
}
