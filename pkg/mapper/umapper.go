package mapper

import (
	"github.com/charmbracelet/log"

	"github.com/ledgrid/panelmap/pkg/errors"
)

// UArrangementMapper folds a long chain of panels into a U-shape, bending
// around after half the panels and continuing below. A single-chain display
// of four 32x32 panels:
//
//	[<][<][<][<] }- controller connector
//
// arranged in a U-shape becomes a 64x64 display:
//
//	[<][<] }----- controller connector
//	[>][>]
//
// This works for multiple parallel chains as well; each chain folds into its
// own two-row slab:
//
//	[<][<][<][<]  }-- connector #1
//	[>][>][>][>]
//	[<][<][<][<]  }-- connector #2
//	[>][>][>][>]
type UArrangementMapper struct {
	log      *log.Logger
	parallel int
}

// NewUArrangementMapper creates an unconfigured U-mapper.
func NewUArrangementMapper(logger *log.Logger) *UArrangementMapper {
	return &UArrangementMapper{log: logger.WithPrefix("U-mapper"), parallel: 1}
}

// Name implements PixelMapper.
func (m *UArrangementMapper) Name() string { return "U-mapper" }

// SetParameters implements PixelMapper. Folding needs an even chain of at
// least two panels; a chain of two works but four is where it gets useful.
func (m *UArrangementMapper) SetParameters(chain, parallel int, param string) error {
	if chain < 2 {
		m.log.Error("need at least chain=4 for useful folding")
		return errors.New(errors.ErrCodeInvalidTopology, "%s: need at least chain=4 for useful folding", m.Name())
	}
	if chain%2 != 0 {
		m.log.Error("chain needs to be divisible by two")
		return errors.New(errors.ErrCodeInvalidTopology, "%s: chain needs to be divisible by two", m.Name())
	}
	m.parallel = parallel
	return nil
}

// VisibleSize implements PixelMapper. The width divides at the 32px panel
// boundary; the height doubles because each chain contributes two rows.
func (m *UArrangementMapper) VisibleSize(matrixWidth, matrixHeight int) (int, int, error) {
	if matrixHeight%m.parallel != 0 {
		m.log.Errorf("for parallel=%d we would expect the height=%d to be divisible by %d",
			m.parallel, matrixHeight, m.parallel)
		return 0, 0, errors.New(errors.ErrCodeInvalidSize,
			"%s: height %d not divisible by parallel %d", m.Name(), matrixHeight, m.parallel)
	}
	return (matrixWidth / 64) * 32, 2 * matrixHeight, nil
}

// MapVisibleToMatrix implements PixelMapper. Each folded U-shape occupies a
// slab of two panel-heights; the upper half maps onto the far half of the
// chain, the lower half folds back reversed in both axes.
func (m *UArrangementMapper) MapVisibleToMatrix(matrixWidth, matrixHeight, x, y int) (int, int) {
	panelHeight := matrixHeight / m.parallel
	visibleWidth := (matrixWidth / 64) * 32
	slabHeight := 2 * panelHeight // one folded u-shape
	baseY := (y / slabHeight) * panelHeight
	y %= slabHeight
	if y < panelHeight {
		x += matrixWidth / 2
	} else {
		x = visibleWidth - x - 1
		y = slabHeight - y - 1
	}
	return x, baseY + y
}
