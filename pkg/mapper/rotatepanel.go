package mapper

import (
	"github.com/charmbracelet/log"
)

// RotatePanelMapper rotates individual panels in place by 0, 90, 180 or 270
// degrees. The parameter string lists index|angle pairs, e.g. "0|90,2|180"
// rotates panel zero by 90 degrees and panel two by 180 degrees. Panels not
// listed keep their identity orientation. The visible canvas keeps the
// physical size.
//
// Malformed entries are diagnosed and skipped; the rest of the parameter
// string is still honored.
type RotatePanelMapper struct {
	log      *log.Logger
	chain    int
	parallel int
	angles   map[int]int // panel index -> rotation angle
}

// NewRotatePanelMapper creates an unconfigured Rotate-panel mapper.
func NewRotatePanelMapper(logger *log.Logger) *RotatePanelMapper {
	return &RotatePanelMapper{log: logger.WithPrefix("Rotate-panel")}
}

// Name implements PixelMapper.
func (m *RotatePanelMapper) Name() string { return "Rotate-panel" }

// SetParameters implements PixelMapper. Entry validation is fail-soft: a bad
// entry is logged and dropped, the remaining entries still apply, and
// configuration succeeds.
func (m *RotatePanelMapper) SetParameters(chain, parallel int, param string) error {
	m.chain = chain
	m.parallel = parallel
	m.angles = make(map[int]int)

	pairs, errs := parsePairList(param, chain*parallel-1)
	for _, err := range errs {
		m.log.Errorf("error in parameter string: %v", err)
	}
	for _, p := range pairs {
		if p.Value%90 != 0 {
			m.log.Errorf("invalid parameter value for rotation: %d", p.Value)
			continue
		}
		m.angles[p.Index] = p.Value % 360
	}
	return nil
}

// VisibleSize implements PixelMapper.
func (m *RotatePanelMapper) VisibleSize(matrixWidth, matrixHeight int) (int, int, error) {
	return matrixWidth, matrixHeight, nil
}

// MapVisibleToMatrix implements PixelMapper.
//
// The 180 and 270 degree branches mix panel columns and rows asymmetrically
// relative to the 90 degree branch. On non-square panels the two agree only
// for the deployed setups; do not normalize without checking real hardware.
func (m *RotatePanelMapper) MapVisibleToMatrix(matrixWidth, matrixHeight, x, y int) (int, int) {
	panelCols := matrixWidth / m.chain
	panelRows := matrixHeight / m.parallel

	panelNr, panelXNr, panelYNr := panelIndex(x, y, panelCols, panelRows, m.chain)

	angle, ok := m.angles[panelNr]
	if !ok {
		return x, y
	}

	// Convert from matrix coordinates to within-panel coordinates.
	panelX := x
	if panelXNr != 0 {
		panelX = x % (panelXNr * panelCols)
	}
	panelY := y
	if panelYNr != 0 {
		panelY = y % (panelYNr * panelRows)
	}

	switch angle {
	case 90:
		return panelXNr*panelCols + (panelCols - panelY - 1),
			panelYNr*panelRows + panelX
	case 180:
		return panelXNr*panelCols + (panelRows - panelX - 1),
			panelYNr*panelRows + (panelCols - panelY - 1)
	case 270:
		return panelXNr*panelCols + panelY,
			panelYNr*panelRows + (panelRows - panelX - 1)
	default: // 0
		return x, y
	}
}
