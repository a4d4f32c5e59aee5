package mapper

import (
	"github.com/charmbracelet/log"

	"github.com/ledgrid/panelmap/pkg/errors"
)

// MirrorMapper flips the entire visible canvas horizontally or vertically.
// The parameter is a single character, 'H' (default) or 'V', matched
// case-insensitively. The visible canvas keeps the physical size.
type MirrorMapper struct {
	log        *log.Logger
	horizontal bool
}

// NewMirrorMapper creates an unconfigured Mirror mapper.
func NewMirrorMapper(logger *log.Logger) *MirrorMapper {
	return &MirrorMapper{log: logger.WithPrefix("Mirror"), horizontal: true}
}

// Name implements PixelMapper.
func (m *MirrorMapper) Name() string { return "Mirror" }

// SetParameters implements PixelMapper. A parameter longer than one
// character is diagnosed, but its first character is still interpreted.
func (m *MirrorMapper) SetParameters(chain, parallel int, param string) error {
	if param == "" {
		m.horizontal = true
		return nil
	}
	if len(param) != 1 {
		m.log.Errorf("parameter should be a single character: 'V' or 'H', got %q", param)
	}

	switch param[0] {
	case 'V', 'v':
		m.horizontal = false
	case 'H', 'h':
		m.horizontal = true
	default:
		m.log.Errorf("parameter should be either 'V' or 'H', got %q", param)
		return errors.New(errors.ErrCodeInvalidParameter, "%s: parameter should be 'V' or 'H'", m.Name())
	}
	return nil
}

// VisibleSize implements PixelMapper.
func (m *MirrorMapper) VisibleSize(matrixWidth, matrixHeight int) (int, int, error) {
	return matrixWidth, matrixHeight, nil
}

// MapVisibleToMatrix implements PixelMapper.
func (m *MirrorMapper) MapVisibleToMatrix(matrixWidth, matrixHeight, x, y int) (int, int) {
	if m.horizontal {
		return matrixWidth - 1 - x, y
	}
	return x, matrixHeight - 1 - y
}
