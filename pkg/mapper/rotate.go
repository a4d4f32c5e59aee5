package mapper

import (
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/ledgrid/panelmap/pkg/errors"
)

// RotateMapper rotates the entire visible canvas by a multiple of 90
// degrees. The parameter is a single signed decimal integer; negative
// values rotate the other way. For 90 and 270 degrees the visible width and
// height swap relative to the physical matrix.
type RotateMapper struct {
	log   *log.Logger
	angle int // normalized into [0, 360)
}

// NewRotateMapper creates an unconfigured Rotate mapper.
func NewRotateMapper(logger *log.Logger) *RotateMapper {
	return &RotateMapper{log: logger.WithPrefix("Rotate")}
}

// Name implements PixelMapper.
func (m *RotateMapper) Name() string { return "Rotate" }

// SetParameters implements PixelMapper. An empty parameter means no
// rotation. Anything that is not an integer multiple of 90 fails.
func (m *RotateMapper) SetParameters(chain, parallel int, param string) error {
	if param == "" {
		m.angle = 0
		return nil
	}

	angle, err := strconv.Atoi(param)
	if err != nil {
		m.log.Errorf("invalid rotate parameter %q", param)
		return errors.New(errors.ErrCodeInvalidParameter, "%s: invalid parameter %q", m.Name(), param)
	}
	if angle%90 != 0 {
		m.log.Error("rotation needs to be multiple of 90 degrees")
		return errors.New(errors.ErrCodeInvalidParameter, "%s: rotation needs to be multiple of 90 degrees", m.Name())
	}

	m.angle = ((angle % 360) + 360) % 360
	return nil
}

// VisibleSize implements PixelMapper.
func (m *RotateMapper) VisibleSize(matrixWidth, matrixHeight int) (int, int, error) {
	if m.angle%180 == 0 {
		return matrixWidth, matrixHeight, nil
	}
	return matrixHeight, matrixWidth, nil
}

// MapVisibleToMatrix implements PixelMapper.
func (m *RotateMapper) MapVisibleToMatrix(matrixWidth, matrixHeight, x, y int) (int, int) {
	switch m.angle {
	case 90:
		return matrixWidth - y - 1, x
	case 180:
		return matrixWidth - x - 1, matrixHeight - y - 1
	case 270:
		return y, matrixHeight - x - 1
	default: // 0
		return x, y
	}
}
