package mapper

import (
	"strings"

	"github.com/charmbracelet/log"
)

// VerticalMapper swaps the roles of chain and parallel, turning a wide
// physical arrangement into a tall logical one (or vice versa). With the
// optional "Z" parameter every other logical row of panels is mounted
// upside down so cabling between physically adjacent panels stays short:
//
//	[ O < I ]   without Z       [ O < I  ]
//	  ,---^      <----                ^
//	[ O < I ]                   [ I > O  ]
//	  ,---^            with Z     ^
//	[ O < I ]            --->   [ O < I  ]
type VerticalMapper struct {
	log      *log.Logger
	chain    int
	parallel int
	zigzag   bool
}

// NewVerticalMapper creates an unconfigured V-mapper.
func NewVerticalMapper(logger *log.Logger) *VerticalMapper {
	return &VerticalMapper{log: logger.WithPrefix("V-mapper")}
}

// Name implements PixelMapper.
func (m *VerticalMapper) Name() string { return "V-mapper" }

// SetParameters implements PixelMapper. The only recognized parameter is
// "Z" (case-insensitive); anything else leaves zigzag mounting off.
func (m *VerticalMapper) SetParameters(chain, parallel int, param string) error {
	m.chain = chain
	m.parallel = parallel
	m.zigzag = strings.EqualFold(param, "Z")
	return nil
}

// VisibleSize implements PixelMapper.
func (m *VerticalMapper) VisibleSize(matrixWidth, matrixHeight int) (int, int, error) {
	return matrixWidth * m.parallel / m.chain, matrixHeight * m.chain / m.parallel, nil
}

// MapVisibleToMatrix implements PixelMapper.
func (m *VerticalMapper) MapVisibleToMatrix(matrixWidth, matrixHeight, x, y int) (int, int) {
	panelWidth := matrixWidth / m.chain
	panelHeight := matrixHeight / m.parallel

	xPanelStart := y / panelHeight * panelWidth
	yPanelStart := x / panelWidth * panelHeight
	xWithinPanel := x % panelWidth
	yWithinPanel := y % panelHeight

	if m.zigzag && (y/panelHeight)%2 == 1 {
		return xPanelStart + (panelWidth - 1 - xWithinPanel),
			yPanelStart + (panelHeight - 1 - yWithinPanel)
	}
	return xPanelStart + xWithinPanel, yPanelStart + yWithinPanel
}
