package mapper

// PixelMapper transforms coordinates in the application-facing visible
// canvas into coordinates on the physically wired panel matrix.
//
// Implementations are configured exactly once through SetParameters and are
// immutable afterwards. Both VisibleSize and MapVisibleToMatrix are pure
// functions of the configuration and their arguments.
type PixelMapper interface {
	// Name returns the stable display name of the mapper. The registry keys
	// mappers by the case-folded form of this name.
	Name() string

	// SetParameters validates the wiring topology and parses the mapper's
	// parameter string. It must be called exactly once before any other
	// method. On failure the mapper is unusable; a human-readable diagnostic
	// naming the offending input has already been logged.
	SetParameters(chain, parallel int, param string) error

	// VisibleSize reports the size of the visible canvas an application
	// should draw into for the given physical matrix size. It fails when the
	// physical dimensions are incompatible with the configured topology.
	VisibleSize(matrixWidth, matrixHeight int) (width, height int, err error)

	// MapVisibleToMatrix maps one visible coordinate to its physical matrix
	// coordinate. It is defined for x in [0, visibleWidth) and y in
	// [0, visibleHeight); behavior outside that range is unspecified.
	MapVisibleToMatrix(matrixWidth, matrixHeight, x, y int) (matrixX, matrixY int)
}

// panelIndex returns the row-major index of the panel containing the matrix
// coordinate (x, y), together with the panel's grid position. Panels are
// numbered left to right within a chain, chains stacked top to bottom:
//
//	[0][1]    chain=2
//	[2][3]    parallel=2
func panelIndex(x, y, panelWidth, panelHeight, chain int) (index, panelX, panelY int) {
	panelX = x / panelWidth
	panelY = y / panelHeight
	return panelY*chain + panelX, panelX, panelY
}
