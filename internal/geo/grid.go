package geo

// ComplexGrid is a row-major complex-valued pixel grid, as read from an
// interferogram band. Row 0 is the top (northernmost) raster row.
type ComplexGrid struct {
	Width, Height int
	Data          []complex64
}

// NewComplexGrid allocates a zeroed grid.
func NewComplexGrid(width, height int) *ComplexGrid {
	return &ComplexGrid{Width: width, Height: height, Data: make([]complex64, width*height)}
}

// At returns the sample at the given column and raster row.
func (g *ComplexGrid) At(col, row int) complex64 {
	return g.Data[row*g.Width+col]
}

// Band is one plane of a multi-band raster write: Float32 samples plus the
// human-readable description stored with the band.
type Band struct {
	Description string
	Data        []float32
}
