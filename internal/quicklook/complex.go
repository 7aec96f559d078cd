// Package quicklook renders complex interferogram rasters as two-panel
// amplitude/phase images and annotated multi-band GeoTIFFs.
package quicklook

import (
	"math"
	"math/cmplx"

	"github.com/sardata/insarlook/internal/geo"
)

// Planes is the decomposition of a complex raster into the planes the
// quicklook outputs are built from. Amplitude and phase are NaN where the
// source sample was exact zero; Mask is 1 where data is valid, else 0.
type Planes struct {
	Width, Height int
	Amplitude     []float64
	Phase         []float64
	Mask          []uint8
}

// Decompose splits a complex grid into amplitude, phase (radians) and
// validity planes. Exact-zero samples are the no-data convention of the
// upstream processor and become NaN.
func Decompose(grid *geo.ComplexGrid) *Planes {
	n := grid.Width * grid.Height
	p := &Planes{
		Width:     grid.Width,
		Height:    grid.Height,
		Amplitude: make([]float64, n),
		Phase:     make([]float64, n),
		Mask:      make([]uint8, n),
	}
	for i, v := range grid.Data {
		if v == 0 {
			p.Amplitude[i] = math.NaN()
			p.Phase[i] = math.NaN()
			continue
		}
		c := complex128(v)
		p.Amplitude[i] = cmplx.Abs(c)
		p.Phase[i] = cmplx.Phase(c)
		p.Mask[i] = 1
	}
	return p
}

// toFloat32 converts a float64 plane to the Float32 samples written out.
func toFloat32(vals []float64) []float32 {
	out := make([]float32, len(vals))
	for i, v := range vals {
		out[i] = float32(v)
	}
	return out
}

// maskToFloat32 widens the validity mask to the Float32 band type.
func maskToFloat32(mask []uint8) []float32 {
	out := make([]float32, len(mask))
	for i, v := range mask {
		out[i] = float32(v)
	}
	return out
}
