// Package geo holds the small shared geospatial types passed between the
// raster layer and the plotting pipeline: affine referencing and in-memory
// pixel grids.
package geo

// Referencing carries the geospatial registration of a raster: the affine
// transform in GDAL geotransform order (origin X, pixel width, row rotation,
// origin Y, column rotation, pixel height) and the coordinate reference
// system as WKT. An empty WKT means the raster carries no CRS.
type Referencing struct {
	Transform [6]float64
	WKT       string
}

// identityTransform is the geotransform GDAL reports for rasters without
// registration.
var identityTransform = [6]float64{0, 1, 0, 0, 0, 1}

// Identity returns a Referencing with the identity transform and no CRS.
func Identity() Referencing {
	return Referencing{Transform: identityTransform}
}

// IsIdentity reports whether the transform is the identity, the signal that
// the raster has no real geospatial registration.
func (r Referencing) IsIdentity() bool {
	return r.Transform == identityTransform
}

// Bounds is a geographic extent in the raster's CRS.
type Bounds struct {
	Left, Bottom, Right, Top float64
}

// Bounds maps the raster's pixel extent through the transform. Rotation terms
// are honoured by taking the envelope of all four corners.
func (r Referencing) Bounds(width, height int) Bounds {
	w, h := float64(width), float64(height)
	xs := make([]float64, 0, 4)
	ys := make([]float64, 0, 4)
	for _, c := range [][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		col, row := c[0], c[1]
		xs = append(xs, r.Transform[0]+col*r.Transform[1]+row*r.Transform[2])
		ys = append(ys, r.Transform[3]+col*r.Transform[4]+row*r.Transform[5])
	}
	b := Bounds{Left: xs[0], Right: xs[0], Bottom: ys[0], Top: ys[0]}
	for i := 1; i < 4; i++ {
		if xs[i] < b.Left {
			b.Left = xs[i]
		}
		if xs[i] > b.Right {
			b.Right = xs[i]
		}
		if ys[i] < b.Bottom {
			b.Bottom = ys[i]
		}
		if ys[i] > b.Top {
			b.Top = ys[i]
		}
	}
	return b
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.Top - b.Bottom }
