package raster

import (
	"fmt"

	"github.com/airbusgeo/godal"

	"github.com/sardata/insarlook/internal/geo"
	"github.com/sardata/insarlook/internal/monitoring"
	"github.com/sardata/insarlook/internal/scene"
)

// Convert copies one band (1-indexed) of the raster at input into a
// single-band Float32 GeoTIFF at output.
//
// When reference is non-empty and the input does not look like an elevation
// model itself, the output adopts the reference raster's geotransform and
// CRS instead of the input's own. No resampling happens: the pixel array is
// written as-is under the borrowed referencing, so a reference grid of
// different geometry produces misregistered output. A dimension mismatch is
// logged loudly for that reason.
func Convert(input, output, reference string, band int) error {
	src, err := open(input)
	if err != nil {
		return err
	}
	defer src.Close()

	st := src.Structure()
	if band < 1 || band > st.NBands {
		return fmt.Errorf("read %s: band %d out of range (raster has %d bands)", input, band, st.NBands)
	}

	buf := make([]float32, st.SizeX*st.SizeY)
	if err := src.Bands()[band-1].Read(0, 0, buf, st.SizeX, st.SizeY); err != nil {
		return fmt.Errorf("read %s band %d: %w", input, band, err)
	}

	ref := referencing(src)
	if borrowsReferencing(input, reference) {
		refDS, err := open(reference)
		if err != nil {
			return err
		}
		borrowed := referencing(refDS)
		rst := refDS.Structure()
		if cerr := refDS.Close(); cerr != nil {
			return fmt.Errorf("close %s: %w", reference, cerr)
		}
		warnGridMismatch(input, output, reference, st.SizeX, st.SizeY, rst.SizeX, rst.SizeY)
		ref = borrowed
	}

	return writeFloat32(output, st.SizeX, st.SizeY, ref, buf)
}

// borrowsReferencing reports whether the output should adopt the reference
// raster's registration instead of the input's own. An elevation model keeps
// its own referencing even when a reference is supplied.
func borrowsReferencing(input, reference string) bool {
	return reference != "" && !scene.LooksLikeDEM(input)
}

// warnGridMismatch logs when borrowed referencing comes from a grid of a
// different geometry. The pixel array is copied unresampled, so the output
// will be misregistered. Reports whether the grids differ.
func warnGridMismatch(input, output, reference string, srcW, srcH, refW, refH int) bool {
	if srcW == refW && srcH == refH {
		return false
	}
	monitoring.Warnf("referencing borrowed from %s (%dx%d) does not match grid of %s (%dx%d); %s may be misregistered",
		reference, refW, refH, input, srcW, srcH, output)
	return true
}

// writeFloat32 writes a single Float32 band under the given referencing.
func writeFloat32(output string, width, height int, ref geo.Referencing, buf []float32) error {
	dst, err := godal.Create(godal.GTiff, output, 1, godal.Float32, width, height)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	if err := applyReferencing(dst, ref); err != nil {
		dst.Close()
		return fmt.Errorf("write %s: %w", output, err)
	}
	if err := dst.Bands()[0].Write(0, 0, buf, width, height); err != nil {
		dst.Close()
		return fmt.Errorf("write %s: %w", output, err)
	}
	return dst.Close()
}
