package quicklook

import (
	"fmt"

	"github.com/sardata/insarlook/internal/geo"
	"github.com/sardata/insarlook/internal/monitoring"
)

// RasterIO is the raster access the plotting pipeline needs. The production
// implementation is raster.IO; tests substitute fakes.
type RasterIO interface {
	ReadComplex(path string, band int) (*geo.ComplexGrid, geo.Referencing, error)
	Referencing(path string) (geo.Referencing, error)
	WriteMultiband(path string, width, height int, ref geo.Referencing, bands []geo.Band) error
}

// Fixed descriptions of the three output bands.
const (
	DescAmplitude = "Amplitude"
	DescPhase     = "Phase [rad]"
	DescMask      = "Valid data mask"
)

// Options mirror the plotting entry point's tunables.
type Options struct {
	// Reference is a DEM whose referencing is borrowed when the source
	// raster carries none.
	Reference string

	Title               string
	Aspect              float64
	DataMin, DataMax    *float64
	DrawColorbar        bool
	ColorbarOrientation string
}

// Plot reads band 1 of the complex raster, renders the two-panel PNG
// quicklook next to outputPath (extension replaced), and writes the 3-band
// amplitude/phase/mask GeoTIFF at outputPath. Unlike the batch converter,
// any failure aborts the whole call.
func Plot(rio RasterIO, rasterPath, outputPath string, opts Options) error {
	grid, ref, err := rio.ReadComplex(rasterPath, 1)
	if err != nil {
		return err
	}

	if ref.IsIdentity() && opts.Reference != "" {
		monitoring.Warnf("input %s has no geospatial referencing; using %s as reference", rasterPath, opts.Reference)
		ref, err = rio.Referencing(opts.Reference)
		if err != nil {
			return err
		}
	}

	planes := Decompose(grid)

	pngPath := PNGPath(outputPath)
	renderOpts := RenderOptions{
		Title:               opts.Title,
		Aspect:              opts.Aspect,
		DataMin:             opts.DataMin,
		DataMax:             opts.DataMax,
		DrawColorbar:        opts.DrawColorbar,
		ColorbarOrientation: opts.ColorbarOrientation,
	}
	if err := Render(planes, ref.Bounds(grid.Width, grid.Height), pngPath, renderOpts); err != nil {
		return fmt.Errorf("render quicklook: %w", err)
	}
	monitoring.Infof("wrote quicklook %s", pngPath)

	bands := []geo.Band{
		{Description: DescAmplitude, Data: toFloat32(planes.Amplitude)},
		{Description: DescPhase, Data: toFloat32(planes.Phase)},
		{Description: DescMask, Data: maskToFloat32(planes.Mask)},
	}
	if err := rio.WriteMultiband(outputPath, planes.Width, planes.Height, ref, bands); err != nil {
		return err
	}
	monitoring.Infof("wrote %s", outputPath)
	return nil
}
