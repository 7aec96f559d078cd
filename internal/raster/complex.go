package raster

import (
	"fmt"

	"github.com/airbusgeo/godal"

	"github.com/sardata/insarlook/internal/geo"
)

// ReadComplex reads a complex-valued band (1-indexed) into memory along with
// the raster's referencing. Real-valued bands are accepted too: GDAL
// promotes the samples, leaving zero imaginary parts.
func ReadComplex(path string, band int) (*geo.ComplexGrid, geo.Referencing, error) {
	ds, err := open(path)
	if err != nil {
		return nil, geo.Referencing{}, err
	}
	defer ds.Close()

	st := ds.Structure()
	if band < 1 || band > st.NBands {
		return nil, geo.Referencing{}, fmt.Errorf("read %s: band %d out of range (raster has %d bands)", path, band, st.NBands)
	}

	grid := geo.NewComplexGrid(st.SizeX, st.SizeY)
	if err := ds.Bands()[band-1].Read(0, 0, grid.Data, st.SizeX, st.SizeY); err != nil {
		return nil, geo.Referencing{}, fmt.Errorf("read %s band %d: %w", path, band, err)
	}
	return grid, referencing(ds), nil
}

// WriteMultiband writes Float32 bands with per-band descriptions to a
// GeoTIFF. A referencing without a CRS defaults to WGS84 (EPSG:4326).
func WriteMultiband(path string, width, height int, ref geo.Referencing, bands []geo.Band) error {
	register()
	ds, err := godal.Create(godal.GTiff, path, len(bands), godal.Float32, width, height)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if ref.WKT == "" {
		sr, err := godal.NewSpatialRefFromEPSG(4326)
		if err != nil {
			ds.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		wkt, err := sr.WKT()
		sr.Close()
		if err != nil {
			ds.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		ref.WKT = wkt
	}
	if err := applyReferencing(ds, ref); err != nil {
		ds.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	for i, b := range bands {
		gb := ds.Bands()[i]
		if err := gb.Write(0, 0, b.Data, width, height); err != nil {
			ds.Close()
			return fmt.Errorf("write %s band %d: %w", path, i+1, err)
		}
		if b.Description != "" {
			if err := gb.SetDescription(b.Description); err != nil {
				ds.Close()
				return fmt.Errorf("write %s band %d description: %w", path, i+1, err)
			}
		}
	}
	return ds.Close()
}
