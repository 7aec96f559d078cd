// Package raster reads and writes rasters through GDAL (via godal). It is
// the only package that touches the raster library; everything above it
// works on the types in internal/geo.
package raster

import (
	"fmt"
	"sync"

	"github.com/airbusgeo/godal"

	"github.com/sardata/insarlook/internal/geo"
)

var registerOnce sync.Once

// register loads the GDAL drivers. Safe to call from every entry point.
func register() {
	registerOnce.Do(godal.RegisterAll)
}

// open wraps godal.Open with driver registration and a path-naming error.
func open(path string) (*godal.Dataset, error) {
	register()
	ds, err := godal.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return ds, nil
}

// referencing extracts the dataset's geotransform and CRS. Datasets without
// registration yield the identity referencing.
func referencing(ds *godal.Dataset) geo.Referencing {
	ref := geo.Identity()
	if gt, err := ds.GeoTransform(); err == nil {
		ref.Transform = gt
	}
	if sr := ds.SpatialRef(); sr != nil {
		if wkt, err := sr.WKT(); err == nil {
			ref.WKT = wkt
		}
	}
	return ref
}

// applyReferencing stamps a referencing onto a freshly created dataset. An
// empty WKT leaves the dataset without a CRS.
func applyReferencing(ds *godal.Dataset, ref geo.Referencing) error {
	if err := ds.SetGeoTransform(ref.Transform); err != nil {
		return fmt.Errorf("set geotransform: %w", err)
	}
	if ref.WKT == "" {
		return nil
	}
	sr, err := godal.NewSpatialRefFromWKT(ref.WKT)
	if err != nil {
		return fmt.Errorf("parse CRS: %w", err)
	}
	defer sr.Close()
	if err := ds.SetSpatialRef(sr); err != nil {
		return fmt.Errorf("set CRS: %w", err)
	}
	return nil
}

// Referencing returns the georeferencing of the raster at path.
func Referencing(path string) (geo.Referencing, error) {
	ds, err := open(path)
	if err != nil {
		return geo.Referencing{}, err
	}
	defer ds.Close()
	return referencing(ds), nil
}

// IO adapts the package-level functions to the narrow interfaces consumed by
// the plotting pipeline.
type IO struct{}

// ReadComplex reads a complex band. See ReadComplex.
func (IO) ReadComplex(path string, band int) (*geo.ComplexGrid, geo.Referencing, error) {
	return ReadComplex(path, band)
}

// Referencing returns a raster's georeferencing. See Referencing.
func (IO) Referencing(path string) (geo.Referencing, error) {
	return Referencing(path)
}

// WriteMultiband writes a multi-band Float32 GeoTIFF. See WriteMultiband.
func (IO) WriteMultiband(path string, width, height int, ref geo.Referencing, bands []geo.Band) error {
	return WriteMultiband(path, width, height, ref, bands)
}
