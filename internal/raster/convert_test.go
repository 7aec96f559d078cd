package raster

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airbusgeo/godal"

	"github.com/sardata/insarlook/internal/geo"
	"github.com/sardata/insarlook/internal/monitoring"
)

func init() {
	monitoring.SetLogger(nil)
}

func TestBorrowsReferencing(t *testing.T) {
	t.Parallel()

	// The interferogram-derived outputs adopt the DEM's registration.
	assert.True(t, borrowsReferencing("/data/SceneA/interferogram/filt_topophase.unw.vrt", "/data/SceneA/d.dem.wgs84.vrt"))

	// The DEM keeps its own even though the batch could pass a reference.
	assert.False(t, borrowsReferencing("/data/SceneA/d.dem.wgs84.vrt", "/data/SceneA/d.dem.wgs84.vrt"))

	// No reference, nothing to borrow.
	assert.False(t, borrowsReferencing("/data/SceneA/interferogram/filt_topophase.unw.vrt", ""))

	// Only the basename decides; a "dem" parent directory is not a DEM.
	assert.True(t, borrowsReferencing("/data/dem-project/filt_topophase.unw.vrt", "/data/dem-project/d.dem.wgs84.vrt"))
}

func TestWarnGridMismatch(t *testing.T) {
	var lines []string
	monitoring.SetLogger(func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})
	defer monitoring.SetLogger(nil)

	// Matching grids stay silent.
	assert.False(t, warnGridMismatch("ifg.vrt", "out.tif", "dem.vrt", 100, 80, 100, 80))
	assert.Empty(t, lines)

	// A differing reference grid warns and names every path involved.
	assert.True(t, warnGridMismatch("ifg.vrt", "out.tif", "dem.vrt", 100, 80, 120, 80))
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "misregistered")
	assert.Contains(t, lines[0], "ifg.vrt")
	assert.Contains(t, lines[0], "dem.vrt")
	assert.Contains(t, lines[0], "out.tif")
}

// gdalTest skips unless the GDAL-backed tests are enabled; they need the
// GDAL shared library at run time.
func gdalTest(t *testing.T) {
	t.Helper()
	if os.Getenv("INSARLOOK_GDAL_TESTS") == "" {
		t.Skip("set INSARLOOK_GDAL_TESTS=1 to run tests against the GDAL library")
	}
	register()
}

// wgs84WKT returns a well-formed WKT to stamp on test rasters.
func wgs84WKT(t *testing.T) string {
	t.Helper()
	sr, err := godal.NewSpatialRefFromEPSG(4326)
	require.NoError(t, err)
	defer sr.Close()
	wkt, err := sr.WKT()
	require.NoError(t, err)
	return wkt
}

// writeTestRaster creates a Float32 GeoTIFF with sequential pixel values per
// band and the given referencing.
func writeTestRaster(t *testing.T, path string, nBands, width, height int, ref geo.Referencing) [][]float32 {
	t.Helper()
	ds, err := godal.Create(godal.GTiff, path, nBands, godal.Float32, width, height)
	require.NoError(t, err)
	require.NoError(t, applyReferencing(ds, ref))

	bands := make([][]float32, nBands)
	for b := range bands {
		buf := make([]float32, width*height)
		for i := range buf {
			buf[i] = float32(b*1000 + i)
		}
		require.NoError(t, ds.Bands()[b].Write(0, 0, buf, width, height))
		bands[b] = buf
	}
	require.NoError(t, ds.Close())
	return bands
}

// readBack returns the single band and referencing of a converted output.
func readBack(t *testing.T, path string) ([]float32, geo.Referencing) {
	t.Helper()
	ds, err := open(path)
	require.NoError(t, err)
	defer ds.Close()

	st := ds.Structure()
	require.Equal(t, 1, st.NBands)
	buf := make([]float32, st.SizeX*st.SizeY)
	require.NoError(t, ds.Bands()[0].Read(0, 0, buf, st.SizeX, st.SizeY))
	return buf, referencing(ds)
}

func TestConvertRoundTripSelfReferenced(t *testing.T) {
	gdalTest(t)
	dir := t.TempDir()

	src := filepath.Join(dir, "a.dem.wgs84.tif")
	own := geo.Referencing{Transform: [6]float64{136, 0.25, 0, 38, 0, -0.5}, WKT: wgs84WKT(t)}
	bands := writeTestRaster(t, src, 1, 5, 4, own)

	out := filepath.Join(dir, "a_dem.tif")
	require.NoError(t, Convert(src, out, "", 1))

	got, ref := readBack(t, out)
	if diff := cmp.Diff(bands[0], got); diff != "" {
		t.Errorf("pixel mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, own.Transform, ref.Transform)
	assert.NotEmpty(t, ref.WKT)
}

func TestConvertRoundTripBorrowsDEMReferencing(t *testing.T) {
	gdalTest(t)
	dir := t.TempDir()

	demRef := geo.Referencing{Transform: [6]float64{136, 0.25, 0, 38, 0, -0.5}, WKT: wgs84WKT(t)}
	dem := filepath.Join(dir, "a.dem.wgs84.tif")
	writeTestRaster(t, dem, 1, 5, 4, demRef)

	// Unregistered two-band interferogram of the same grid.
	ifg := filepath.Join(dir, "filt_topophase.unw.tif")
	bands := writeTestRaster(t, ifg, 2, 5, 4, geo.Identity())

	out := filepath.Join(dir, "a_correlation.tif")
	require.NoError(t, Convert(ifg, out, dem, 2))

	got, ref := readBack(t, out)
	if diff := cmp.Diff(bands[1], got); diff != "" {
		t.Errorf("pixel mismatch (-want +got):\n%s", diff)
	}

	// The output carries the DEM's registration wholly, never a mix of the
	// two sources.
	assert.Equal(t, demRef.Transform, ref.Transform)
	assert.NotEmpty(t, ref.WKT)
}

func TestConvertRejectsBandOutOfRange(t *testing.T) {
	gdalTest(t)
	dir := t.TempDir()

	src := filepath.Join(dir, "a.dem.wgs84.tif")
	writeTestRaster(t, src, 1, 3, 3, geo.Identity())

	err := Convert(src, filepath.Join(dir, "out.tif"), "", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}
