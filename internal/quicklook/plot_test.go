package quicklook

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sardata/insarlook/internal/geo"
	"github.com/sardata/insarlook/internal/monitoring"
)

func init() {
	monitoring.SetLogger(nil)
}

// fakeRasterIO serves a synthetic complex grid and records the multiband
// write.
type fakeRasterIO struct {
	grid    *geo.ComplexGrid
	ref     geo.Referencing
	demRef  geo.Referencing
	readErr error

	wrotePath  string
	wroteRef   geo.Referencing
	wroteBands []geo.Band
}

func (f *fakeRasterIO) ReadComplex(path string, band int) (*geo.ComplexGrid, geo.Referencing, error) {
	if f.readErr != nil {
		return nil, geo.Referencing{}, f.readErr
	}
	return f.grid, f.ref, nil
}

func (f *fakeRasterIO) Referencing(path string) (geo.Referencing, error) {
	return f.demRef, nil
}

func (f *fakeRasterIO) WriteMultiband(path string, width, height int, ref geo.Referencing, bands []geo.Band) error {
	f.wrotePath = path
	f.wroteRef = ref
	f.wroteBands = bands
	return nil
}

func northUpRef() geo.Referencing {
	return geo.Referencing{
		Transform: [6]float64{136, 0.25, 0, 38, 0, -0.5},
		WKT:       `GEOGCS["WGS 84"]`,
	}
}

func TestPlotWritesBothArtifacts(t *testing.T) {
	g := geo.NewComplexGrid(4, 4)
	for i := range g.Data {
		g.Data[i] = complex(1, 1)
	}
	g.Data[5] = 0

	fake := &fakeRasterIO{grid: g, ref: northUpRef()}
	out := filepath.Join(t.TempDir(), "ifg.tif")

	err := Plot(fake, "/data/ifg.vrt", out, Options{Title: "IFG"})
	require.NoError(t, err)

	// Sibling PNG with the extension replaced.
	_, err = os.Stat(PNGPath(out))
	require.NoError(t, err)

	// 3-band GeoTIFF with the fixed descriptions.
	assert.Equal(t, out, fake.wrotePath)
	require.Len(t, fake.wroteBands, 3)
	assert.Equal(t, DescAmplitude, fake.wroteBands[0].Description)
	assert.Equal(t, DescPhase, fake.wroteBands[1].Description)
	assert.Equal(t, DescMask, fake.wroteBands[2].Description)

	// Mask is 0 exactly at the zero entry, 1 elsewhere.
	for i, v := range fake.wroteBands[2].Data {
		if i == 5 {
			assert.Equal(t, float32(0), v)
			assert.True(t, math.IsNaN(float64(fake.wroteBands[0].Data[i])))
		} else {
			assert.Equal(t, float32(1), v, "index %d", i)
		}
	}

	// Referencing passed through untouched.
	assert.Equal(t, northUpRef(), fake.wroteRef)
}

func TestPlotBorrowsReferencingWhenIdentity(t *testing.T) {
	g := geo.NewComplexGrid(2, 2)
	for i := range g.Data {
		g.Data[i] = complex(1, 0)
	}

	fake := &fakeRasterIO{grid: g, ref: geo.Identity(), demRef: northUpRef()}
	out := filepath.Join(t.TempDir(), "ifg.tif")

	err := Plot(fake, "/data/ifg.vrt", out, Options{Reference: "/data/dem.vrt"})
	require.NoError(t, err)
	assert.Equal(t, northUpRef(), fake.wroteRef)
}

func TestPlotKeepsIdentityWithoutReference(t *testing.T) {
	g := geo.NewComplexGrid(2, 2)
	for i := range g.Data {
		g.Data[i] = complex(1, 0)
	}

	fake := &fakeRasterIO{grid: g, ref: geo.Identity()}
	out := filepath.Join(t.TempDir(), "ifg.tif")

	err := Plot(fake, "/data/ifg.vrt", out, Options{})
	require.NoError(t, err)
	assert.True(t, fake.wroteRef.IsIdentity())
}

func TestPlotPropagatesReadFailure(t *testing.T) {
	fake := &fakeRasterIO{readErr: errors.New("open failed")}
	err := Plot(fake, "/data/ifg.vrt", "/out/ifg.tif", Options{})
	require.Error(t, err)
	assert.Empty(t, fake.wrotePath)
}
