package quicklook

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/sardata/insarlook/internal/geo"
)

// RenderOptions control the two-panel quicklook figure.
type RenderOptions struct {
	Title string

	// Aspect scales the vertical extent relative to the horizontal one,
	// like the aspect of the original figures. Zero means 1.
	Aspect float64

	// DataMin/DataMax fix the amplitude stretch. When nil the stretch
	// defaults to the 2-98 percent amplitude quantiles.
	DataMin, DataMax *float64

	DrawColorbar        bool
	ColorbarOrientation string // "horizontal" (default) or "vertical"
}

const (
	panelWidth    = 6 * vg.Inch
	panelPad      = 0.2 * vg.Inch
	colorbarDepth = 0.9 * vg.Inch
)

// PNGPath derives the quicklook image path from the GeoTIFF output path by
// replacing the extension.
func PNGPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
}

// Render draws the amplitude and phase panels side by side over the given
// geographic extent and writes the figure as a PNG.
func Render(p *Planes, b geo.Bounds, path string, opts RenderOptions) error {
	ampMin, ampMax := amplitudeStretch(p.Amplitude, opts.DataMin, opts.DataMax)

	ampPlot := panelPlot(opts.Title+" (amplitude)", p.Amplitude, p, b, Grays(256), ampMin, ampMax)
	phasePlot := panelPlot(opts.Title+" (phase [rad])", p.Phase, p, b, Cyclic(256), -math.Pi, math.Pi)

	vertical := opts.ColorbarOrientation == "vertical"
	width := 2*panelWidth + panelPad
	height := panelHeight(b, opts.Aspect)
	if opts.DrawColorbar {
		if vertical {
			width += 2 * colorbarDepth
		} else {
			height += colorbarDepth
		}
	}

	img := vgimg.New(width, height)
	dc := draw.New(img)

	halfW := width / 2
	halves := []draw.Canvas{
		draw.Crop(dc, 0, -halfW, 0, 0),
		draw.Crop(dc, halfW, 0, 0, 0),
	}
	panels := []*plot.Plot{ampPlot, phasePlot}
	bars := []*plot.Plot{
		colorbarPlot(newLinearMap(Grays(256)), ampMin, ampMax, vertical),
		colorbarPlot(newLinearMap(Cyclic(256)), -math.Pi, math.Pi, vertical),
	}

	for i, half := range halves {
		if !opts.DrawColorbar {
			panels[i].Draw(half)
			continue
		}
		if vertical {
			main, strip := splitRight(half, colorbarDepth)
			panels[i].Draw(main)
			bars[i].Draw(strip)
		} else {
			main, strip := splitBottom(half, colorbarDepth)
			panels[i].Draw(main)
			bars[i].Draw(strip)
		}
	}

	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	// A failed close can mean a truncated file, so it is not ignored.
	if err := w.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// amplitudeStretch picks the display range: explicit limits win, otherwise
// the 2-98 percent quantiles of the valid amplitudes.
func amplitudeStretch(amplitude []float64, dataMin, dataMax *float64) (float64, float64) {
	valid := make([]float64, 0, len(amplitude))
	for _, v := range amplitude {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}

	lo, hi := 0.0, 1.0
	if len(valid) > 0 {
		sort.Float64s(valid)
		lo = stat.Quantile(0.02, stat.Empirical, valid, nil)
		hi = stat.Quantile(0.98, stat.Empirical, valid, nil)
	}
	if dataMin != nil {
		lo = *dataMin
	}
	if dataMax != nil {
		hi = *dataMax
	}
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// panelHeight approximates the figure aspect from the geographic extent.
func panelHeight(b geo.Bounds, aspect float64) vg.Length {
	if aspect == 0 {
		aspect = 1
	}
	ratio := 1.0
	if b.Width() > 0 {
		ratio = b.Height() * aspect / b.Width()
	}
	ratio = math.Min(math.Max(ratio, 0.25), 2.5)
	return vg.Length(float64(panelWidth) * ratio)
}

// panelPlot builds one heatmap panel with a fixed palette range. NaN cells
// are left undrawn by the heatmap plotter, which is how missing data ends up
// transparent.
func panelPlot(title string, vals []float64, p *Planes, b geo.Bounds, pal palette.Palette, lo, hi float64) *plot.Plot {
	pl := plot.New()
	pl.Title.Text = strings.TrimSpace(title)
	h := plotter.NewHeatMap(&plane{vals: vals, width: p.Width, height: p.Height, b: b}, pal)
	h.Min, h.Max = lo, hi
	pl.Add(h)
	return pl
}

// colorbarPlot builds a standalone colorbar for one panel's value range.
func colorbarPlot(cm *linearMap, lo, hi float64, vertical bool) *plot.Plot {
	cm.SetMin(lo)
	cm.SetMax(hi)
	cb := &plotter.ColorBar{ColorMap: cm}
	cb.Vertical = vertical
	pl := plot.New()
	pl.Add(cb)
	if vertical {
		pl.HideX()
	} else {
		pl.HideY()
	}
	return pl
}

// splitBottom carves a strip of the given height off the bottom of a canvas.
func splitBottom(c draw.Canvas, h vg.Length) (main, strip draw.Canvas) {
	total := c.Max.Y - c.Min.Y
	main = draw.Crop(c, 0, 0, h, 0)
	strip = draw.Crop(c, 0, 0, 0, h-total)
	return main, strip
}

// splitRight carves a strip of the given width off the right of a canvas.
func splitRight(c draw.Canvas, w vg.Length) (main, strip draw.Canvas) {
	total := c.Max.X - c.Min.X
	main = draw.Crop(c, 0, -w, 0, 0)
	strip = draw.Crop(c, total-w, 0, 0, 0)
	return main, strip
}

// plane adapts one value plane to the heatmap's grid interface. Raster row 0
// is the top of the image, while the plot's Y grows upward, so rows are
// flipped on access.
type plane struct {
	vals          []float64
	width, height int
	b             geo.Bounds
}

func (g *plane) Dims() (c, r int) { return g.width, g.height }

func (g *plane) Z(c, r int) float64 {
	return g.vals[(g.height-1-r)*g.width+c]
}

func (g *plane) X(c int) float64 {
	return g.b.Left + (float64(c)+0.5)*g.b.Width()/float64(g.width)
}

func (g *plane) Y(r int) float64 {
	return g.b.Bottom + (float64(r)+0.5)*g.b.Height()/float64(g.height)
}
