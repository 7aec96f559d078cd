// Command plot-complex renders a complex interferogram raster as a two-panel
// amplitude/phase quicklook PNG plus a 3-band annotated GeoTIFF. The
// OUTPUT_DIR environment variable overrides the default output root.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/sardata/insarlook/internal/config"
	"github.com/sardata/insarlook/internal/monitoring"
	"github.com/sardata/insarlook/internal/quicklook"
	"github.com/sardata/insarlook/internal/raster"
)

var (
	input       = flag.String("input", "", "complex interferogram raster (required)")
	demFile     = flag.String("dem", "", "DEM whose referencing is borrowed when the input has none")
	output      = flag.String("output", "", "output GeoTIFF path (default: <output root>/<input base>.tif)")
	title       = flag.String("title", "", "plot title")
	datamin     = flag.Float64("datamin", math.NaN(), "fixed amplitude display minimum")
	datamax     = flag.Float64("datamax", math.NaN(), "fixed amplitude display maximum")
	aspect      = flag.Float64("aspect", 0, "figure aspect ratio (default from config)")
	colorbar    = flag.Bool("colorbar", false, "draw colorbars under the panels")
	orientation = flag.String("colorbar-orientation", "", "colorbar orientation: horizontal or vertical")
	configPath  = flag.String("config", "", "optional JSON config file")
)

func main() {
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "--input is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		monitoring.Errorf("%v", err)
		os.Exit(1)
	}

	out := *output
	if out == "" {
		root := os.Getenv("OUTPUT_DIR")
		if root == "" {
			root = cfg.GetOutputDir()
		}
		base := filepath.Base(*input)
		out = filepath.Join(root, strings.TrimSuffix(base, filepath.Ext(base))+".tif")
	}

	opts := quicklook.Options{
		Reference:           *demFile,
		Title:               *title,
		Aspect:              *aspect,
		DataMin:             optFloat(*datamin, cfg.GetDataMin()),
		DataMax:             optFloat(*datamax, cfg.GetDataMax()),
		DrawColorbar:        *colorbar || cfg.GetDrawColorbar(),
		ColorbarOrientation: *orientation,
	}
	if opts.Title == "" {
		opts.Title = cfg.GetPlotTitle()
	}
	if opts.Aspect == 0 {
		opts.Aspect = cfg.GetAspect()
	}
	if opts.ColorbarOrientation == "" {
		opts.ColorbarOrientation = cfg.GetColorbarOrientation()
	}

	if err := quicklook.Plot(raster.IO{}, *input, out, opts); err != nil {
		monitoring.Errorf("%v", err)
		os.Exit(1)
	}
}

// optFloat resolves an optional stretch limit: a set flag wins, then the
// config value, else nil for the automatic stretch.
func optFloat(flagVal float64, fallback *float64) *float64 {
	if !math.IsNaN(flagVal) {
		return &flagVal
	}
	return fallback
}
