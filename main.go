// Command insarlook converts InSAR processing results referenced through VRT
// files into standalone GeoTIFF outputs: the DEM, the filtered interferogram
// phase and the correlation map, one single-band Float32 file each.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sardata/insarlook/internal/config"
	"github.com/sardata/insarlook/internal/convert"
	"github.com/sardata/insarlook/internal/fsutil"
	"github.com/sardata/insarlook/internal/monitoring"
	"github.com/sardata/insarlook/internal/raster"
	"github.com/sardata/insarlook/internal/scene"
	"github.com/sardata/insarlook/internal/version"
)

var (
	inputDir    = flag.String("input-dir", "", "InSAR results directory (required)")
	outputDir   = flag.String("output-dir", "", "output root for GeoTIFF files (default from config)")
	configPath  = flag.String("config", "", "optional JSON config file")
	variantName = flag.String("variant", "", "results layout: flat or subdir (default from config)")
	showVersion = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("insarlook %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}
	if *inputDir == "" {
		fmt.Fprintln(os.Stderr, "--input-dir is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		monitoring.Errorf("%v", err)
		os.Exit(1)
	}

	if err := run(fsutil.OSFileSystem{}, raster.Convert, cfg, *inputDir, *outputDir, *variantName); err != nil {
		monitoring.Errorf("%v", err)
		os.Exit(1)
	}
}

// run executes discovery, validation, output path building and the batch
// conversion. Discovery and validation errors are fatal and returned;
// individual conversion failures are logged inside the batch and leave the
// run successful so whatever outputs could be produced survive.
func run(fsys fsutil.FileSystem, fn convert.ConvertFunc, cfg *config.Config, inputDir, outputRoot, variantName string) error {
	if variantName == "" {
		variantName = cfg.GetVariant()
	}
	variant, err := scene.ParseVariant(variantName)
	if err != nil {
		return err
	}
	if outputRoot == "" {
		outputRoot = cfg.GetOutputDir()
	}

	files, err := scene.Locate(fsys, inputDir, variant)
	if err != nil {
		return err
	}
	if err := scene.Validate(files, variant); err != nil {
		return err
	}

	sceneDir, outputs, err := scene.OutputPaths(fsys, outputRoot, inputDir)
	if err != nil {
		return err
	}
	monitoring.Infof("writing outputs to %s", sceneDir)

	jobs := convert.Jobs(files, outputs)
	if failed := convert.RunBatch(fn, jobs); failed > 0 {
		monitoring.Warnf("%d of %d conversions failed", failed, len(jobs))
	}
	return nil
}
