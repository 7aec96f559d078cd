// Package convert drives the per-role GeoTIFF conversion jobs. It is
// deliberately free of GDAL: the actual raster copy is injected as a
// ConvertFunc so batch semantics test hermetically.
package convert

import (
	"github.com/sardata/insarlook/internal/monitoring"
	"github.com/sardata/insarlook/internal/scene"
)

// ConvertFunc copies one band of the raster at input into a single-band
// Float32 GeoTIFF at output, optionally borrowing georeferencing from the
// raster at reference.
type ConvertFunc func(input, output, reference string, band int) error

// Job is one conversion: a source raster band and its destination.
type Job struct {
	Role      scene.Role
	Input     string
	Output    string
	Reference string
	Band      int
}

// Jobs assembles the fixed conversion set for a scene: the DEM keeps its own
// referencing; the interferogram's two bands (phase, correlation) borrow the
// DEM's.
func Jobs(files scene.Files, outputs scene.Outputs) []Job {
	dem := files[scene.RoleDEM]
	ifg := files[scene.RoleInterferogram]
	return []Job{
		{Role: scene.RoleDEM, Input: dem, Output: outputs[scene.RoleDEM], Band: 1},
		{Role: scene.RoleInterferogram, Input: ifg, Output: outputs[scene.RoleInterferogram], Reference: dem, Band: 1},
		{Role: scene.RoleCorrelation, Input: ifg, Output: outputs[scene.RoleCorrelation], Reference: dem, Band: 2},
	}
}

// RunBatch executes every job with best-effort semantics: a failing job is
// logged and counted but never blocks its siblings. Returns the number of
// failed jobs.
func RunBatch(fn ConvertFunc, jobs []Job) int {
	failed := 0
	for _, job := range jobs {
		if err := fn(job.Input, job.Output, job.Reference, job.Band); err != nil {
			monitoring.Errorf("%s conversion failed: %v", job.Role, err)
			failed++
			continue
		}
		monitoring.Infof("%s conversion completed: %s", job.Role, job.Output)
	}
	return failed
}
