// Package scene locates InSAR result rasters by naming convention inside a
// results directory and derives the per-scene output file set.
package scene

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Role names the logical function of a raster within a scene.
type Role string

const (
	RoleDEM           Role = "dem"
	RoleInterferogram Role = "interferogram"
	RoleCorrelation   Role = "correlation"
)

// RequiredRoles must each resolve to exactly one input file during discovery.
var RequiredRoles = []Role{RoleDEM, RoleInterferogram}

// OutputRoles are the roles a conversion run produces files for.
var OutputRoles = []Role{RoleDEM, RoleInterferogram, RoleCorrelation}

// Filename conventions of ISCE2-style result directories.
const (
	// DEMSuffix marks a WGS84-referenced elevation model reference.
	DEMSuffix = "dem.wgs84.vrt"

	// FlatInterferogramName is the interferogram reference when results are
	// laid out flat in the base directory.
	FlatInterferogramName = "filtPhase.cor.vrt"

	// InterferogramSubdir and SubdirInterferogramName locate the
	// interferogram reference in the subdirectory layout.
	InterferogramSubdir     = "interferogram"
	SubdirInterferogramName = "filt_topophase.unw.vrt"
)

// Variant selects the discovery strategy for a results directory layout.
type Variant string

const (
	// VariantFlat expects filtPhase.cor.vrt directly in the base directory.
	VariantFlat Variant = "flat"

	// VariantSubdir expects filt_topophase.unw.vrt under interferogram/.
	VariantSubdir Variant = "subdir"
)

// ParseVariant validates a variant name from a flag or config value.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantFlat, VariantSubdir:
		return Variant(s), nil
	}
	return "", fmt.Errorf("unknown discovery variant %q (want %q or %q)", s, VariantFlat, VariantSubdir)
}

// InterferogramName returns the exact interferogram basename for the variant.
func (v Variant) InterferogramName() string {
	if v == VariantFlat {
		return FlatInterferogramName
	}
	return SubdirInterferogramName
}

// IsDEMName reports whether a basename satisfies the DEM naming predicate.
func IsDEMName(name string) bool {
	return strings.HasSuffix(name, DEMSuffix)
}

// LooksLikeDEM reports whether a path refers to an elevation model. The
// converter uses it to decide if a raster should keep its own referencing
// instead of borrowing the reference DEM's.
func LooksLikeDEM(path string) bool {
	return strings.Contains(filepath.Base(path), "dem")
}
