package scene

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sardata/insarlook/internal/fsutil"
	"github.com/sardata/insarlook/internal/monitoring"
)

// Discovery and validation error kinds. Callers match with errors.Is; the
// wrapped message names the role and the offending or attempted path.
var (
	ErrRoleNotFound      = errors.New("required file not found")
	ErrDuplicateRole     = errors.New("multiple files match role")
	ErrInvalidFile       = errors.New("file does not satisfy role predicate")
	ErrDirectoryNotFound = errors.New("expected directory not found")
)

// Files maps discovered roles to input paths. Discovery populates exactly the
// required roles; the correlation output is derived from the interferogram
// input later.
type Files map[Role]string

// Locate scans baseDir for the required rasters according to the variant's
// layout. Exactly one file must match each required role.
func Locate(fsys fsutil.FileSystem, baseDir string, variant Variant) (Files, error) {
	entries, err := fsys.ReadDir(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot list %s: %v", ErrDirectoryNotFound, baseDir, err)
	}

	files := Files{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".vrt") {
			continue
		}
		path := filepath.Join(baseDir, e.Name())
		monitoring.Infof("found VRT: %s", path)

		switch {
		case IsDEMName(e.Name()):
			if prev, ok := files[RoleDEM]; ok {
				return nil, fmt.Errorf("%w: %s: %s and %s", ErrDuplicateRole, RoleDEM, prev, path)
			}
			files[RoleDEM] = path
		case variant == VariantFlat && e.Name() == FlatInterferogramName:
			if prev, ok := files[RoleInterferogram]; ok {
				return nil, fmt.Errorf("%w: %s: %s and %s", ErrDuplicateRole, RoleInterferogram, prev, path)
			}
			files[RoleInterferogram] = path
		}
	}

	if variant == VariantSubdir {
		path, err := locateSubdirInterferogram(fsys, baseDir)
		if err != nil {
			return nil, err
		}
		monitoring.Infof("found VRT: %s", path)
		files[RoleInterferogram] = path
	}

	for _, role := range RequiredRoles {
		if _, ok := files[role]; !ok {
			return nil, fmt.Errorf("%w: %s in %s", ErrRoleNotFound, role, baseDir)
		}
	}
	return files, nil
}

// locateSubdirInterferogram resolves the fixed interferogram path of the
// subdirectory layout, reporting a missing directory distinctly from a
// missing file.
func locateSubdirInterferogram(fsys fsutil.FileSystem, baseDir string) (string, error) {
	dir := filepath.Join(baseDir, InterferogramSubdir)
	fi, err := fsys.Stat(dir)
	if err != nil || !fi.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}
	path := filepath.Join(dir, SubdirInterferogramName)
	if !fsys.Exists(path) {
		return "", fmt.Errorf("%w: %s at %s", ErrRoleNotFound, RoleInterferogram, path)
	}
	return path, nil
}

// Validate re-asserts that each required role's path satisfies the exact
// naming predicate for the variant. It is a defensive double-check after
// discovery; any mismatch names the offending role and path.
func Validate(files Files, variant Variant) error {
	for _, role := range RequiredRoles {
		path, ok := files[role]
		if !ok {
			return fmt.Errorf("%w: %s", ErrRoleNotFound, role)
		}
		base := filepath.Base(path)
		valid := false
		switch role {
		case RoleDEM:
			valid = IsDEMName(base)
		case RoleInterferogram:
			valid = base == variant.InterferogramName()
		}
		if !valid {
			return fmt.Errorf("%w: %s: %s", ErrInvalidFile, role, path)
		}
	}
	return nil
}
