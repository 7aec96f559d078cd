package scene

import (
	"fmt"
	"path/filepath"

	"github.com/sardata/insarlook/internal/fsutil"
)

// Outputs maps each output role to its destination GeoTIFF path.
type Outputs map[Role]string

// OutputPaths derives the per-scene output directory and the deterministic
// destination path for each output role. The scene name is the final
// component of the input directory; the scene directory is created if
// missing. Repeated calls with identical arguments yield identical paths and
// never fail on an existing directory.
func OutputPaths(fsys fsutil.FileSystem, outputRoot, inputDir string) (string, Outputs, error) {
	sceneName := filepath.Base(filepath.Clean(inputDir))
	sceneDir := filepath.Join(outputRoot, sceneName)
	if err := fsys.MkdirAll(sceneDir, 0755); err != nil {
		return "", nil, fmt.Errorf("create output directory %s: %w", sceneDir, err)
	}

	outputs := Outputs{}
	for _, role := range OutputRoles {
		outputs[role] = filepath.Join(sceneDir, fmt.Sprintf("%s_%s.tif", sceneName, role))
	}
	return sceneDir, outputs, nil
}
