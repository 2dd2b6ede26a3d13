package usecase

import (
	"fmt"
	"path/filepath"

	"github.com/lightswitch-dev/lightswitch/internal/core"
)

// ResolveAppName determines the application name from project metadata:
// a gleam.toml at dir wins, then the module name from the nearest
// go.mod walking up from dir. Failure to resolve is a configuration
// error and aborts before any external process runs.
func ResolveAppName(fsys FileSystem, dir string) (string, error) {
	manifestPath := filepath.Join(dir, core.ManifestFile)
	if fsys.FileExists(manifestPath) {
		data, err := fsys.ReadFile(manifestPath)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", manifestPath, err)
		}
		return core.ParseManifestName(data)
	}

	for d := dir; ; {
		goModPath := filepath.Join(d, "go.mod")
		if fsys.FileExists(goModPath) {
			data, err := fsys.ReadFile(goModPath)
			if err != nil {
				return "", fmt.Errorf("failed to read %s: %w", goModPath, err)
			}
			if name := core.GoModuleName(data); name != "" {
				return name, nil
			}
			break
		}

		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}

	return "", core.NewBuildError("cannot determine application name: no %s or go.mod module found from %s", core.ManifestFile, dir)
}
