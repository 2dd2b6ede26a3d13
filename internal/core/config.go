package core

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/modfile"
)

// BuildConfig is the immutable per-run configuration, assembled once
// from caller-supplied flags and project metadata.
type BuildConfig struct {
	AppName   string
	Minify    bool
	BuildRoot string
}

type projectManifest struct {
	Name string `toml:"name"`
}

// ParseManifestName extracts the application name from gleam.toml
// content.
func ParseManifestName(data []byte) (string, error) {
	var m projectManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", ManifestFile, err)
	}
	if m.Name == "" {
		return "", fmt.Errorf("%s has no name field", ManifestFile)
	}
	return m.Name, nil
}

// EncodeManifest produces a minimal name-only gleam.toml, which is all
// the compiler needs to build a staged project.
func EncodeManifest(name string) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(projectManifest{Name: name}); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", ManifestFile, err)
	}
	return buf.Bytes(), nil
}

// GoModuleName returns the last element of the module path declared in
// go.mod content, or "" when none is declared.
func GoModuleName(data []byte) string {
	path := modfile.ModulePath(data)
	if path == "" {
		return ""
	}
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	return path
}
