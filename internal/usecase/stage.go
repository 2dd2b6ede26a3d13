package usecase

import (
	"fmt"
	"path/filepath"

	"github.com/lightswitch-dev/lightswitch/internal/core"
)

// stageProject returns the directory the compiler runs in. Resolution
// is three-tier: a gleam.toml at the working-directory root wins, then
// one already staged inside the build root (left by a prior run or a
// native-target compile), and only then is a fresh staging directory
// synthesized. Repeated builds therefore never re-stage an existing
// project.
func (s *BuildService) stageProject(cfg core.BuildConfig, workDir string) (string, error) {
	if s.fs.FileExists(filepath.Join(workDir, core.ManifestFile)) {
		return workDir, nil
	}

	buildRoot := filepath.Join(workDir, cfg.BuildRoot)
	if s.fs.FileExists(filepath.Join(buildRoot, core.ManifestFile)) {
		return buildRoot, nil
	}

	if err := s.fs.MkdirAll(buildRoot, 0o755); err != nil {
		return "", fmt.Errorf("failed to create build root %s: %w", buildRoot, err)
	}

	manifest, err := core.EncodeManifest(cfg.AppName)
	if err != nil {
		return "", err
	}
	manifestPath := filepath.Join(buildRoot, core.ManifestFile)
	if err := s.fs.WriteFile(manifestPath, manifest, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", manifestPath, err)
	}

	for _, dir := range []string{core.SourceDir, core.TestDir} {
		src := filepath.Join(workDir, dir)
		if !s.fs.DirExists(src) {
			continue
		}

		// Symlink targets resolve relative to the link's directory,
		// not the process cwd, so a relative workDir must be made
		// absolute or the link points into the build root.
		absSrc, err := filepath.Abs(src)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", src, err)
		}

		// A stale link or copy from an earlier layout would shadow the
		// real sources.
		dst := filepath.Join(buildRoot, dir)
		if err := s.fs.RemoveAll(dst); err != nil {
			return "", fmt.Errorf("failed to remove stale %s: %w", dst, err)
		}

		if err := s.fs.Symlink(absSrc, dst); err != nil {
			s.cli.PrintWarning("symlinking %s failed (%v), copying instead", dir, err)
			if err := s.fs.CopyDir(src, dst); err != nil {
				return "", fmt.Errorf("failed to copy %s into build root: %w", dir, err)
			}
		}
	}

	return buildRoot, nil
}
