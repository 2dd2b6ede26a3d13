package usecase

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lightswitch-dev/lightswitch/internal/adapters/fs"
	"github.com/lightswitch-dev/lightswitch/internal/core"
)

func stageConfig() core.BuildConfig {
	return core.BuildConfig{AppName: "myapp", BuildRoot: core.BuildRootDir}
}

func TestStageUsesRootManifest(t *testing.T) {
	workDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(workDir, core.ManifestFile), []byte(`name = "myapp"`), 0o644); err != nil {
		t.Fatal(err)
	}

	s := newService(&fakeRunner{})
	got, err := s.stageProject(stageConfig(), workDir)
	if err != nil {
		t.Fatalf("stageProject() error = %v", err)
	}
	if got != workDir {
		t.Errorf("project dir = %q, want working directory %q", got, workDir)
	}
}

func TestStageReusesStagedManifest(t *testing.T) {
	workDir := t.TempDir()
	buildRoot := filepath.Join(workDir, core.BuildRootDir)
	if err := os.MkdirAll(buildRoot, 0o755); err != nil {
		t.Fatal(err)
	}
	staged := []byte("name = \"myapp\"\nversion = \"0.2.0\"\n")
	manifestPath := filepath.Join(buildRoot, core.ManifestFile)
	if err := os.WriteFile(manifestPath, staged, 0o644); err != nil {
		t.Fatal(err)
	}

	s := newService(&fakeRunner{})
	got, err := s.stageProject(stageConfig(), workDir)
	if err != nil {
		t.Fatalf("stageProject() error = %v", err)
	}
	if got != buildRoot {
		t.Errorf("project dir = %q, want staged build root %q", got, buildRoot)
	}

	// Reuse must not rewrite the manifest a prior step produced.
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(staged) {
		t.Errorf("staged manifest was rewritten: %q", string(data))
	}
}

func TestStageSynthesizesManifestAndLinksSources(t *testing.T) {
	workDir := t.TempDir()
	writeSource(t, workDir, "app.gleam")
	testDir := filepath.Join(workDir, core.TestDir)
	if err := os.MkdirAll(testDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(testDir, "app_test.gleam"), []byte("// test"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := newService(&fakeRunner{})
	projectDir, err := s.stageProject(stageConfig(), workDir)
	if err != nil {
		t.Fatalf("stageProject() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(projectDir, core.ManifestFile))
	if err != nil {
		t.Fatalf("synthesized manifest missing: %v", err)
	}
	if !strings.Contains(string(data), `name = "myapp"`) {
		t.Errorf("manifest content = %q", string(data))
	}

	// Sources must be reachable through the staged src and test dirs,
	// whether linked or copied.
	for _, rel := range []string{
		filepath.Join(core.SourceDir, "app.gleam"),
		filepath.Join(core.TestDir, "app_test.gleam"),
	} {
		if _, err := os.Stat(filepath.Join(projectDir, rel)); err != nil {
			t.Errorf("staged %s not reachable: %v", rel, err)
		}
	}
}

func TestStageRemovesStaleDestination(t *testing.T) {
	workDir := t.TempDir()
	writeSource(t, workDir, "app.gleam")

	buildRoot := filepath.Join(workDir, core.BuildRootDir)
	staleDir := filepath.Join(buildRoot, core.SourceDir)
	if err := os.MkdirAll(staleDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(staleDir, "stale.gleam"), []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := newService(&fakeRunner{})
	projectDir, err := s.stageProject(stageConfig(), workDir)
	if err != nil {
		t.Fatalf("stageProject() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(projectDir, core.SourceDir, "stale.gleam")); !os.IsNotExist(err) {
		t.Error("stale content must be removed before linking")
	}
	if _, err := os.Stat(filepath.Join(projectDir, core.SourceDir, "app.gleam")); err != nil {
		t.Errorf("real sources not reachable after staging: %v", err)
	}
}

func TestStageLinksSourcesFromRelativeWorkDir(t *testing.T) {
	workDir := t.TempDir()
	writeSource(t, workDir, "app.gleam")
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(workDir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatal(err)
		}
	})

	s := newService(&fakeRunner{})
	projectDir, err := s.stageProject(stageConfig(), ".")
	if err != nil {
		t.Fatalf("stageProject() error = %v", err)
	}

	// Stat follows the link; a target recorded relative to the build
	// root would produce a resolution loop here.
	if _, err := os.Stat(filepath.Join(projectDir, core.SourceDir, "app.gleam")); err != nil {
		t.Errorf("staged source not reachable through the link: %v", err)
	}

	linked, err := os.Readlink(filepath.Join(projectDir, core.SourceDir))
	if err == nil && !filepath.IsAbs(linked) {
		t.Errorf("link target = %q, want an absolute path", linked)
	}
}

// noSymlinkFS forces the copy fallback path.
type noSymlinkFS struct {
	*fs.OSFileSystem
}

func (noSymlinkFS) Symlink(oldname, newname string) error {
	return errors.New("symlinks not supported")
}

func TestStageFallsBackToCopyWhenSymlinkFails(t *testing.T) {
	workDir := t.TempDir()
	writeSource(t, workDir, "app.gleam")

	s := NewBuildService(&fakeRunner{}, noSymlinkFS{fs.NewOSFileSystem()}, nopOutput{})
	projectDir, err := s.stageProject(stageConfig(), workDir)
	if err != nil {
		t.Fatalf("stageProject() error = %v", err)
	}

	stagedSrc := filepath.Join(projectDir, core.SourceDir)
	info, err := os.Lstat(stagedSrc)
	if err != nil {
		t.Fatalf("staged src missing: %v", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		t.Error("expected a copied directory, got a symlink")
	}
	if _, err := os.Stat(filepath.Join(stagedSrc, "app.gleam")); err != nil {
		t.Errorf("copied source missing: %v", err)
	}
}
