package usecase

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lightswitch-dev/lightswitch/internal/core"
)

type BuildInput struct {
	AppName string
	Minify  bool
	WorkDir string
}

type BuildOutput struct {
	Success bool
	// Skipped is set when no eligible sources exist; that is a clean
	// no-op, not an error.
	Skipped bool
	// Modules holds the base names of every compiled module that got a
	// bundle and an entry file.
	Modules []string
	Error   error
}

// BuildService runs the full compile+bundle pass:
// Discover -> Stage -> Compile -> Bundle -> SynthesizeEntries.
// Stages are strictly sequential; any compile or bundle failure is
// terminal for the whole build, since a half-bundled output must not be
// served.
type BuildService struct {
	runner Runner
	fs     FileSystem
	cli    CLIOutput
}

func NewBuildService(runner Runner, fs FileSystem, cli CLIOutput) *BuildService {
	return &BuildService{
		runner: runner,
		fs:     fs,
		cli:    cli,
	}
}

func (s *BuildService) Run(input BuildInput) BuildOutput {
	s.cli.PrintHeader("Lightswitch Build")

	if input.AppName == "" {
		return BuildOutput{Error: core.NewBuildError("application name is required")}
	}

	cfg := core.BuildConfig{
		AppName:   input.AppName,
		Minify:    input.Minify,
		BuildRoot: core.BuildRootDir,
	}

	hasSources, err := s.hasSources(input.WorkDir)
	if err != nil {
		return BuildOutput{Error: core.NewBuildError("cannot scan %s for sources: %v", core.SourceDir, err)}
	}
	if !hasSources {
		s.cli.PrintStep("No %s files under %s, nothing to build", core.SourceExt, core.SourceDir)
		return BuildOutput{Success: true, Skipped: true}
	}

	projectDir, err := s.stageProject(cfg, input.WorkDir)
	if err != nil {
		return BuildOutput{Error: err}
	}

	modules, err := s.compile(projectDir, cfg.AppName)
	if err != nil {
		return BuildOutput{Error: err}
	}
	if len(modules) == 0 {
		s.cli.PrintWarning("compiler emitted no bundleable modules")
		return BuildOutput{Success: true}
	}

	outputDir := filepath.Join(input.WorkDir, core.OutputDir())
	if err := s.bundle(modules, cfg.Minify, outputDir); err != nil {
		return BuildOutput{Error: err}
	}

	bases, err := s.synthesizeEntries(modules, outputDir)
	if err != nil {
		return BuildOutput{Error: err}
	}

	if err := s.writeManifest(bases, outputDir); err != nil {
		return BuildOutput{Error: err}
	}

	s.cli.PrintDone(fmt.Sprintf("Built %d module(s) into %s", len(bases), outputDir))
	return BuildOutput{Success: true, Modules: bases}
}

// hasSources reports whether the working directory has at least one
// Gleam source under src. A scan failure is distinct from an empty
// project and must not be mistaken for a clean skip.
func (s *BuildService) hasSources(workDir string) (bool, error) {
	srcDir := filepath.Join(workDir, core.SourceDir)
	if !s.fs.DirExists(srcDir) {
		return false, nil
	}

	found := false
	err := s.fs.WalkDir(srcDir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), core.SourceExt) {
			found = true
			return iofs.SkipAll
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// compile runs the Gleam compiler for the JavaScript target and
// collects the emitted module paths, excluding the runtime-support
// file.
func (s *BuildService) compile(projectDir, appName string) ([]string, error) {
	s.cli.PrintStep("Compiling Gleam sources in %s...", projectDir)

	result, err := s.runner.Run(projectDir, "gleam", "build", "--target", "javascript")
	if err != nil {
		return nil, core.NewBuildError("failed to run gleam (is gleam installed?): %v", err)
	}
	if result.ExitCode != 0 {
		return nil, core.NewBuildError("gleam build failed (exit %d):\n%s", result.ExitCode, result.Output)
	}

	compiledDir := core.CompiledOutputDir(projectDir, appName)
	entries, err := s.fs.ReadDir(compiledDir)
	if err != nil {
		return nil, core.NewBuildError("cannot read compiler output %s: %v", compiledDir, err)
	}

	var modules []string
	for _, entry := range entries {
		if entry.IsDir() || !core.IsCompiledModule(entry.Name()) {
			continue
		}
		modules = append(modules, filepath.Join(compiledDir, entry.Name()))
	}
	sort.Strings(modules)

	s.cli.PrintSuccess("Compiled %d module(s)", len(modules))
	return modules, nil
}

// bundle invokes esbuild once with the full module list. The minify
// flag precedes the module paths; the fixed bundling flags follow them.
func (s *BuildService) bundle(modules []string, minify bool, outputDir string) error {
	if err := s.fs.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir %s: %w", outputDir, err)
	}

	s.cli.PrintStep("Bundling %d module(s)...", len(modules))

	args := make([]string, 0, len(modules)+4)
	if minify {
		args = append(args, "--minify")
	}
	args = append(args, modules...)
	args = append(args, "--bundle", "--format=esm", "--outdir="+outputDir)

	result, err := s.runner.Run("", "esbuild", args...)
	if err != nil {
		return core.NewBuildError("failed to run esbuild, check that it is installed and on PATH: %v", err)
	}
	if result.ExitCode != 0 {
		return core.NewBuildError("esbuild failed (exit %d), check that esbuild is installed and configured:\n%s", result.ExitCode, result.Output)
	}

	s.cli.PrintSuccess("Bundles written to %s", outputDir)
	return nil
}

// synthesizeEntries writes one launcher per bundle and returns the
// module base names.
func (s *BuildService) synthesizeEntries(modules []string, outputDir string) ([]string, error) {
	s.cli.PrintStep("Writing entry files...")

	bases := make([]string, 0, len(modules))
	for _, module := range modules {
		base := core.ModuleBase(module)
		entryPath := filepath.Join(outputDir, core.EntryName(base))
		if err := s.fs.WriteFile(entryPath, []byte(core.EntryFileContent(base)), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write entry file %s: %w", entryPath, err)
		}
		s.cli.PrintFile(entryPath)
		bases = append(bases, base)
	}

	return bases, nil
}

func (s *BuildService) writeManifest(bases []string, outputDir string) error {
	data, err := core.NewManifest(bases).Encode()
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	manifestPath := filepath.Join(outputDir, core.BuildManifestName)
	if err := s.fs.WriteFile(manifestPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
