// Package lightswitch builds Gleam/Lustre frontends into servable
// JavaScript bundles and renders the resulting components into
// embeddable HTML fragments, either client-only or server-side.
package lightswitch

import (
	"github.com/lightswitch-dev/lightswitch/internal/adapters/cli"
	"github.com/lightswitch-dev/lightswitch/internal/adapters/fs"
	"github.com/lightswitch-dev/lightswitch/internal/adapters/process"
	"github.com/lightswitch-dev/lightswitch/internal/usecase"
)

// BuildOptions configures one full compile+bundle pass. The pipeline
// always rebuilds everything; there is no incremental mode.
type BuildOptions struct {
	// AppName overrides the application name resolved from project
	// metadata (gleam.toml, then the go.mod module name).
	AppName string

	// Minify passes --minify to the bundler.
	Minify bool

	// WorkDir is the project root to build from. Empty means the
	// current directory.
	WorkDir string
}

// Build compiles the Gleam sources under WorkDir/src, bundles the
// compiled modules with esbuild and writes one launcher entry file per
// bundle into static/gleam. A project without Gleam sources is a clean
// no-op. Intended to be called from the host application's build task.
func Build(opts BuildOptions) error {
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}

	fsAdapter := fs.NewOSFileSystem()

	appName := opts.AppName
	if appName == "" {
		resolved, err := usecase.ResolveAppName(fsAdapter, workDir)
		if err != nil {
			return err
		}
		appName = resolved
	}

	service := usecase.NewBuildService(process.NewOSRunner(), fsAdapter, cli.NewOutput())
	result := service.Run(usecase.BuildInput{
		AppName: appName,
		Minify:  opts.Minify,
		WorkDir: workDir,
	})
	return result.Error
}
