package internal

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lightswitch-dev/lightswitch/internal/adapters/cli"
	"github.com/lightswitch-dev/lightswitch/internal/adapters/fs"
	"github.com/lightswitch-dev/lightswitch/internal/adapters/process"
	"github.com/lightswitch-dev/lightswitch/internal/usecase"
)

var buildMinify bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile and bundle the Gleam sources of the current project",
	Long: `Build compiles src/*.gleam to JavaScript, bundles every compiled
module with esbuild and writes a launcher entry file per bundle into
static/gleam. A project without Gleam sources is a clean no-op.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&buildMinify, "minify", false, "Minify bundled output")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current working directory: %w", err)
	}

	fsAdapter := fs.NewOSFileSystem()
	output := cli.NewOutput()

	appName, err := usecase.ResolveAppName(fsAdapter, cwd)
	if err != nil {
		output.PrintError("%v", err)
		return err
	}

	service := usecase.NewBuildService(process.NewOSRunner(), fsAdapter, output)
	result := service.Run(usecase.BuildInput{
		AppName: appName,
		Minify:  buildMinify,
		WorkDir: cwd,
	})
	if result.Error != nil {
		output.PrintError("%v", result.Error)
		return result.Error
	}

	return nil
}
