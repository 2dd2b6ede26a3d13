package internal

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lightswitch",
	Short: "lightswitch builds Gleam frontends into servable JavaScript bundles",
	Long: `lightswitch stages a Gleam project, compiles it to JavaScript,
bundles the output with esbuild and writes auto-invoking launcher
entry files for server- and client-rendered pages.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
