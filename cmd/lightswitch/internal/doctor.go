package internal

import (
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lightswitch-dev/lightswitch/internal/adapters/cli"
	"github.com/lightswitch-dev/lightswitch/internal/adapters/process"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the Gleam toolchain and bundler are available",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	output := cli.NewOutput()
	runner := process.NewOSRunner()

	output.PrintHeader("Lightswitch Doctor")

	missing := false
	for _, tool := range []string{"gleam", "esbuild"} {
		path, err := exec.LookPath(tool)
		if err != nil {
			output.PrintWarning("%s not found on PATH", tool)
			missing = true
			continue
		}

		result, err := runner.Run("", tool, "--version")
		if err != nil || result.ExitCode != 0 {
			output.PrintWarning("%s found at %s but --version failed", tool, path)
			missing = true
			continue
		}

		output.PrintSuccess("%s %s", tool, strings.TrimSpace(result.Output))
	}

	if missing {
		output.PrintStep("Install the missing tools before running lightswitch build")
	}

	return nil
}
