package usecase

import (
	"github.com/lightswitch-dev/lightswitch/internal/adapters/fs"
	"github.com/lightswitch-dev/lightswitch/internal/adapters/process"
)

// Runner executes one external tool invocation synchronously and
// reports its exit status with captured output. Tests substitute a fake
// runner so no real toolchain is needed.
type Runner interface {
	Run(dir, name string, args ...string) (process.Result, error)
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)
}

type FileSystem = fs.FileSystem
