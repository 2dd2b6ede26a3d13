package process

import (
	"errors"
	"os/exec"
)

// Result is the outcome of a single external tool invocation.
type Result struct {
	ExitCode int
	Output   string
}

type OSRunner struct{}

func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

// Run executes name with args in dir, blocking until the process
// exits, and captures combined stdout/stderr. A non-zero exit is
// reported through Result.ExitCode with a nil error; a non-nil error
// means the process could not be started at all (typically a missing
// binary).
func (r *OSRunner) Run(dir, name string, args ...string) (Result, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{ExitCode: exitErr.ExitCode(), Output: string(out)}, nil
		}
		return Result{ExitCode: -1, Output: string(out)}, err
	}

	return Result{ExitCode: 0, Output: string(out)}, nil
}
