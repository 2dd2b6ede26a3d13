package core

import "fmt"

// BuildError is the single fatal error type raised by the pipeline.
// Every cause is a deterministic external-tool condition, so callers
// never retry; only the message differs between failures.
type BuildError struct {
	Message string
}

func (e *BuildError) Error() string {
	return e.Message
}

func NewBuildError(format string, args ...any) *BuildError {
	return &BuildError{Message: fmt.Sprintf(format, args...)}
}
