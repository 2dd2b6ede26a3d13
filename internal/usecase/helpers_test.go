package usecase

import (
	"github.com/lightswitch-dev/lightswitch/internal/adapters/process"
)

type call struct {
	dir  string
	name string
	args []string
}

// fakeRunner records invocations and returns canned results per tool
// name. onRun lets tests simulate tool side effects, e.g. the compiler
// writing its output tree.
type fakeRunner struct {
	calls   []call
	results map[string]process.Result
	errs    map[string]error
	onRun   func(c call)
}

func (r *fakeRunner) Run(dir, name string, args ...string) (process.Result, error) {
	c := call{dir: dir, name: name, args: args}
	r.calls = append(r.calls, c)

	if r.onRun != nil {
		r.onRun(c)
	}
	if err := r.errs[name]; err != nil {
		return process.Result{ExitCode: -1}, err
	}
	if result, ok := r.results[name]; ok {
		return result, nil
	}
	return process.Result{}, nil
}

func (r *fakeRunner) callsFor(name string) []call {
	var out []call
	for _, c := range r.calls {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// nopOutput keeps test output quiet.
type nopOutput struct{}

func (nopOutput) PrintHeader(msg string)               {}
func (nopOutput) PrintStep(msg string, args ...any)    {}
func (nopOutput) PrintSuccess(msg string, args ...any) {}
func (nopOutput) PrintWarning(msg string, args ...any) {}
func (nopOutput) PrintError(msg string, args ...any)   {}
func (nopOutput) PrintFile(path string)                {}
func (nopOutput) PrintDone(msg string)                 {}
