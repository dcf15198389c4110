// Package runnertest provides a testify mock of runner.Runner.
package runnertest

import (
	"context"

	"github.com/arthur-debert/cargo-brew/pkg/runner"
	"github.com/stretchr/testify/mock"
)

// Runner is a mock runner.Runner. Expectations are matched on the command
// name and argument slice:
//
//	r.On("Run", "cargo", mock.Anything).Return(runnertest.Exit(0, ""), nil).Once()
type Runner struct {
	mock.Mock
}

// Run implements runner.Runner
func (r *Runner) Run(ctx context.Context, c runner.Command) (*runner.Result, error) {
	args := r.Called(c.Name, c.Args)
	res, _ := args.Get(0).(*runner.Result)
	return deliver(c, res), args.Error(1)
}

// Start implements runner.Runner. The returned process yields the
// configured result on Wait.
func (r *Runner) Start(ctx context.Context, c runner.Command) (runner.Process, error) {
	args := r.Called(c.Name, c.Args)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	res, _ := args.Get(0).(*runner.Result)
	return &Process{Result: deliver(c, res)}, nil
}

// deliver forwards stdout to a live writer the way the exec runner does
func deliver(c runner.Command, res *runner.Result) *runner.Result {
	if res == nil || c.Stdout == nil {
		return res
	}
	_, _ = c.Stdout.Write(res.Stdout)
	out := *res
	out.Stdout = nil
	return &out
}

// Process is a started fake process
type Process struct {
	Result *runner.Result
	Err    error
}

// Wait implements runner.Process
func (p *Process) Wait() (*runner.Result, error) {
	return p.Result, p.Err
}

// Exit builds a result with the given exit code and stderr
func Exit(code int, stderr string) *runner.Result {
	return &runner.Result{ExitCode: code, Stderr: []byte(stderr)}
}

// Output builds a successful result printing stdout
func Output(stdout string) *runner.Result {
	return &runner.Result{Stdout: []byte(stdout)}
}
