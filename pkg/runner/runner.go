// Package runner spawns the external collaborators (the build tool and the
// package manager) and reports how they exited.
//
// A Runner never interprets a non-zero exit: it is returned in Result so
// each pipeline step can decide whether that exit is fatal, expected or a
// warning. Only a failure to spawn (or to collect) the process is returned
// as an error.
package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	brewerrors "github.com/arthur-debert/cargo-brew/pkg/errors"
	"github.com/arthur-debert/cargo-brew/pkg/logging"
)

// Command describes one external invocation
type Command struct {
	Name string
	Args []string
	// Stdout, when set, receives the process's standard output live and
	// Result.Stdout stays empty.
	Stdout io.Writer
}

// Result is how a finished process exited and what it wrote
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Success reports whether the process exited with status 0
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}

// StderrText returns stderr with trailing whitespace trimmed
func (r *Result) StderrText() string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(string(r.Stderr))
}

// Process is a started command that can be joined once
type Process interface {
	Wait() (*Result, error)
}

// Runner executes external commands
type Runner interface {
	// Run starts c and waits for it.
	Run(ctx context.Context, c Command) (*Result, error)
	// Start launches c without waiting. Stdin is the null device.
	Start(ctx context.Context, c Command) (Process, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct{}

// NewExecRunner creates the production runner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

type execProcess struct {
	cmd    *exec.Cmd
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// Start implements Runner
func (e *ExecRunner) Start(ctx context.Context, c Command) (Process, error) {
	logging.LogCommand(c.Name, c.Args)

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	p := &execProcess{cmd: cmd, stderr: &bytes.Buffer{}}
	if c.Stdout != nil {
		cmd.Stdout = c.Stdout
	} else {
		p.stdout = &bytes.Buffer{}
		cmd.Stdout = p.stdout
	}
	cmd.Stderr = p.stderr

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return p, nil
}

// Run implements Runner
func (e *ExecRunner) Run(ctx context.Context, c Command) (*Result, error) {
	p, err := e.Start(ctx, c)
	if err != nil {
		return nil, err
	}
	return p.Wait()
}

func (p *execProcess) Wait() (*Result, error) {
	err := p.cmd.Wait()

	res := &Result{Stderr: p.stderr.Bytes()}
	if p.stdout != nil {
		res.Stdout = p.stdout.Bytes()
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.ExitCode = 0
	case errors.As(err, &exitErr):
		// -1 when the process was killed by a signal
		res.ExitCode = exitErr.ExitCode()
	default:
		return nil, err
	}
	return res, nil
}

// Check applies the default failure policy to a finished command: a spawn
// error becomes "`label` could not be run", a non-zero exit becomes
// "`label` failed: <stderr>" carrying the command's exit code.
func Check(label string, res *Result, err error) (*Result, error) {
	if err != nil {
		return nil, SpawnError(label, err)
	}
	if !res.Success() {
		return res, FailureError(label, res)
	}
	return res, nil
}

// SpawnError reports that label could not be started at all
func SpawnError(label string, err error) error {
	return brewerrors.Wrapf(err, brewerrors.ErrSpawn, "`%s` could not be run", label).
		WithDetail("command", label)
}

// FailureError reports that label ran and exited non-zero
func FailureError(label string, res *Result) error {
	return brewerrors.Newf(brewerrors.ErrCommandFailed, "`%s` failed: %s", label, res.StderrText()).
		WithDetail("command", label).
		WithExitCode(res.ExitCode)
}

// Label renders a command the way it is shown to users, e.g. "brew link widget"
func Label(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
