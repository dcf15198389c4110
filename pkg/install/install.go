// Package install runs the build tool's install subcommand into the
// staging directory.
package install

import (
	"context"
	"io"

	"github.com/arthur-debert/cargo-brew/pkg/logging"
	"github.com/arthur-debert/cargo-brew/pkg/runner"
)

// Invoker runs `<tool> <subcommand> args...`
type Invoker struct {
	runner     runner.Runner
	tool       string
	subcommand string
	stdout     io.Writer
}

// NewInvoker creates an invoker streaming the tool's stdout to stdout
func NewInvoker(r runner.Runner, tool, subcommand string, stdout io.Writer) *Invoker {
	return &Invoker{runner: r, tool: tool, subcommand: subcommand, stdout: stdout}
}

// Install runs the install subcommand. Its stdout is passed through live;
// stderr is captured and becomes the error text when the tool exits
// non-zero, together with the tool's exit code.
func (i *Invoker) Install(ctx context.Context, args []string) error {
	logger := logging.GetLogger("install")
	done := logging.LogOperationStart(logger, "install")
	defer done()

	label := runner.Label(i.tool, i.subcommand)
	res, err := i.runner.Run(ctx, runner.Command{
		Name:   i.tool,
		Args:   append([]string{i.subcommand}, args...),
		Stdout: i.stdout,
	})
	if _, err := runner.Check(label, res, err); err != nil {
		return err
	}

	logger.Info().Strs("args", args).Msg("Install finished")
	return nil
}
