package cli

import (
	"context"
	"io"

	"github.com/arthur-debert/cargo-brew/pkg/errors"
	"github.com/arthur-debert/cargo-brew/pkg/logging"
	"github.com/arthur-debert/cargo-brew/pkg/ui"
)

// Execute runs the command line and returns the process exit status
func Execute(args []string, stdout, stderr io.Writer) int {
	return run(DefaultDeps(), args, stdout, stderr)
}

func run(deps Deps, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(deps)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Never cancelled: an interrupt reaches cargo and brew through the
	// terminal's process group, and each child decides how to stop.
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return reportFailure(stderr, err)
	}
	return 0
}

// reportFailure prints a fatal error and returns the exit status for it
func reportFailure(stderr io.Writer, err error) int {
	code := errors.ExitCode(err)
	logger := logging.GetLogger("cli")
	logger.Debug().
		Str("code", string(errors.GetErrorCode(err))).
		Fields(errors.GetErrorDetails(err)).
		Int("exit_status", code).
		Msg("Command failed")

	ui.NewReporter(stderr, ui.FormatAuto).Error(err.Error())
	return code
}
