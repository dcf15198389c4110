package core

import (
	"context"
	"io"

	"github.com/arthur-debert/cargo-brew/pkg/activation"
	"github.com/arthur-debert/cargo-brew/pkg/args"
	"github.com/arthur-debert/cargo-brew/pkg/errors"
	"github.com/arthur-debert/cargo-brew/pkg/filesystem"
	"github.com/arthur-debert/cargo-brew/pkg/install"
	"github.com/arthur-debert/cargo-brew/pkg/logging"
	"github.com/arthur-debert/cargo-brew/pkg/probe"
	"github.com/arthur-debert/cargo-brew/pkg/runner"
	"github.com/arthur-debert/cargo-brew/pkg/staging"
	"github.com/arthur-debert/cargo-brew/pkg/store"
	"github.com/arthur-debert/cargo-brew/pkg/types"
)

// Reporter receives user-facing messages from the pipeline
type Reporter interface {
	Info(msg string)
	Warn(msg string)
	Activity(msg string) func()
}

// Tools names the collaborator executables and their subcommands
type Tools struct {
	Cargo      string
	Install    string
	Brew       string
	StoreQuery string
	Deactivate string
	Activate   string
}

// InstallOptions holds everything a run reads from its environment
type InstallOptions struct {
	// Argv is the full invoking command line; the first two tokens are
	// the executable and subcommand and are discarded.
	Argv []string
	// TempDir is where the staging directory is created
	TempDir string
	// StagingPrefix names staging directories <prefix>-<random>
	StagingPrefix string
	// StagingSuffix overrides the random suffix source
	StagingSuffix func() string

	Tools    Tools
	Runner   runner.Runner
	FS       filesystem.FS
	Stdout   io.Writer
	Reporter Reporter
}

// InstallResult describes a completed run
type InstallResult struct {
	StagingDir  string
	InstallArgs []string
	Identity    types.Identity
	StoreRoot   string
	Placement   *store.Report
	Activation  *activation.Outcome
}

// InstallPackage runs the whole pipeline. Any returned error is fatal for
// the run; errors.ExitCode gives the status the process should exit with.
func InstallPackage(ctx context.Context, opts InstallOptions) (*InstallResult, error) {
	logger := logging.GetLogger("core.install")
	if err := validate(opts); err != nil {
		return nil, err
	}

	// The store query has no dependency on the install, so it overlaps it.
	locator, err := store.StartLocator(ctx, opts.Runner, opts.Tools.Brew, opts.Tools.StoreQuery)
	if err != nil {
		return nil, err
	}

	manager := staging.NewManager(opts.FS, opts.TempDir, opts.StagingPrefix)
	if opts.StagingSuffix != nil {
		manager = manager.WithSuffix(opts.StagingSuffix)
	}
	area, err := manager.Create()
	if err != nil {
		return nil, err
	}

	result := &InstallResult{
		StagingDir:  area.Path,
		InstallArgs: args.RewriteRoot(opts.Argv, area.Path),
	}
	logger.Info().
		Str("staging", result.StagingDir).
		Strs("args", result.InstallArgs).
		Msg("Starting install")

	invoker := install.NewInvoker(opts.Runner, opts.Tools.Cargo, opts.Tools.Install, opts.Stdout)
	if err := invoker.Install(ctx, result.InstallArgs); err != nil {
		return result, err
	}

	prober := probe.NewProber(opts.Runner, opts.Tools.Cargo, opts.Tools.Install)
	stop := opts.Reporter.Activity("Identifying installed package")
	result.Identity, err = prober.Probe(ctx, result.InstallArgs)
	stop()
	if err != nil {
		return result, err
	}

	result.StoreRoot, err = locator.Wait()
	if err != nil {
		return result, err
	}

	placement := store.NewPlacement(opts.FS, opts.Reporter)
	result.Placement, err = placement.Place(result.StoreRoot, result.Identity, area.BinDir())
	if err != nil {
		return result, err
	}

	sequencer := activation.NewSequencer(opts.Runner,
		opts.Tools.Brew, opts.Tools.Deactivate, opts.Tools.Activate, opts.Reporter)
	result.Activation, err = sequencer.Activate(ctx, result.Identity.Name)
	if err != nil {
		return result, err
	}

	logger.Info().
		Str("package", result.Identity.String()).
		Str("keg", result.Identity.KegPath(result.StoreRoot)).
		Msg("Install complete")
	return result, nil
}

func validate(opts InstallOptions) error {
	switch {
	case opts.Runner == nil:
		return errors.New(errors.ErrInternal, "install requires a runner")
	case opts.FS == nil:
		return errors.New(errors.ErrInternal, "install requires a filesystem")
	case opts.Reporter == nil:
		return errors.New(errors.ErrInternal, "install requires a reporter")
	case opts.Stdout == nil:
		return errors.New(errors.ErrInternal, "install requires a stdout writer")
	case opts.TempDir == "":
		return errors.New(errors.ErrInvalidInput, "install requires a temporary directory")
	}
	return nil
}
