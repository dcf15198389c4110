// Package activation links an installed package into the package
// manager's active tree: deactivate any previous version, then activate.
package activation

import (
	"context"
	"fmt"

	"github.com/arthur-debert/cargo-brew/pkg/logging"
	"github.com/arthur-debert/cargo-brew/pkg/runner"
)

// Notifier receives the non-fatal deactivation messages
type Notifier interface {
	Warn(msg string)
	Info(msg string)
}

// State is how far a sequence got
type State int

const (
	// Pending: nothing has run yet
	Pending State = iota
	// Deactivated: the deactivate step ran (successfully or not)
	Deactivated
	// Activated: the package is active
	Activated
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Deactivated:
		return "deactivated"
	case Activated:
		return "activated"
	default:
		return "unknown"
	}
}

// Outcome records what the sequence did
type Outcome struct {
	State State
	// WasActive is false when deactivation exited non-zero, which normally
	// means this is the package's first install.
	WasActive bool
}

// Sequencer runs `<manager> <deactivate> name` then `<manager> <activate> name`
type Sequencer struct {
	runner     runner.Runner
	manager    string
	deactivate string
	activate   string
	notifier   Notifier
}

// NewSequencer creates a sequencer
func NewSequencer(r runner.Runner, manager, deactivate, activate string, n Notifier) *Sequencer {
	return &Sequencer{
		runner:     r,
		manager:    manager,
		deactivate: deactivate,
		activate:   activate,
		notifier:   n,
	}
}

// Activate deactivates then activates name. A non-zero deactivate exit is
// only reported; spawn failures and any activate failure are fatal.
func (s *Sequencer) Activate(ctx context.Context, name string) (*Outcome, error) {
	logger := logging.GetLogger("activation")
	outcome := &Outcome{State: Pending}

	label := runner.Label(s.manager, s.deactivate, name)
	res, err := s.runner.Run(ctx, runner.Command{Name: s.manager, Args: []string{s.deactivate, name}})
	if err != nil {
		return outcome, runner.SpawnError(label, err)
	}
	outcome.State = Deactivated
	outcome.WasActive = res.Success()
	if !outcome.WasActive {
		logger.Debug().Str("stderr", res.StderrText()).Int("exitCode", res.ExitCode).Msg("Deactivation failed")
		s.notifier.Warn(fmt.Sprintf("keg %s could not be unlinked", name))
		s.notifier.Info("this should only happen the first time you install a crate")
	}

	label = runner.Label(s.manager, s.activate, name)
	res, err = s.runner.Run(ctx, runner.Command{Name: s.manager, Args: []string{s.activate, name}})
	if _, err := runner.Check(label, res, err); err != nil {
		return outcome, err
	}
	outcome.State = Activated

	logger.Info().Str("name", name).Bool("wasActive", outcome.WasActive).Msg("Package activated")
	return outcome, nil
}
