package store

import (
	"context"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/cargo-brew/pkg/errors"
	"github.com/arthur-debert/cargo-brew/pkg/logging"
	"github.com/arthur-debert/cargo-brew/pkg/runner"
)

// Locator is a pending query for the package store's root path.
// It is started early and joined once, right before placement.
type Locator struct {
	group errgroup.Group
	label string
	root  string
}

// StartLocator launches the package manager's store query in the
// background. Only a spawn failure is reported here; everything else
// surfaces from Wait.
func StartLocator(ctx context.Context, r runner.Runner, manager, query string) (*Locator, error) {
	logger := logging.GetLogger("store.locator")

	l := &Locator{label: runner.Label(manager, query)}

	proc, err := r.Start(ctx, runner.Command{Name: manager, Args: []string{query}})
	if err != nil {
		return nil, runner.SpawnError(l.label, err)
	}
	logger.Debug().Str("command", l.label).Msg("Store query started")

	l.group.Go(func() error {
		res, err := proc.Wait()
		res, err = runner.Check(l.label, res, err)
		if err != nil {
			return err
		}

		root := strings.TrimSpace(string(res.Stdout))
		if !filepath.IsAbs(root) {
			return errors.Newf(errors.ErrInvalidPath, "`%s` did not print an absolute path: %q", l.label, root)
		}
		l.root = root
		return nil
	})

	return l, nil
}

// Wait blocks until the query has finished and returns the store root
func (l *Locator) Wait() (string, error) {
	if err := l.group.Wait(); err != nil {
		return "", err
	}
	return l.root, nil
}
