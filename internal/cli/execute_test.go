package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cargo-brew/pkg/runner"
	"github.com/arthur-debert/cargo-brew/pkg/runner/runnertest"
	"github.com/arthur-debert/cargo-brew/pkg/testutil"
)

// contextRecorder remembers the context of every command it is handed
type contextRecorder struct {
	*runnertest.Runner
	contexts []context.Context
}

func (c *contextRecorder) Run(ctx context.Context, cmd runner.Command) (*runner.Result, error) {
	c.contexts = append(c.contexts, ctx)
	return c.Runner.Run(ctx, cmd)
}

func (c *contextRecorder) Start(ctx context.Context, cmd runner.Command) (runner.Process, error) {
	c.contexts = append(c.contexts, ctx)
	return c.Runner.Start(ctx, cmd)
}

func failingInstall(env *testutil.TestEnvironment) *runnertest.Runner {
	r := &runnertest.Runner{}
	r.On("Start", "brew", []string{"--cellar"}).Return(runnertest.Output(env.Cellar+"\n"), nil).Once()
	r.On("Run", "cargo", mock.Anything).
		Return(runnertest.Exit(101, "error: could not compile `widget`\n"), nil).Once()
	return r
}

func TestRunReportsFailure(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Setenv("CARGO_BREW_STAGING_TEMPDIR", env.TempDir)
	env.Setenv("CARGO_BREW_LOG_VERBOSITY", "2")

	r := failingInstall(env)
	var stdout, stderr bytes.Buffer
	status := run(Deps{Runner: r, FS: env.FS}, []string{"brew", "widget"}, &stdout, &stderr)

	assert.Equal(t, 101, status)
	assert.Contains(t, stderr.String(), "error: `cargo install` failed: error: could not compile `widget`")
	assert.Contains(t, stderr.String(), "COMMAND_FAILED")
	r.AssertExpectations(t)
}

func TestRunChildContextIsNeverCancelled(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Setenv("CARGO_BREW_STAGING_TEMPDIR", env.TempDir)

	rec := &contextRecorder{Runner: failingInstall(env)}
	var stdout, stderr bytes.Buffer
	run(Deps{Runner: rec, FS: env.FS}, []string{"brew", "widget"}, &stdout, &stderr)

	require.Len(t, rec.contexts, 2)
	for _, ctx := range rec.contexts {
		assert.Nil(t, ctx.Done())
		assert.NoError(t, ctx.Err())
	}
}

func TestRunSuccess(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := run(DefaultDeps(), []string{"version"}, &stdout, &stderr)

	assert.Equal(t, 0, status)
	assert.Empty(t, stderr.String())
	assert.Contains(t, stdout.String(), "cargo-brew version")
}

func TestReportFailureDefaultsToOne(t *testing.T) {
	var stderr bytes.Buffer
	status := reportFailure(&stderr, assert.AnError)

	assert.Equal(t, 1, status)
	assert.Equal(t, "error: "+assert.AnError.Error()+"\n", stderr.String())
}
