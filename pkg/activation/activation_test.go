package activation

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cargo-brew/pkg/errors"
	"github.com/arthur-debert/cargo-brew/pkg/runner/runnertest"
)

type notes struct {
	warns []string
	infos []string
}

func (n *notes) Warn(msg string) { n.warns = append(n.warns, msg) }
func (n *notes) Info(msg string) { n.infos = append(n.infos, msg) }

func TestActivate(t *testing.T) {
	ctx := context.Background()

	t.Run("relink_of_active_package", func(t *testing.T) {
		r := &runnertest.Runner{}
		r.On("Run", "brew", []string{"unlink", "widget"}).Return(runnertest.Exit(0, ""), nil).Once()
		r.On("Run", "brew", []string{"link", "widget"}).Return(runnertest.Exit(0, ""), nil).Once()
		n := &notes{}

		out, err := NewSequencer(r, "brew", "unlink", "link", n).Activate(ctx, "widget")
		require.NoError(t, err)
		assert.Equal(t, Activated, out.State)
		assert.True(t, out.WasActive)
		assert.Empty(t, n.warns)
		r.AssertExpectations(t)
	})

	t.Run("first_install_deactivate_failure_is_a_warning", func(t *testing.T) {
		r := &runnertest.Runner{}
		r.On("Run", "brew", []string{"unlink", "widget"}).Return(runnertest.Exit(1, "Error: No such keg"), nil).Once()
		r.On("Run", "brew", []string{"link", "widget"}).Return(runnertest.Exit(0, ""), nil).Once()
		n := &notes{}

		out, err := NewSequencer(r, "brew", "unlink", "link", n).Activate(ctx, "widget")
		require.NoError(t, err)
		assert.Equal(t, Activated, out.State)
		assert.False(t, out.WasActive)
		assert.Equal(t, []string{"keg widget could not be unlinked"}, n.warns)
		assert.Equal(t, []string{"this should only happen the first time you install a crate"}, n.infos)
		r.AssertExpectations(t)
	})

	t.Run("deactivate_spawn_failure_is_fatal", func(t *testing.T) {
		r := &runnertest.Runner{}
		r.On("Run", "brew", []string{"unlink", "widget"}).Return(nil, stderrors.New("not found")).Once()

		out, err := NewSequencer(r, "brew", "unlink", "link", &notes{}).Activate(ctx, "widget")
		require.Error(t, err)
		assert.Equal(t, Pending, out.State)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSpawn))
		assert.Contains(t, err.Error(), "`brew unlink widget` could not be run")
		r.AssertNotCalled(t, "Run", "brew", []string{"link", "widget"})
	})

	t.Run("activate_failure_is_fatal_with_exit_code", func(t *testing.T) {
		r := &runnertest.Runner{}
		r.On("Run", "brew", []string{"unlink", "widget"}).Return(runnertest.Exit(0, ""), nil).Once()
		r.On("Run", "brew", []string{"link", "widget"}).Return(runnertest.Exit(3, "Error: Could not symlink bin/widget\n"), nil).Once()

		out, err := NewSequencer(r, "brew", "unlink", "link", &notes{}).Activate(ctx, "widget")
		require.Error(t, err)
		assert.Equal(t, Deactivated, out.State)
		assert.Equal(t, "`brew link widget` failed: Error: Could not symlink bin/widget", err.Error())
		assert.Equal(t, 3, errors.ExitCode(err))
	})

	t.Run("activate_spawn_failure_is_fatal", func(t *testing.T) {
		r := &runnertest.Runner{}
		r.On("Run", "brew", []string{"unlink", "widget"}).Return(runnertest.Exit(0, ""), nil).Once()
		r.On("Run", "brew", []string{"link", "widget"}).Return(nil, stderrors.New("killed")).Once()

		_, err := NewSequencer(r, "brew", "unlink", "link", &notes{}).Activate(ctx, "widget")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSpawn))
		assert.Equal(t, 1, errors.ExitCode(err))
	})
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "deactivated", Deactivated.String())
	assert.Equal(t, "activated", Activated.String())
	assert.Equal(t, "unknown", State(9).String())
}
