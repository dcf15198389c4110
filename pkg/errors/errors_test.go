// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, exit codes and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/cargo-brew/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
	}{
		{name: "spawn_error", code: errors.ErrSpawn, message: "`brew --cellar` could not be run"},
		{name: "parse_error", code: errors.ErrParseIdentity, message: "could not determine crate name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrCommandFailed, "`%s` failed: %s", "brew link widget", "conflict")
	assert.Equal(t, "`brew link widget` failed: conflict", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("nil_error_stays_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "unused"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "unused %d", 1))
	})

	t.Run("wrapped_cause_is_reachable", func(t *testing.T) {
		cause := stderrors.New("executable file not found in $PATH")
		err := errors.Wrapf(cause, errors.ErrSpawn, "`%s` could not be run", "cargo install")

		assert.Equal(t, "`cargo install` could not be run: executable file not found in $PATH", err.Error())
		assert.True(t, stderrors.Is(err, cause))
		assert.Equal(t, cause, stderrors.Unwrap(err))
	})
}

func TestIsByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrDirCreate, "could not create directories in Cellar"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrDirCreate, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrDirRead, "")))
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	assert.Equal(t, errors.ErrDirCreate, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrCommandFailed, "failed").
		WithDetail("command", "cargo install").
		WithExitCode(101)

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "cargo install", details["command"])
	assert.Equal(t, 101, details[errors.DetailExitCode])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain_error", err: stderrors.New("boom"), want: 1},
		{name: "coded_without_exit", err: errors.New(errors.ErrParseIdentity, "no match"), want: 1},
		{name: "coded_with_exit", err: errors.New(errors.ErrCommandFailed, "failed").WithExitCode(101), want: 101},
		{name: "zero_exit_maps_to_one", err: errors.New(errors.ErrCommandFailed, "failed").WithExitCode(0), want: 1},
		{
			name: "inner_exit_found_through_wrap",
			err: errors.Wrap(
				errors.New(errors.ErrCommandFailed, "failed").WithExitCode(7),
				errors.ErrInternal, "pipeline"),
			want: 7,
		},
		{
			name: "found_through_fmt_wrap",
			err:  fmt.Errorf("ctx: %w", errors.New(errors.ErrCommandFailed, "failed").WithExitCode(3)),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.ExitCode(tt.err))
		})
	}
}
