package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cargo-brew/pkg/filesystem"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a temp directory and a Cellar root backed by
// either an in-memory or an isolated on-disk filesystem
type TestEnvironment struct {
	TempDir string
	Cellar  string

	FS  filesystem.FS
	Raw afero.Fs

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvIsolated:
		base := t.TempDir()
		env.TempDir = filepath.Join(base, "tmp")
		env.Cellar = filepath.Join(base, "Cellar")
		env.FS = filesystem.NewOS()
		env.Raw = afero.NewOsFs()
	default:
		env.TempDir = "/tmp"
		env.Cellar = "/opt/homebrew/Cellar"
		env.FS, env.Raw = filesystem.NewMemory()
	}

	require.NoError(t, env.Raw.MkdirAll(env.TempDir, 0755))
	return env
}

// StageBinaries writes one executable per name into <stagingDir>/bin
func (e *TestEnvironment) StageBinaries(stagingDir string, names ...string) {
	e.t.Helper()
	bin := filepath.Join(stagingDir, "bin")
	require.NoError(e.t, e.Raw.MkdirAll(bin, 0755))
	for _, name := range names {
		require.NoError(e.t, afero.WriteFile(e.Raw, filepath.Join(bin, name), []byte(name), 0755))
	}
}

// Exists reports whether path exists in the environment
func (e *TestEnvironment) Exists(path string) bool {
	e.t.Helper()
	ok, err := afero.Exists(e.Raw, path)
	require.NoError(e.t, err)
	return ok
}

// AssertExists fails the test when path is missing
func (e *TestEnvironment) AssertExists(path string) {
	e.t.Helper()
	require.Truef(e.t, e.Exists(path), "expected %s to exist", path)
}

// AssertNotExists fails the test when path is present
func (e *TestEnvironment) AssertNotExists(path string) {
	e.t.Helper()
	require.Falsef(e.t, e.Exists(path), "expected %s to be absent", path)
}

// Entries lists the names in dir
func (e *TestEnvironment) Entries(dir string) []string {
	e.t.Helper()
	infos, err := afero.ReadDir(e.Raw, dir)
	require.NoError(e.t, err)
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names
}

// Setenv sets an environment variable for the duration of the test
func (e *TestEnvironment) Setenv(key, value string) {
	e.t.Setenv(key, value)
}

// Unsetenv clears an environment variable for the duration of the test
func (e *TestEnvironment) Unsetenv(key string) {
	e.t.Helper()
	if old, ok := os.LookupEnv(key); ok {
		require.NoError(e.t, os.Unsetenv(key))
		e.t.Cleanup(func() { _ = os.Setenv(key, old) })
	}
}
