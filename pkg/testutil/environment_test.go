package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryEnvironmentStagesBinaries(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly)
	staging := filepath.Join(env.TempDir, "cargo-brew-test")

	env.StageBinaries(staging, "widget", "widget-cli")

	env.AssertExists(filepath.Join(staging, "bin", "widget"))
	assert.ElementsMatch(t, []string{"widget", "widget-cli"}, env.Entries(filepath.Join(staging, "bin")))
	env.AssertNotExists(env.Cellar)
}

func TestIsolatedEnvironmentUsesDisk(t *testing.T) {
	env := NewTestEnvironment(t, EnvIsolated)

	assert.True(t, filepath.IsAbs(env.TempDir))
	env.AssertExists(env.TempDir)

	info, err := env.FS.Stat(env.TempDir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
