package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellHookRunnerExecutesInSandboxDir(t *testing.T) {
	dir := t.TempDir()
	runner := NewShellHookRunner()

	err := runner.RunHooks(t.Context(), dir, []string{
		"mkdir -p Generated",
		"printf 'x' > Generated/stamp.txt",
	})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "Generated", "stamp.txt"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(content))
}

func TestShellHookRunnerReportsExitStatus(t *testing.T) {
	runner := NewShellHookRunner()
	err := runner.RunHooks(t.Context(), t.TempDir(), []string{
		"echo 'before failure'",
		"exit 3",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hook exited with status 3")
}

func TestShellHookRunnerStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	runner := NewShellHookRunner()
	err := runner.RunHooks(t.Context(), dir, []string{
		"false",
		"printf 'x' > never.txt",
	})
	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "never.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestShellHookRunnerRejectsUnparseableCommand(t *testing.T) {
	runner := NewShellHookRunner()
	err := runner.RunHooks(t.Context(), t.TempDir(), []string{`echo "unterminated`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse hook")
}

func TestShellHookRunnerNoCommandsNoError(t *testing.T) {
	runner := NewShellHookRunner()
	require.NoError(t, runner.RunHooks(t.Context(), t.TempDir(), nil))
}
