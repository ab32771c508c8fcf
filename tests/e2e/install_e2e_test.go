package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"podrefs/tests/testutil"
)

func TestInstallCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	outDir := t.TempDir()

	cmd := exec.Command("go", "run", "./cmd/podrefs", "install",
		"--manifest", "fixtures/podrefs.yaml",
		"--output", outDir,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	require.FileExists(t, filepath.Join(outDir, "project.yaml"))
	require.FileExists(t, filepath.Join(outDir, "headers-build.yaml"))
	require.FileExists(t, filepath.Join(outDir, "headers-public.yaml"))
	require.FileExists(t, filepath.Join(outDir, "install.report"))
}
