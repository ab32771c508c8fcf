package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"podrefs/internal/types"
)

func TestApplyInstallDefaults(t *testing.T) {
	manifestPath := filepath.FromSlash("/project/podrefs.yaml")
	defaults := types.ManifestDefaults{
		Sandbox: "sandbox",
		Output:  "out",
	}

	tests := []struct {
		name     string
		req      InstallRequest
		expected InstallRequest
	}{
		{
			name: "empty request gets defaults relative to manifest dir",
			req:  InstallRequest{},
			expected: InstallRequest{
				SandboxDir: filepath.FromSlash("/project/sandbox"),
				OutputDir:  filepath.FromSlash("/project/out"),
			},
		},
		{
			name: "explicit values override defaults",
			req: InstallRequest{
				SandboxDir: "/custom/sandbox",
				OutputDir:  "/custom/out",
			},
			expected: InstallRequest{
				SandboxDir: "/custom/sandbox",
				OutputDir:  "/custom/out",
			},
		},
		{
			name: "partial override mixes with defaults",
			req:  InstallRequest{OutputDir: "/custom/out"},
			expected: InstallRequest{
				SandboxDir: filepath.FromSlash("/project/sandbox"),
				OutputDir:  "/custom/out",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyInstallDefaults(tt.req, manifestPath, defaults)
			assert.Equal(t, tt.expected.SandboxDir, got.SandboxDir)
			assert.Equal(t, tt.expected.OutputDir, got.OutputDir)
		})
	}
}

func TestApplyInstallDefaultsAbsoluteDefaultKept(t *testing.T) {
	defaults := types.ManifestDefaults{Sandbox: filepath.FromSlash("/shared/sandbox")}
	got := applyInstallDefaults(InstallRequest{}, filepath.FromSlash("/project/podrefs.yaml"), defaults)
	assert.Equal(t, filepath.FromSlash("/shared/sandbox"), got.SandboxDir)
}

func TestCheckInstallDefaultsHints(t *testing.T) {
	defaults := types.ManifestDefaults{
		Sandbox: "sandbox",
		Output:  "out",
	}

	t.Run("no hints when request is empty", func(t *testing.T) {
		hints := checkInstallDefaultsHints(InstallRequest{}, defaults)
		assert.Empty(t, hints)
	})

	t.Run("hints when flag duplicates default", func(t *testing.T) {
		req := InstallRequest{
			SandboxDir: "./sandbox",
			OutputDir:  "./out",
		}
		hints := checkInstallDefaultsHints(req, defaults)
		assert.Len(t, hints, 2)
		assert.Contains(t, hints[0], "--sandbox")
		assert.Contains(t, hints[1], "--output")
	})

	t.Run("no hints when default is empty", func(t *testing.T) {
		req := InstallRequest{SandboxDir: "./sandbox"}
		hints := checkInstallDefaultsHints(req, types.ManifestDefaults{})
		assert.Empty(t, hints)
	})
}
