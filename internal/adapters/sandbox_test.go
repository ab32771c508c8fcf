package adapters

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"podrefs/internal/types"
)

func sandboxManifest() types.Manifest {
	return types.Manifest{
		Packages: []types.ManifestPackage{
			{Name: "Kit", Path: "Kit"},
			{Name: "DevTools", Path: filepath.FromSlash("/home/dev/DevTools"), Local: true},
		},
	}
}

func TestDirSandboxResolvesPackageRoots(t *testing.T) {
	sandbox := NewDirSandbox(filepath.FromSlash("/workspace/sandbox"), sandboxManifest())

	// Relative paths resolve against the sandbox root, absolute ones
	// stand alone.
	assert.Equal(t, filepath.FromSlash("/workspace/sandbox/Kit"), sandbox.PackageRoot("Kit"))
	assert.Equal(t, filepath.FromSlash("/home/dev/DevTools"), sandbox.PackageRoot("DevTools"))
}

func TestDirSandboxResolvesSubspecsThroughRoot(t *testing.T) {
	sandbox := NewDirSandbox(filepath.FromSlash("/workspace/sandbox"), sandboxManifest())

	assert.Equal(t, sandbox.PackageRoot("Kit"), sandbox.PackageRoot("Kit/UI"))
	assert.True(t, sandbox.IsLocalPackage("DevTools/Extras"))
}

func TestDirSandboxLocality(t *testing.T) {
	sandbox := NewDirSandbox(filepath.FromSlash("/workspace/sandbox"), sandboxManifest())

	assert.False(t, sandbox.IsLocalPackage("Kit"))
	assert.True(t, sandbox.IsLocalPackage("DevTools"))
	assert.False(t, sandbox.IsLocalPackage("Unknown"))
}

func TestDirSandboxUnknownPackageEmptyRoot(t *testing.T) {
	sandbox := NewDirSandbox(filepath.FromSlash("/workspace/sandbox"), sandboxManifest())
	assert.Empty(t, sandbox.PackageRoot("Unknown"))
}
