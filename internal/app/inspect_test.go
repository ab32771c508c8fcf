package app

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podrefs/internal/types"
)

func TestInspectApp(t *testing.T) {
	outDir := t.TempDir()
	service := NewService()

	_, err := service.Install(t.Context(), InstallRequest{
		ManifestPath: fixtureManifestPath(t),
		OutputDir:    outDir,
	})
	require.NoError(t, err)

	result, err := service.Inspect(InspectRequest{OutputDir: outDir})
	require.NoError(t, err)

	if diff := cmp.Diff("demo-app", result.ProjectName); diff != "" {
		t.Fatalf("unexpected project name (-want +got):\n%s", diff)
	}
	assert.Len(t, result.Groups, 8)

	counts := map[string]int{}
	for _, group := range result.Groups {
		counts[group.Path] = group.Count
	}
	assert.Equal(t, 1, counts["Packages/Kit/Resources"])
	assert.Equal(t, 2, counts["Development Packages/DevTools/Sources/util"])
	assert.Equal(t, 0, counts["Development Packages"])

	require.Len(t, result.Scopes, 2)
	build := result.Scopes[0]
	assert.Equal(t, types.HeaderScopeBuild, build.Scope)
	assert.Equal(t, 2, build.SearchRoots)
	assert.Equal(t, 3, build.Links)
	assert.Equal(t, 6, build.Headers)

	public := result.Scopes[1]
	assert.Equal(t, types.HeaderScopePublic, public.Scope)
	assert.Equal(t, 2, public.SearchRoots)
	assert.Equal(t, 5, public.Headers)

	assert.Equal(t, 10, result.Report.FileReferences)
	assert.Equal(t, 2, result.Report.Packages)
}

func TestInspectAppRequiresOutputDir(t *testing.T) {
	service := NewService()
	_, err := service.Inspect(InspectRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output directory is required")
}

func TestInspectAppMissingOutputs(t *testing.T) {
	service := NewService()
	_, err := service.Inspect(InspectRequest{OutputDir: filepath.Join(t.TempDir(), "empty")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project.yaml not found")
}
