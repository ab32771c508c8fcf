package adapters

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podrefs/internal/types"
)

func groupPaths(file types.ProjectFile) []string {
	paths := make([]string, 0, len(file.Groups))
	for _, group := range file.Groups {
		paths = append(paths, group.Path)
	}
	return paths
}

func TestProjectAdapterEnsureGroupCreatesAncestors(t *testing.T) {
	adapter := NewProjectAdapter("Demo")
	ref, err := adapter.EnsureGroup([]string{"Packages", "Kit", "Resources"}, "/sandbox/Kit")
	require.NoError(t, err)
	assert.Equal(t, "Packages/Kit/Resources", ref.Path)
	assert.Equal(t, "/sandbox/Kit", ref.BaseDir)

	if diff := cmp.Diff(
		[]string{"Packages", "Packages/Kit", "Packages/Kit/Resources"},
		groupPaths(adapter.File()),
	); diff != "" {
		t.Fatalf("unexpected group paths (-want +got):\n%s", diff)
	}
}

func TestProjectAdapterEnsureGroupKeepsFirstBaseDir(t *testing.T) {
	adapter := NewProjectAdapter("Demo")
	first, err := adapter.EnsureGroup([]string{"Packages", "Kit"}, "/sandbox/Kit")
	require.NoError(t, err)
	second, err := adapter.EnsureGroup([]string{"Packages", "Kit"}, "/elsewhere")
	require.NoError(t, err)
	assert.Equal(t, first.BaseDir, second.BaseDir)
	assert.Equal(t, "/sandbox/Kit", second.BaseDir)
}

func TestProjectAdapterRejectsEmptySegments(t *testing.T) {
	adapter := NewProjectAdapter("Demo")
	_, err := adapter.EnsureGroup(nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "group path must not be empty")

	_, err = adapter.EnsureGroup([]string{"Packages", " "}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "group segment must not be empty")
}

func TestProjectAdapterAddFileReferenceDedupes(t *testing.T) {
	adapter := NewProjectAdapter("Demo")
	ref, err := adapter.EnsureGroup([]string{"Packages", "Kit"}, "/sandbox/Kit")
	require.NoError(t, err)

	require.NoError(t, adapter.AddFileReference("/sandbox/Kit/Core.m", ref, false))
	require.NoError(t, adapter.AddFileReference("/sandbox/Kit/Core.m", ref, false))
	require.NoError(t, adapter.AddFileReference("/sandbox/Kit/Util.m", ref, false))

	file := adapter.File()
	for _, group := range file.Groups {
		if group.Path != "Packages/Kit" {
			continue
		}
		if diff := cmp.Diff([]string{"/sandbox/Kit/Core.m", "/sandbox/Kit/Util.m"}, group.Files); diff != "" {
			t.Fatalf("unexpected files (-want +got):\n%s", diff)
		}
		return
	}
	t.Fatal("group Packages/Kit not found")
}

func TestProjectAdapterAddFileReferenceUnknownGroup(t *testing.T) {
	adapter := NewProjectAdapter("Demo")
	err := adapter.AddFileReference("/sandbox/Kit/Core.m", types.GroupRef{Path: "Packages/Ghost"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown group")
}

func TestProjectAdapterMirrorsDirectoryLayout(t *testing.T) {
	base := t.TempDir()
	adapter := NewProjectAdapter("Demo")
	ref, err := adapter.EnsureGroup([]string{"Development Packages", "Kit"}, base)
	require.NoError(t, err)

	require.NoError(t, adapter.AddFileReference(filepath.Join(base, "Kit.h"), ref, true))
	require.NoError(t, adapter.AddFileReference(filepath.Join(base, "Sources", "impl", "Engine.m"), ref, true))
	require.NoError(t, adapter.AddFileReference(filepath.Join(base, "Sources", "impl", "Cache.m"), ref, true))

	file := adapter.File()
	byPath := map[string][]string{}
	for _, group := range file.Groups {
		byPath[group.Path] = group.Files
	}
	if diff := cmp.Diff([]string{filepath.Join(base, "Kit.h")}, byPath["Development Packages/Kit"]); diff != "" {
		t.Fatalf("unexpected root group files (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(
		[]string{filepath.Join(base, "Sources", "impl", "Engine.m"), filepath.Join(base, "Sources", "impl", "Cache.m")},
		byPath["Development Packages/Kit/Sources/impl"],
	); diff != "" {
		t.Fatalf("unexpected mirrored group files (-want +got):\n%s", diff)
	}
}

func TestProjectAdapterMirrorRejectsFilesOutsideBase(t *testing.T) {
	adapter := NewProjectAdapter("Demo")
	ref, err := adapter.EnsureGroup([]string{"Development Packages", "Kit"}, "/sandbox/Kit")
	require.NoError(t, err)

	err = adapter.AddFileReference("/elsewhere/Stray.m", ref, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside group base")
}

func TestProjectAdapterFileSortsGroupsByPath(t *testing.T) {
	adapter := NewProjectAdapter("Demo")
	_, err := adapter.EnsureGroup([]string{"Packages", "Zeta"}, "/sandbox/Zeta")
	require.NoError(t, err)
	_, err = adapter.EnsureGroup([]string{"Packages", "Alpha"}, "/sandbox/Alpha")
	require.NoError(t, err)

	if diff := cmp.Diff(
		[]string{"Packages", "Packages/Alpha", "Packages/Zeta"},
		groupPaths(adapter.File()),
	); diff != "" {
		t.Fatalf("unexpected group order (-want +got):\n%s", diff)
	}
}
