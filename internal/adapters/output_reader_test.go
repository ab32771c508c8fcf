package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podrefs/internal/types"
)

func TestReadInstallReport(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    types.InstallReport
	}{
		{
			name:    "basic",
			content: "packages=2\nfile_references=11\nheader_files=5\nsearch_roots=2\ncreated_at=1970-01-01T00:00:00Z\n",
			want: types.InstallReport{
				Packages:       2,
				FileReferences: 11,
				HeaderFiles:    5,
				SearchRoots:    2,
				CreatedAt:      "1970-01-01T00:00:00Z",
			},
		},
		{
			name:    "with collisions",
			content: "packages=3\nfile_references=4\nheader_files=2\nsearch_roots=3\ncreated_at=2026-02-03T00:00:00Z\ncollision=public,Kit/Utils,Kit|LegacyKit\ncollision=build,Base,Base|Other\n",
			want: types.InstallReport{
				Packages:       3,
				FileReferences: 4,
				HeaderFiles:    2,
				SearchRoots:    3,
				CreatedAt:      "2026-02-03T00:00:00Z",
				Collisions: []types.CollisionWarning{
					{Scope: types.HeaderScopePublic, Destination: "Kit/Utils", Packages: []string{"Kit", "LegacyKit"}},
					{Scope: types.HeaderScopeBuild, Destination: "Base", Packages: []string{"Base", "Other"}},
				},
			},
		},
		{
			name:    "legacy timestamp normalized",
			content: "packages=1\nfile_references=1\nheader_files=0\nsearch_roots=1\ncreated_at=2025-06-15 10:30:00\n",
			want: types.InstallReport{
				Packages:       1,
				FileReferences: 1,
				SearchRoots:    1,
				CreatedAt:      "2025-06-15T10:30:00Z",
			},
		},
		{
			name:    "unparseable timestamp kept verbatim",
			content: "packages=1\nfile_references=0\nheader_files=0\nsearch_roots=0\ncreated_at=yesterday\n",
			want: types.InstallReport{
				Packages:  1,
				CreatedAt: "yesterday",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "install.report")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			reader := NewOutputReaderAdapter()
			report, err := reader.ReadInstallReport(path)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, report); diff != "" {
				t.Fatalf("unexpected install report (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadInstallReportMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.report")
	require.NoError(t, os.WriteFile(path, []byte("packages=1\nnot a key value line\n"), 0644))

	reader := NewOutputReaderAdapter()
	_, err := reader.ReadInstallReport(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid install.report format")
}

func TestReadInstallReportMalformedCollision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.report")
	require.NoError(t, os.WriteFile(path, []byte("collision=public,Kit\n"), 0644))

	reader := NewOutputReaderAdapter()
	_, err := reader.ReadInstallReport(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid collision entry")
}

func TestReadInstallReportMissingFile(t *testing.T) {
	reader := NewOutputReaderAdapter()
	_, err := reader.ReadInstallReport(filepath.Join(t.TempDir(), "install.report"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "install.report not found")
}
