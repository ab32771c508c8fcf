package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"podrefs/internal/types"
)

func baseManifest() types.Manifest {
	return types.Manifest{
		APIVersion: "v1",
		Metadata:   types.Metadata{Name: "demo-app"},
		Packages: []types.ManifestPackage{
			{
				Name: "Kit",
				Path: "Kit",
				Specs: []types.SpecDecl{
					{Name: "Kit", Sources: []string{"Sources"}},
					{Name: "Kit/UI", Sources: []string{"UI"}},
				},
			},
		},
		Targets: []types.ManifestTarget{
			{
				Name:     "App",
				Platform: types.Platform{Name: "ios", DeploymentTarget: "12.0"},
				Packages: []string{"Kit", "Kit/UI"},
			},
		},
	}
}

func TestManifestCompilerAcceptsValidManifest(t *testing.T) {
	compiler := NewManifestCompiler()
	require.NoError(t, compiler.ValidateManifest(t.Context(), baseManifest()))
}

func TestManifestCompilerValidateCases(t *testing.T) {
	compiler := NewManifestCompiler()

	tests := []struct {
		name  string
		build func() types.Manifest
	}{
		{
			name: "no packages",
			build: func() types.Manifest {
				manifest := baseManifest()
				manifest.Packages = nil
				return manifest
			},
		},
		{
			name: "no targets",
			build: func() types.Manifest {
				manifest := baseManifest()
				manifest.Targets = nil
				return manifest
			},
		},
		{
			name: "package without path",
			build: func() types.Manifest {
				manifest := baseManifest()
				manifest.Packages[0].Path = ""
				return manifest
			},
		},
		{
			name: "package name with slash",
			build: func() types.Manifest {
				manifest := baseManifest()
				manifest.Packages[0].Name = "Kit/Bad"
				return manifest
			},
		},
		{
			name: "package without specs",
			build: func() types.Manifest {
				manifest := baseManifest()
				manifest.Packages[0].Specs = nil
				return manifest
			},
		},
		{
			name: "spec not rooted at package",
			build: func() types.Manifest {
				manifest := baseManifest()
				manifest.Packages[0].Specs[1].Name = "Other/UI"
				return manifest
			},
		},
		{
			name: "duplicate spec names",
			build: func() types.Manifest {
				manifest := baseManifest()
				manifest.Packages[0].Specs[1].Name = "Kit"
				return manifest
			},
		},
		{
			name: "absolute source entry",
			build: func() types.Manifest {
				manifest := baseManifest()
				manifest.Packages[0].Specs[0].Sources = []string{"/etc"}
				return manifest
			},
		},
		{
			name: "source entry escaping the package root",
			build: func() types.Manifest {
				manifest := baseManifest()
				manifest.Packages[0].Specs[0].Sources = []string{"../outside"}
				return manifest
			},
		},
		{
			name: "header mappings dir escaping the package root",
			build: func() types.Manifest {
				manifest := baseManifest()
				manifest.Packages[0].Specs[0].HeaderMappingsDir = "../include"
				return manifest
			},
		},
		{
			name: "target without platform",
			build: func() types.Manifest {
				manifest := baseManifest()
				manifest.Targets[0].Platform = types.Platform{}
				return manifest
			},
		},
		{
			name: "target referencing unknown spec",
			build: func() types.Manifest {
				manifest := baseManifest()
				manifest.Targets[0].Packages = []string{"Missing"}
				return manifest
			},
		},
		{
			name: "empty platform minimum",
			build: func() types.Manifest {
				manifest := baseManifest()
				manifest.Packages[0].Platforms = map[string]string{"ios": " "}
				return manifest
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := compiler.ValidateManifest(t.Context(), tc.build())
			require.Error(t, err)
		})
	}
}

func TestManifestCompilerRejectsDuplicatePackages(t *testing.T) {
	compiler := NewManifestCompiler()
	manifest := baseManifest()
	manifest.Packages = append(manifest.Packages, manifest.Packages[0])

	err := compiler.ValidateManifest(t.Context(), manifest)
	require.Error(t, err)
}
