package core

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"podrefs/internal/types"
)

type ManifestCompiler struct{}

func NewManifestCompiler() ManifestCompiler {
	return ManifestCompiler{}
}

// ValidateManifest checks the structural invariants of a manifest before
// any filesystem work happens: unique package and spec names, subspecs
// rooted at their package, relative directory declarations, and targets
// referencing only declared specs.
func (c ManifestCompiler) ValidateManifest(ctx context.Context, manifest types.Manifest) error {
	assert.NotEmpty(ctx, manifest.APIVersion, "api_version must be set")
	assert.NotEmpty(ctx, manifest.Metadata.Name, "metadata.name must be set")
	if len(manifest.Packages) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("packages must not be empty")
	}
	if len(manifest.Targets) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("targets must not be empty")
	}
	specNames := map[string]struct{}{}
	packageNames := map[string]struct{}{}
	for _, pkg := range manifest.Packages {
		if err := validatePackage(pkg); err != nil {
			return err
		}
		if _, ok := packageNames[pkg.Name]; ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("duplicate package name: %s", pkg.Name))
		}
		packageNames[pkg.Name] = struct{}{}
		for _, decl := range pkg.Specs {
			if _, ok := specNames[decl.Name]; ok {
				return errbuilder.New().
					WithCode(errbuilder.CodeAlreadyExists).
					WithMsg(fmt.Sprintf("duplicate spec name: %s", decl.Name))
			}
			specNames[decl.Name] = struct{}{}
		}
	}
	for _, target := range manifest.Targets {
		if err := validateTarget(target, specNames); err != nil {
			return err
		}
	}
	log.Ctx(ctx).Debug().Str("manifest", manifest.Metadata.Name).Msg("manifest validated")
	return nil
}

func validatePackage(pkg types.ManifestPackage) error {
	if strings.TrimSpace(pkg.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("packages.name must not be empty")
	}
	if strings.Contains(pkg.Name, "/") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package name must not contain a slash: %s", pkg.Name))
	}
	if strings.TrimSpace(pkg.Path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package %s missing path", pkg.Name))
	}
	if len(pkg.Specs) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package %s declares no specs", pkg.Name))
	}
	for _, decl := range pkg.Specs {
		if err := validateSpecDecl(pkg, decl); err != nil {
			return err
		}
	}
	for platform, minimum := range pkg.Platforms {
		if strings.TrimSpace(platform) == "" || strings.TrimSpace(minimum) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("package %s has an empty platform entry", pkg.Name))
		}
	}
	return nil
}

func validateSpecDecl(pkg types.ManifestPackage, decl types.SpecDecl) error {
	if strings.TrimSpace(decl.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package %s has a spec without a name", pkg.Name))
	}
	if types.RootName(decl.Name) != pkg.Name {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("spec %s is not rooted at package %s", decl.Name, pkg.Name))
	}
	dirs := map[string][]string{
		"sources":             decl.Sources,
		"public_headers":      decl.PublicHeaders,
		"private_headers":     decl.PrivateHeaders,
		"resources":           decl.Resources,
		"resource_bundles":    decl.ResourceBundles,
		"vendored_frameworks": decl.VendoredFrameworks,
		"vendored_libraries":  decl.VendoredLibraries,
	}
	for field, entries := range dirs {
		for _, entry := range entries {
			if err := validateRelativeEntry(decl.Name, field, entry); err != nil {
				return err
			}
		}
	}
	if decl.HeaderMappingsDir != "" {
		if err := validateRelativeEntry(decl.Name, "header_mappings_dir", decl.HeaderMappingsDir); err != nil {
			return err
		}
	}
	return nil
}

func validateRelativeEntry(specName string, field string, entry string) error {
	if strings.TrimSpace(entry) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("spec %s has an empty %s entry", specName, field))
	}
	if filepath.IsAbs(entry) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("spec %s %s must be relative to the package root: %s", specName, field, entry))
	}
	clean := filepath.ToSlash(filepath.Clean(entry))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("spec %s %s escapes the package root: %s", specName, field, entry))
	}
	return nil
}

func validateTarget(target types.ManifestTarget, specNames map[string]struct{}) error {
	if strings.TrimSpace(target.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("targets.name must not be empty")
	}
	if strings.TrimSpace(target.Platform.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("target %s missing platform name", target.Name))
	}
	if len(target.Packages) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("target %s links no packages", target.Name))
	}
	for _, specName := range target.Packages {
		if _, ok := specNames[specName]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("target %s references unknown spec: %s", target.Name, specName))
		}
	}
	return nil
}
