package app

import (
	"context"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"podrefs/internal/adapters"
	"podrefs/internal/core"
	"podrefs/internal/types"
)

// Install runs the full file-reference pipeline: validate the manifest,
// run pre-install hooks, discover each target's files, populate the
// project model and header stores, and write the four output files.
// Sandbox and output directories fall back to the manifest defaults
// when the request leaves them empty.
func (s Service) Install(ctx context.Context, req InstallRequest) (InstallResult, error) {
	manifestPath := strings.TrimSpace(req.ManifestPath)
	if manifestPath == "" {
		return InstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}

	manifest, err := s.Manifests.LoadManifest(manifestPath)
	if err != nil {
		return InstallResult{}, err
	}
	emitHints(checkInstallDefaultsHints(req, manifest.Defaults))
	req = applyInstallDefaults(req, manifestPath, manifest.Defaults)

	sandboxDir := strings.TrimSpace(req.SandboxDir)
	if sandboxDir == "" {
		return InstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("sandbox directory is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return InstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}

	compiler := core.NewManifestCompiler()
	if err := compiler.ValidateManifest(ctx, manifest); err != nil {
		return InstallResult{}, err
	}
	if err := core.ValidateTargetPlatforms(ctx, manifest); err != nil {
		return InstallResult{}, err
	}

	sandbox := adapters.NewDirSandbox(sandboxDir, manifest)
	if !req.SkipHooks && len(manifest.Hooks.PreInstall) > 0 {
		if err := s.Hooks.RunHooks(ctx, sandboxDir, manifest.Hooks.PreInstall); err != nil {
			return InstallResult{}, err
		}
	}

	targets, err := adapters.BuildPodTargets(manifest, sandbox)
	if err != nil {
		return InstallResult{}, err
	}

	project := adapters.NewProjectAdapter(manifest.Metadata.Name)
	buildStore := adapters.NewHeaderStoreAdapter(types.HeaderScopeBuild)
	publicStore := adapters.NewHeaderStoreAdapter(types.HeaderScopePublic)
	installer := core.NewFileReferenceInstaller(project, sandbox, buildStore, publicStore)
	report, err := installer.Install(ctx, targets)
	if err != nil {
		return InstallResult{}, err
	}
	report.CreatedAt = installCreatedAt(s.Clock)

	output := adapters.NewOutputFileAdapter(outputDir)
	if err := output.WriteProjectFile(project.File()); err != nil {
		return InstallResult{}, err
	}
	if err := output.WriteHeaderManifest(buildStore.Manifest()); err != nil {
		return InstallResult{}, err
	}
	if err := output.WriteHeaderManifest(publicStore.Manifest()); err != nil {
		return InstallResult{}, err
	}
	if err := output.WriteInstallReport(report); err != nil {
		return InstallResult{}, err
	}

	for _, collision := range report.Collisions {
		log.Ctx(ctx).Warn().
			Str("scope", string(collision.Scope)).
			Str("destination", collision.Destination).
			Strs("packages", collision.Packages).
			Msg("header destination fed by multiple packages")
	}

	return InstallResult{
		ProjectName:    manifest.Metadata.Name,
		OutputDir:      outputDir,
		Packages:       report.Packages,
		FileReferences: report.FileReferences,
		HeaderFiles:    report.HeaderFiles,
		SearchRoots:    report.SearchRoots,
		Collisions:     report.Collisions,
	}, nil
}

func installCreatedAt(clock func() time.Time) string {
	now := time.Now().UTC()
	if clock != nil {
		now = clock().UTC()
	}
	return now.Format(time.RFC3339)
}
