package app

import (
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"podrefs/internal/adapters"
	"podrefs/internal/types"
)

// Inspect reads back a previous install's output directory and
// summarizes it: group file counts, header layout per scope, and the
// recorded report.
func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	project, err := s.OutputReader.ReadProjectFile(filepath.Join(outputDir, adapters.ProjectFileName))
	if err != nil {
		return InspectResult{}, err
	}
	report, err := s.OutputReader.ReadInstallReport(filepath.Join(outputDir, adapters.InstallReportFileName))
	if err != nil {
		return InspectResult{}, err
	}

	var scopes []InspectScopeSummary
	for _, scope := range []types.HeaderScope{types.HeaderScopeBuild, types.HeaderScopePublic} {
		manifest, err := s.OutputReader.ReadHeaderManifest(filepath.Join(outputDir, adapters.HeaderManifestFileName(scope)))
		if err != nil {
			return InspectResult{}, err
		}
		scopes = append(scopes, summarizeScope(manifest))
	}

	groups := make([]InspectGroupSummary, 0, len(project.Groups))
	for _, group := range project.Groups {
		groups = append(groups, InspectGroupSummary{
			Path:  group.Path,
			Count: len(group.Files),
		})
	}

	return InspectResult{
		ProjectName: project.Name,
		Groups:      groups,
		Scopes:      scopes,
		Report:      report,
	}, nil
}

func summarizeScope(manifest types.HeaderManifest) InspectScopeSummary {
	summary := InspectScopeSummary{
		Scope:       manifest.Scope,
		SearchRoots: len(manifest.SearchRoots),
		Links:       len(manifest.Links),
	}
	for _, link := range manifest.Links {
		summary.Headers += len(link.Headers)
	}
	return summary
}
