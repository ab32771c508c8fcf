package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"podrefs/internal/types"
)

const (
	ProjectFileName       = "project.yaml"
	InstallReportFileName = "install.report"
)

// HeaderManifestFileName returns the output file name of one header
// store scope: headers-build.yaml or headers-public.yaml.
func HeaderManifestFileName(scope types.HeaderScope) string {
	return fmt.Sprintf("headers-%s.yaml", scope)
}

type OutputFileAdapter struct {
	Dir string
}

func NewOutputFileAdapter(dir string) OutputFileAdapter {
	return OutputFileAdapter{Dir: dir}
}

func (a OutputFileAdapter) WriteProjectFile(project types.ProjectFile) error {
	path, err := a.ensurePath(ProjectFileName)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(project)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode project file").
			WithCause(err)
	}
	return os.WriteFile(path, data, 0644)
}

func (a OutputFileAdapter) WriteHeaderManifest(manifest types.HeaderManifest) error {
	path, err := a.ensurePath(HeaderManifestFileName(manifest.Scope))
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode header manifest").
			WithCause(err)
	}
	return os.WriteFile(path, data, 0644)
}

func (a OutputFileAdapter) WriteInstallReport(report types.InstallReport) error {
	path, err := a.ensurePath(InstallReportFileName)
	if err != nil {
		return err
	}
	lines := []string{
		fmt.Sprintf("packages=%d", report.Packages),
		fmt.Sprintf("file_references=%d", report.FileReferences),
		fmt.Sprintf("header_files=%d", report.HeaderFiles),
		fmt.Sprintf("search_roots=%d", report.SearchRoots),
		fmt.Sprintf("created_at=%s", report.CreatedAt),
	}
	for _, collision := range report.Collisions {
		lines = append(lines, fmt.Sprintf("collision=%s,%s,%s",
			collision.Scope,
			collision.Destination,
			strings.Join(collision.Packages, "|"),
		))
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}

func (a OutputFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}
