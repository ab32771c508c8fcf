package adapters

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"podrefs/internal/ports"
	"podrefs/internal/types"
)

type OutputReaderAdapter struct{}

func NewOutputReaderAdapter() OutputReaderAdapter {
	return OutputReaderAdapter{}
}

func (a OutputReaderAdapter) ReadProjectFile(path string) (types.ProjectFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.ProjectFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("project.yaml not found").
			WithCause(err)
	}
	var project types.ProjectFile
	if err := yaml.Unmarshal(content, &project); err != nil {
		return types.ProjectFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid project.yaml format").
			WithCause(err)
	}
	return project, nil
}

func (a OutputReaderAdapter) ReadHeaderManifest(path string) (types.HeaderManifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.HeaderManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("header manifest not found").
			WithCause(err)
	}
	var manifest types.HeaderManifest
	if err := yaml.Unmarshal(content, &manifest); err != nil {
		return types.HeaderManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid header manifest format").
			WithCause(err)
	}
	return manifest, nil
}

func (a OutputReaderAdapter) ReadInstallReport(path string) (types.InstallReport, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.InstallReport{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("install.report not found").
			WithCause(err)
	}
	report := types.InstallReport{}
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return types.InstallReport{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid install.report format")
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		switch key {
		case "packages":
			report.Packages = parseCount(value)
		case "file_references":
			report.FileReferences = parseCount(value)
		case "header_files":
			report.HeaderFiles = parseCount(value)
		case "search_roots":
			report.SearchRoots = parseCount(value)
		case "created_at":
			report.CreatedAt = value
			if parsed := parseTimeFlexible(value); !parsed.IsZero() {
				report.CreatedAt = parsed.Format(time.RFC3339)
			}
		case "collision":
			collision, err := parseCollision(value)
			if err != nil {
				return types.InstallReport{}, err
			}
			report.Collisions = append(report.Collisions, collision)
		}
	}
	return report, nil
}

func parseCount(value string) int {
	count, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return count
}

func parseCollision(value string) (types.CollisionWarning, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return types.CollisionWarning{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid collision entry in install.report")
	}
	return types.CollisionWarning{
		Scope:       types.HeaderScope(strings.TrimSpace(parts[0])),
		Destination: strings.TrimSpace(parts[1]),
		Packages:    strings.Split(strings.TrimSpace(parts[2]), "|"),
	}, nil
}

var _ ports.OutputReaderPort = OutputReaderAdapter{}
