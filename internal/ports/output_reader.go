package ports

import "podrefs/internal/types"

type OutputReaderPort interface {
	ReadProjectFile(path string) (types.ProjectFile, error)
	ReadHeaderManifest(path string) (types.HeaderManifest, error)
	ReadInstallReport(path string) (types.InstallReport, error)
}
