package app

import "podrefs/internal/types"

type ValidateRequest struct {
	ManifestPath string
}

type ValidateResult struct {
	ProjectName string
	Packages    int
	Targets     int
}

type InstallRequest struct {
	ManifestPath string
	SandboxDir   string
	OutputDir    string
	SkipHooks    bool
}

type InstallResult struct {
	ProjectName    string
	OutputDir      string
	Packages       int
	FileReferences int
	HeaderFiles    int
	SearchRoots    int
	Collisions     []types.CollisionWarning
}

type InspectRequest struct {
	OutputDir string
}

// InspectGroupSummary reports one project group together with its file
// reference count.  Empty container groups are part of the hierarchy
// and show up with a zero count.
type InspectGroupSummary struct {
	Path  string
	Count int
}

// InspectScopeSummary aggregates one header manifest: how many search
// roots, destinations and header files the scope carries.
type InspectScopeSummary struct {
	Scope       types.HeaderScope
	SearchRoots int
	Links       int
	Headers     int
}

type InspectResult struct {
	ProjectName string
	Groups      []InspectGroupSummary
	Scopes      []InspectScopeSummary
	Report      types.InstallReport
}
