package ports

import "podrefs/internal/types"

// FileAccessor is the resolved view of the files one spec contributes on
// one platform.  All paths are absolute and point at files that existed
// when the accessor was last refreshed; the installer treats the
// accessor as read-only apart from Refresh.
type FileAccessor interface {
	// Spec returns the identity and consumer settings of the
	// represented spec.
	Spec() types.PackageSpec

	// Root returns the package root directory on disk.  Relative
	// consumer settings (the header mappings directory) resolve
	// against it.
	Root() string

	// Refresh re-reads every category list from disk, picking up the
	// side effects of hooks that ran since discovery.
	Refresh() error

	SourceFiles() []string
	ResourceFiles() []string
	ResourceBundleFiles() []string
	VendoredFrameworks() []string
	VendoredLibraries() []string

	// Headers returns the build-visible union of public and private
	// headers the spec compiles.
	Headers() []string
	PublicHeaders() []string
	PrivateHeaders() []string

	// VendoredFrameworkHeaders lists the headers found inside the
	// given framework bundle's Headers directory.
	VendoredFrameworkHeaders(framework string) []string
}

// PodTarget is one compiled unit: a platform plus one file accessor per
// linked spec.  Targets are immutable while an installation runs.
type PodTarget struct {
	Name          string
	Platform      types.Platform
	FileAccessors []FileAccessor
}
