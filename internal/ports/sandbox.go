package ports

// Sandbox answers where packages live on disk and how they are
// referenced.  Lookups by subspec name resolve through the root package.
type Sandbox interface {
	// IsLocalPackage reports whether the named package is referenced by
	// a direct filesystem path rather than fetched from a remote
	// source.
	IsLocalPackage(name string) bool

	// PackageRoot returns the on-disk root directory of the named
	// package.
	PackageRoot(name string) string
}
