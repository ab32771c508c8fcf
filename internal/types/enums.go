package types

// FileCategory identifies one of the file lists a file accessor exposes.
// The installer walks a fixed table of categories rather than looking
// accessor methods up by name, so the set is closed.
type FileCategory string

const (
	FileCategorySources            FileCategory = "sources"
	FileCategoryResources          FileCategory = "resources"
	FileCategoryResourceBundles    FileCategory = "resource-bundles"
	FileCategoryVendoredFrameworks FileCategory = "vendored-frameworks"
	FileCategoryVendoredLibraries  FileCategory = "vendored-libraries"
)

// GroupCategory selects the named sub-group of a package's project group
// that a file reference lands in.  The default category places references
// directly in the package group itself.
type GroupCategory string

const (
	GroupCategoryDefault    GroupCategory = ""
	GroupCategoryFrameworks GroupCategory = "Frameworks"
	GroupCategoryResources  GroupCategory = "Resources"
)

// HeaderScope distinguishes the two header stores an installation feeds:
// the build scope is visible only while compiling the packages themselves,
// the public scope is what downstream targets may include.
type HeaderScope string

const (
	HeaderScopeBuild  HeaderScope = "build"
	HeaderScopePublic HeaderScope = "public"
)
