package types

type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// ManifestDefaults provides project-level defaults that the CLI and
// application layer use when a value is not explicitly provided via
// flags or environment variables.  Embedding defaults in the manifest
// eliminates the need for a separate config file or repetitive CLI
// flags.
type ManifestDefaults struct {
	Sandbox string `yaml:"sandbox,omitempty"`
	Output  string `yaml:"output,omitempty"`
}

// Hooks lists shell commands the installer runs at fixed points of the
// pipeline.  Pre-install hooks run after the manifest is validated and
// before any file is discovered, so they may still move files around.
type Hooks struct {
	PreInstall []string `yaml:"pre_install,omitempty"`
}

// SpecDecl declares the file layout of one spec or subspec of a package.
// All directory values are relative to the package root; the name of a
// subspec carries its parent chain separated by slashes ("Core/UI").
type SpecDecl struct {
	Name               string   `yaml:"name"`
	Sources            []string `yaml:"sources,omitempty"`
	PublicHeaders      []string `yaml:"public_headers,omitempty"`
	PrivateHeaders     []string `yaml:"private_headers,omitempty"`
	Resources          []string `yaml:"resources,omitempty"`
	ResourceBundles    []string `yaml:"resource_bundles,omitempty"`
	VendoredFrameworks []string `yaml:"vendored_frameworks,omitempty"`
	VendoredLibraries  []string `yaml:"vendored_libraries,omitempty"`

	// HeaderDir is appended to the package namespace when computing
	// header destinations, so includes take the form
	// <package>/<header_dir>/Header.h.
	HeaderDir string `yaml:"header_dir,omitempty"`

	// HeaderMappingsDir, when set, preserves the directory layout of
	// headers below it instead of flattening them into the namespace
	// root.
	HeaderMappingsDir string `yaml:"header_mappings_dir,omitempty"`
}

type ManifestPackage struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`

	// Local marks a package referenced by a direct filesystem path
	// rather than fetched from a remote source.  Local packages group
	// under "Development Packages" and may mirror their on-disk layout
	// in the generated project.
	Local bool `yaml:"local,omitempty"`

	// Platforms maps a platform name to the minimum deployment target
	// the package supports on it.
	Platforms map[string]string `yaml:"platforms,omitempty"`

	Specs []SpecDecl `yaml:"specs"`
}

type ManifestTarget struct {
	Name     string   `yaml:"name"`
	Platform Platform `yaml:"platform"`

	// Packages lists the spec names the target links, root specs and
	// subspecs alike.
	Packages []string `yaml:"packages"`
}

type Manifest struct {
	APIVersion string            `yaml:"api_version"`
	Metadata   Metadata          `yaml:"metadata"`
	Defaults   ManifestDefaults  `yaml:"defaults,omitempty"`
	Hooks      Hooks             `yaml:"hooks,omitempty"`
	Packages   []ManifestPackage `yaml:"packages"`
	Targets    []ManifestTarget  `yaml:"targets"`
}

// SpecDecl lookup helpers; the compiler guarantees that names are unique
// across the manifest, so the first match is the only match.

// FindPackage returns the package declaration owning the given spec name.
func (m Manifest) FindPackage(specName string) (ManifestPackage, bool) {
	root := RootName(specName)
	for _, pkg := range m.Packages {
		if pkg.Name == root {
			return pkg, true
		}
	}
	return ManifestPackage{}, false
}

// FindSpec returns the spec declaration with the given full name.
func (m Manifest) FindSpec(specName string) (SpecDecl, bool) {
	pkg, ok := m.FindPackage(specName)
	if !ok {
		return SpecDecl{}, false
	}
	for _, decl := range pkg.Specs {
		if decl.Name == specName {
			return decl, true
		}
	}
	return SpecDecl{}, false
}
