package types

// ProjectGroup is one group node of the serialized project tree.  Files
// appear in the order their references were added; groups are sorted by
// path when the tree is serialized.
type ProjectGroup struct {
	Path  string   `yaml:"path"`
	Files []string `yaml:"files,omitempty"`
}

type ProjectFile struct {
	Name   string         `yaml:"name"`
	Groups []ProjectGroup `yaml:"groups"`
}

// SearchRoot is one registered header namespace for one platform.
type SearchRoot struct {
	Namespace string `yaml:"namespace"`
	Platform  string `yaml:"platform"`
}

// HeaderLink maps one destination sub-directory to the headers published
// under it for one platform.
type HeaderLink struct {
	Destination string   `yaml:"destination"`
	Platform    string   `yaml:"platform"`
	Headers     []string `yaml:"headers"`
}

// HeaderManifest is the serialized layout of one header store.
type HeaderManifest struct {
	Scope       HeaderScope  `yaml:"scope"`
	SearchRoots []SearchRoot `yaml:"search_roots"`
	Links       []HeaderLink `yaml:"links"`
}

// CollisionWarning records one destination fed by more than one package.
// The mapping keeps every contributor's headers; the warning surfaces the
// shadowing risk to the caller.
type CollisionWarning struct {
	Scope       HeaderScope
	Destination string
	Packages    []string
}

// InstallReport summarizes one install run.
type InstallReport struct {
	Packages       int
	FileReferences int
	HeaderFiles    int
	SearchRoots    int
	Collisions     []CollisionWarning
	CreatedAt      string
}
