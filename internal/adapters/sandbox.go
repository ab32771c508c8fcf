package adapters

import (
	"path/filepath"

	"podrefs/internal/ports"
	"podrefs/internal/types"
)

// DirSandbox maps package names to their root directories below a
// sandbox root and knows which packages are locally path-referenced.
// Relative manifest paths resolve against the sandbox root; absolute
// ones are taken as-is, which is how local development packages usually
// live outside the sandbox.
type DirSandbox struct {
	Root string

	roots map[string]string
	local map[string]bool
}

func NewDirSandbox(root string, manifest types.Manifest) DirSandbox {
	sandbox := DirSandbox{
		Root:  root,
		roots: map[string]string{},
		local: map[string]bool{},
	}
	for _, pkg := range manifest.Packages {
		path := pkg.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		sandbox.roots[pkg.Name] = path
		sandbox.local[pkg.Name] = pkg.Local
	}
	return sandbox
}

func (s DirSandbox) IsLocalPackage(name string) bool {
	return s.local[types.RootName(name)]
}

func (s DirSandbox) PackageRoot(name string) string {
	return s.roots[types.RootName(name)]
}

var _ ports.Sandbox = DirSandbox{}
