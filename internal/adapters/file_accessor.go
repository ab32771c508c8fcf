package adapters

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"podrefs/internal/ports"
	"podrefs/internal/shared"
	"podrefs/internal/types"
)

var headerExts = map[string]struct{}{
	".h":   {},
	".hh":  {},
	".hpp": {},
	".ipp": {},
}

var sourceExts = map[string]struct{}{
	".h":     {},
	".hh":    {},
	".hpp":   {},
	".ipp":   {},
	".c":     {},
	".cc":    {},
	".cpp":   {},
	".m":     {},
	".mm":    {},
	".swift": {},
}

// FSFileAccessor resolves the file lists of one spec by walking declared
// directories under the package root.  Walks happen on Refresh, so the
// accessor always reflects the disk state of the last refresh, not the
// one at construction.  Walk order is lexical, which keeps every list
// deterministic.
type FSFileAccessor struct {
	spec types.PackageSpec
	root string
	decl types.SpecDecl

	sources          []string
	resources        []string
	bundles          []string
	frameworks       []string
	libraries        []string
	headers          []string
	publicHeaders    []string
	privateHeaders   []string
	frameworkHeaders map[string][]string
}

func NewFSFileAccessor(spec types.PackageSpec, root string, decl types.SpecDecl) *FSFileAccessor {
	return &FSFileAccessor{
		spec:             spec,
		root:             root,
		decl:             decl,
		frameworkHeaders: map[string][]string{},
	}
}

func (a *FSFileAccessor) Spec() types.PackageSpec { return a.spec }
func (a *FSFileAccessor) Root() string            { return a.root }

// Refresh rebuilds every category list from disk.  Declared directories
// that do not exist resolve to empty lists; a hook may create them
// between discovery and installation.
func (a *FSFileAccessor) Refresh() error {
	sources, err := a.collect(a.decl.Sources, matchExt(sourceExts))
	if err != nil {
		return err
	}
	resources, err := a.collectResources(a.decl.Resources)
	if err != nil {
		return err
	}
	bundles, err := a.collectResources(a.decl.ResourceBundles)
	if err != nil {
		return err
	}
	declaredPublic, err := a.collect(a.decl.PublicHeaders, matchExt(headerExts))
	if err != nil {
		return err
	}
	private, err := a.collect(a.decl.PrivateHeaders, matchExt(headerExts))
	if err != nil {
		return err
	}
	frameworks, frameworkHeaders, err := a.collectFrameworks()
	if err != nil {
		return err
	}
	libraries, err := a.collectEntries(a.decl.VendoredLibraries)
	if err != nil {
		return err
	}

	headers := unionPaths(filterExt(sources, headerExts), declaredPublic, private)
	public := declaredPublic
	if len(a.decl.PublicHeaders) == 0 {
		// No public declaration exposes every header except the
		// explicitly private ones.
		public = subtractPaths(headers, private)
	}

	a.sources = sources
	a.resources = resources
	a.bundles = bundles
	a.frameworks = frameworks
	a.frameworkHeaders = frameworkHeaders
	a.libraries = libraries
	a.headers = headers
	a.publicHeaders = public
	a.privateHeaders = private
	return nil
}

func (a *FSFileAccessor) SourceFiles() []string         { return a.sources }
func (a *FSFileAccessor) ResourceFiles() []string       { return a.resources }
func (a *FSFileAccessor) ResourceBundleFiles() []string { return a.bundles }
func (a *FSFileAccessor) VendoredFrameworks() []string  { return a.frameworks }
func (a *FSFileAccessor) VendoredLibraries() []string   { return a.libraries }
func (a *FSFileAccessor) Headers() []string             { return a.headers }
func (a *FSFileAccessor) PublicHeaders() []string       { return a.publicHeaders }
func (a *FSFileAccessor) PrivateHeaders() []string      { return a.privateHeaders }

func (a *FSFileAccessor) VendoredFrameworkHeaders(framework string) []string {
	return a.frameworkHeaders[framework]
}

// collect walks the declared directories and returns matching files.  A
// declaration may also name a single file directly.
func (a *FSFileAccessor) collect(dirs []string, keep func(string) bool) ([]string, error) {
	var out []string
	for _, dir := range dirs {
		root := filepath.Join(a.root, dir)
		info, err := os.Stat(root)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			if keep(root) {
				out = append(out, root)
			}
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if shouldSkipPackageDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") {
				return nil
			}
			if keep(path) {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to scan package directory").
				WithCause(err)
		}
	}
	return out, nil
}

// collectResources walks resource directories.  Every regular file
// counts, and a sub-directory carrying an extension ("Media.xcassets")
// is treated as an opaque bundle: one entry, no descent.
func (a *FSFileAccessor) collectResources(dirs []string) ([]string, error) {
	var out []string
	for _, dir := range dirs {
		root := filepath.Join(a.root, dir)
		info, err := os.Stat(root)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			out = append(out, root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if shouldSkipPackageDir(d.Name()) {
					return filepath.SkipDir
				}
				if path != root && filepath.Ext(d.Name()) != "" {
					out = append(out, path)
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") {
				return nil
			}
			out = append(out, path)
			return nil
		})
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to scan resource directory").
				WithCause(err)
		}
	}
	return out, nil
}

// collectFrameworks resolves declared framework bundles and indexes the
// headers below each bundle's Headers directory.
func (a *FSFileAccessor) collectFrameworks() ([]string, map[string][]string, error) {
	var frameworks []string
	frameworkHeaders := map[string][]string{}
	for _, entry := range a.decl.VendoredFrameworks {
		bundle := filepath.Join(a.root, entry)
		if !dirExists(bundle) {
			continue
		}
		frameworks = append(frameworks, bundle)
		headersDir := shared.FrameworkHeadersDir(bundle)
		if !dirExists(headersDir) {
			continue
		}
		var headers []string
		err := filepath.WalkDir(headersDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if _, ok := headerExts[filepath.Ext(path)]; ok {
				headers = append(headers, path)
			}
			return nil
		})
		if err != nil {
			return nil, nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to scan framework headers").
				WithCause(err)
		}
		frameworkHeaders[bundle] = headers
	}
	return frameworks, frameworkHeaders, nil
}

// collectEntries resolves declared paths that stand for themselves, like
// vendored library archives.  Missing entries are dropped.
func (a *FSFileAccessor) collectEntries(entries []string) ([]string, error) {
	var out []string
	for _, entry := range entries {
		path := filepath.Join(a.root, entry)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to stat vendored entry").
				WithCause(err)
		}
		out = append(out, path)
	}
	return out, nil
}

func matchExt(exts map[string]struct{}) func(string) bool {
	return func(path string) bool {
		_, ok := exts[strings.ToLower(filepath.Ext(path))]
		return ok
	}
}

func filterExt(paths []string, exts map[string]struct{}) []string {
	var out []string
	for _, path := range paths {
		if _, ok := exts[strings.ToLower(filepath.Ext(path))]; ok {
			out = append(out, path)
		}
	}
	return out
}

func unionPaths(lists ...[]string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, list := range lists {
		for _, path := range list {
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			out = append(out, path)
		}
	}
	return out
}

func subtractPaths(paths []string, remove []string) []string {
	drop := map[string]struct{}{}
	for _, path := range remove {
		drop[path] = struct{}{}
	}
	var out []string
	for _, path := range paths {
		if _, ok := drop[path]; ok {
			continue
		}
		out = append(out, path)
	}
	return out
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func shouldSkipPackageDir(name string) bool {
	switch name {
	case ".git", ".build", "DerivedData":
		return true
	default:
		return strings.HasSuffix(name, ".framework")
	}
}

var _ ports.FileAccessor = (*FSFileAccessor)(nil)
