// Package shared provides common path utility functions used across
// multiple packages in the podrefs codebase.
package shared

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RelativeTo returns path relative to root, failing when path does not
// live inside root.  Both arguments are cleaned before comparison.
func RelativeTo(path, root string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is not inside %s", path, root)
	}
	return rel, nil
}

// InsideFrameworkBundle reports whether the path has a .framework
// directory among its ancestors.  Headers inside framework bundles are
// mapped through the vendored-framework flow, never the regular one.
func InsideFrameworkBundle(path string) bool {
	return strings.Contains(filepath.ToSlash(path), ".framework/")
}

// FrameworkHeadersDir returns the headers directory of a framework
// bundle.
func FrameworkHeadersDir(framework string) string {
	return filepath.Join(framework, "Headers")
}

// StripExt returns the file name without its extension:
// "Networking.framework" -> "Networking".
func StripExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
