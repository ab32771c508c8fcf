package types

import "strings"

// GroupRef identifies one group node of the generated project hierarchy.
// Refs for the same group path are identical values, so callers can use
// them as map keys.  BaseDir is the on-disk directory the group stands
// for; mirrored sub-grouping resolves file paths against it.
type GroupRef struct {
	Path    string
	BaseDir string
}

// Segments returns the group path split into its node names.
func (g GroupRef) Segments() []string {
	if g.Path == "" {
		return nil
	}
	return strings.Split(g.Path, "/")
}
