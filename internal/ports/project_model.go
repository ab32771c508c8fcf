package ports

import "podrefs/internal/types"

// ProjectModel is the declarative group and reference surface of the
// generated project.  How groups are stored is the model's business;
// errors it returns are treated as fatal and propagated unchanged.
type ProjectModel interface {
	// EnsureGroup returns the group at the given path, creating it and
	// any missing ancestors on first use.  Repeated calls with the same
	// segments return the same ref.  BaseDir is the on-disk directory
	// mirrored sub-grouping resolves file paths against.
	EnsureGroup(segments []string, baseDir string) (types.GroupRef, error)

	// AddFileReference places a file reference in the group.  With
	// mirror set, the reference nests into sub-groups matching the
	// file's directory path relative to the group's base dir; otherwise
	// it sits flat in the group.  Adding the same path to the same
	// group twice yields a single reference.
	AddFileReference(path string, group types.GroupRef, mirror bool) error
}
