package adapters

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"podrefs/internal/ports"
	"podrefs/internal/shared"
	"podrefs/internal/types"
)

type projectGroup struct {
	ref   types.GroupRef
	files []string
	seen  map[string]struct{}
}

// ProjectAdapter is an in-memory project model whose group tree
// serializes to a deterministic YAML project file.  Group nodes exist
// once per path; file references keep insertion order and are deduped
// per group.
type ProjectAdapter struct {
	name   string
	groups map[string]*projectGroup
	order  []string
}

func NewProjectAdapter(name string) *ProjectAdapter {
	return &ProjectAdapter{
		name:   name,
		groups: map[string]*projectGroup{},
	}
}

func (a *ProjectAdapter) EnsureGroup(segments []string, baseDir string) (types.GroupRef, error) {
	if len(segments) == 0 {
		return types.GroupRef{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("group path must not be empty")
	}
	var path string
	for i, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			return types.GroupRef{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("group segment must not be empty")
		}
		path = strings.Join(segments[:i+1], "/")
		if _, ok := a.groups[path]; !ok {
			a.groups[path] = &projectGroup{
				ref:  types.GroupRef{Path: path},
				seen: map[string]struct{}{},
			}
			a.order = append(a.order, path)
		}
	}
	node := a.groups[path]
	if node.ref.BaseDir == "" {
		node.ref.BaseDir = baseDir
	}
	return node.ref, nil
}

func (a *ProjectAdapter) AddFileReference(path string, group types.GroupRef, mirror bool) error {
	node, ok := a.groups[group.Path]
	if !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("unknown group: %s", group.Path))
	}
	if mirror {
		nested, err := a.mirrorGroup(path, node.ref)
		if err != nil {
			return err
		}
		node = nested
	}
	if _, ok := node.seen[path]; ok {
		return nil
	}
	node.seen[path] = struct{}{}
	node.files = append(node.files, path)
	return nil
}

// mirrorGroup resolves the sub-group matching the file's directory path
// relative to the group's base dir, creating missing levels.
func (a *ProjectAdapter) mirrorGroup(path string, group types.GroupRef) (*projectGroup, error) {
	rel, err := shared.RelativeTo(path, group.BaseDir)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("file %s is outside group base %s", path, group.BaseDir)).
			WithCause(err)
	}
	dir := filepath.Dir(rel)
	if dir == "." {
		return a.groups[group.Path], nil
	}
	segments := append(group.Segments(), strings.Split(filepath.ToSlash(dir), "/")...)
	ref, err := a.EnsureGroup(segments, filepath.Join(group.BaseDir, dir))
	if err != nil {
		return nil, err
	}
	return a.groups[ref.Path], nil
}

// File returns the serializable project tree.  Groups sort by path so
// repeated installs of the same inputs produce identical files; the
// references inside a group keep their insertion order.
func (a *ProjectAdapter) File() types.ProjectFile {
	paths := append([]string(nil), a.order...)
	sort.Strings(paths)
	groups := make([]types.ProjectGroup, 0, len(paths))
	for _, path := range paths {
		node := a.groups[path]
		groups = append(groups, types.ProjectGroup{
			Path:  path,
			Files: append([]string(nil), node.files...),
		})
	}
	return types.ProjectFile{Name: a.name, Groups: groups}
}

var _ ports.ProjectModel = (*ProjectAdapter)(nil)
