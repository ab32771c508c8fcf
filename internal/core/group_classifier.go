package core

import (
	"podrefs/internal/ports"
	"podrefs/internal/types"
)

const (
	groupPackages            = "Packages"
	groupDevelopmentPackages = "Development Packages"
)

type groupKey struct {
	spec     string
	category types.GroupCategory
}

// GroupClassifier decides where in the project hierarchy the references
// of a spec land.  Remote packages group under "Packages" and local ones
// under "Development Packages"; subspec names nest one group per
// segment, and a non-default category adds a trailing sub-group.
// Lookups are memoized so the project model sees exactly one
// get-or-create per key and callers can rely on ref identity.
type GroupClassifier struct {
	project ports.ProjectModel
	sandbox ports.Sandbox
	cache   map[groupKey]types.GroupRef
}

func NewGroupClassifier(project ports.ProjectModel, sandbox ports.Sandbox) GroupClassifier {
	return GroupClassifier{
		project: project,
		sandbox: sandbox,
		cache:   map[groupKey]types.GroupRef{},
	}
}

// GroupFor returns the group for the (spec, category) key, creating it
// lazily on first use.  Equal keys always yield the identical ref.
func (c GroupClassifier) GroupFor(specName string, category types.GroupCategory) (types.GroupRef, error) {
	key := groupKey{spec: specName, category: category}
	if ref, ok := c.cache[key]; ok {
		return ref, nil
	}
	root := types.RootName(specName)
	ref, err := c.project.EnsureGroup(c.segmentsFor(specName, category), c.sandbox.PackageRoot(root))
	if err != nil {
		return types.GroupRef{}, err
	}
	c.cache[key] = ref
	return ref, nil
}

func (c GroupClassifier) segmentsFor(specName string, category types.GroupCategory) []string {
	top := groupPackages
	if c.sandbox.IsLocalPackage(types.RootName(specName)) {
		top = groupDevelopmentPackages
	}
	segments := append([]string{top}, types.PackageSpec{Name: specName}.Segments()...)
	if category != types.GroupCategoryDefault {
		segments = append(segments, string(category))
	}
	return segments
}
