package policies

import (
	"podrefs/internal/ports"
	"podrefs/internal/types"
)

// MirrorPolicy gates whether file references of a package may be
// organized into sub-groups mirroring their on-disk layout.  Only
// locally path-referenced packages qualify: remote checkouts have no
// layout worth preserving, and mirroring them would churn the project
// on every update.  The file category must allow mirroring as well.
type MirrorPolicy struct {
	Sandbox ports.Sandbox
}

func NewMirrorPolicy(sandbox ports.Sandbox) MirrorPolicy {
	return MirrorPolicy{Sandbox: sandbox}
}

// Allows reports whether references of the given spec and category gate
// may mirror the on-disk structure.  Locality is a property of the root
// package, so subspecs inherit it.
func (p MirrorPolicy) Allows(specName string, categoryAllows bool) bool {
	if !categoryAllows {
		return false
	}
	return p.Sandbox.IsLocalPackage(types.RootName(specName))
}
