package policies

import (
	"sort"
	"strings"

	"podrefs/internal/types"
)

type collisionEntry struct {
	dest     string
	packages []string
}

// CollisionPolicy decides what happens when two packages publish headers
// into the same destination sub-directory: both contributions are kept
// and the intersection is recorded, so the caller can warn instead of
// the consumer discovering the shadowing at compile time.  Destinations
// are compared case-insensitively because the stores usually materialize
// on case-insensitive filesystems, where "Utils" and "utils" are one
// directory.
type CollisionPolicy struct {
	contributors map[types.HeaderScope]map[string]*collisionEntry
}

func NewCollisionPolicy() *CollisionPolicy {
	return &CollisionPolicy{
		contributors: map[types.HeaderScope]map[string]*collisionEntry{},
	}
}

// Observe records that pkg published headers under dest in the given
// scope.  Repeat observations of the same package are collapsed; the
// first-seen spelling of a destination is the one reported.
func (p *CollisionPolicy) Observe(scope types.HeaderScope, dest string, pkg string) {
	if p.contributors[scope] == nil {
		p.contributors[scope] = map[string]*collisionEntry{}
	}
	folded := strings.ToLower(dest)
	entry, ok := p.contributors[scope][folded]
	if !ok {
		entry = &collisionEntry{dest: dest}
		p.contributors[scope][folded] = entry
	}
	for _, name := range entry.packages {
		if name == pkg {
			return
		}
	}
	entry.packages = append(entry.packages, pkg)
}

// Warnings returns one warning per destination fed by more than one
// package, ordered by scope then destination.  Package lists keep
// observation order so the first contributor is always listed first.
func (p *CollisionPolicy) Warnings() []types.CollisionWarning {
	var warnings []types.CollisionWarning
	for scope, entries := range p.contributors {
		for _, entry := range entries {
			if len(entry.packages) < 2 {
				continue
			}
			warnings = append(warnings, types.CollisionWarning{
				Scope:       scope,
				Destination: entry.dest,
				Packages:    append([]string(nil), entry.packages...),
			})
		}
	}
	sort.Slice(warnings, func(i, j int) bool {
		if warnings[i].Scope != warnings[j].Scope {
			return warnings[i].Scope < warnings[j].Scope
		}
		return warnings[i].Destination < warnings[j].Destination
	})
	return warnings
}
