package adapters

import (
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"podrefs/internal/ports"
	"podrefs/internal/types"
)

// HeaderStoreAdapter records the search roots and header links of one
// scope and serializes them to a YAML header manifest.  Writes are kept
// verbatim in arrival order; merging, deduplication and sorting happen
// on the read side, so the installer's append-only contract holds.
type HeaderStoreAdapter struct {
	scope types.HeaderScope
	roots []types.SearchRoot
	links []types.HeaderLink
}

func NewHeaderStoreAdapter(scope types.HeaderScope) *HeaderStoreAdapter {
	return &HeaderStoreAdapter{scope: scope}
}

func (a *HeaderStoreAdapter) Scope() types.HeaderScope { return a.scope }

func (a *HeaderStoreAdapter) AddSearchRoot(namespace string, platform types.Platform) error {
	if namespace == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("search root namespace must not be empty")
	}
	a.roots = append(a.roots, types.SearchRoot{
		Namespace: namespace,
		Platform:  platform.Name,
	})
	return nil
}

func (a *HeaderStoreAdapter) AddHeaders(dest string, headers []string, platform types.Platform) error {
	if dest == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("header destination must not be empty")
	}
	if len(headers) == 0 {
		return nil
	}
	a.links = append(a.links, types.HeaderLink{
		Destination: dest,
		Platform:    platform.Name,
		Headers:     append([]string(nil), headers...),
	})
	return nil
}

// Manifest returns the merged view of the store: one search root per
// (namespace, platform), one link per (destination, platform) with the
// headers of all appends in arrival order, everything sorted for stable
// output.
func (a *HeaderStoreAdapter) Manifest() types.HeaderManifest {
	type rootKey struct{ namespace, platform string }
	rootSeen := map[rootKey]struct{}{}
	var roots []types.SearchRoot
	for _, root := range a.roots {
		key := rootKey{namespace: root.Namespace, platform: root.Platform}
		if _, ok := rootSeen[key]; ok {
			continue
		}
		rootSeen[key] = struct{}{}
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool {
		if roots[i].Namespace != roots[j].Namespace {
			return roots[i].Namespace < roots[j].Namespace
		}
		return roots[i].Platform < roots[j].Platform
	})

	type linkKey struct{ dest, platform string }
	merged := map[linkKey]*types.HeaderLink{}
	headerSeen := map[linkKey]map[string]struct{}{}
	var linkOrder []linkKey
	for _, link := range a.links {
		key := linkKey{dest: link.Destination, platform: link.Platform}
		entry, ok := merged[key]
		if !ok {
			entry = &types.HeaderLink{Destination: link.Destination, Platform: link.Platform}
			merged[key] = entry
			headerSeen[key] = map[string]struct{}{}
			linkOrder = append(linkOrder, key)
		}
		for _, header := range link.Headers {
			if _, ok := headerSeen[key][header]; ok {
				continue
			}
			headerSeen[key][header] = struct{}{}
			entry.Headers = append(entry.Headers, header)
		}
	}
	sort.Slice(linkOrder, func(i, j int) bool {
		if linkOrder[i].dest != linkOrder[j].dest {
			return linkOrder[i].dest < linkOrder[j].dest
		}
		return linkOrder[i].platform < linkOrder[j].platform
	})
	links := make([]types.HeaderLink, 0, len(linkOrder))
	for _, key := range linkOrder {
		links = append(links, *merged[key])
	}

	return types.HeaderManifest{
		Scope:       a.scope,
		SearchRoots: roots,
		Links:       links,
	}
}

var _ ports.HeaderStore = (*HeaderStoreAdapter)(nil)
