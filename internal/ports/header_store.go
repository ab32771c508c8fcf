package ports

import "podrefs/internal/types"

// HeaderStore accumulates the header search-path layout of one
// visibility scope.  The installer only appends; materializing the
// layout is the store's business.
type HeaderStore interface {
	// AddSearchRoot registers a namespace directory as a search root
	// for the given platform.
	AddSearchRoot(namespace string, platform types.Platform) error

	// AddHeaders publishes headers under the destination sub-directory
	// for the given platform.  Existing destinations are appended to.
	AddHeaders(dest string, headers []string, platform types.Platform) error
}
