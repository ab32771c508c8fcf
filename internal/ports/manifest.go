package ports

import "podrefs/internal/types"

type ManifestPort interface {
	LoadManifest(path string) (types.Manifest, error)
}
