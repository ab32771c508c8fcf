package core

import (
	"fmt"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"podrefs/internal/ports"
	"podrefs/internal/shared"
	"podrefs/internal/types"
)

// HeaderMapper computes the destination sub-directory every header of a
// spec is published under.  Destinations are relative namespace paths
// rooted at the owning package's namespace; the header stores turn them
// into real search paths.
type HeaderMapper struct{}

func NewHeaderMapper() HeaderMapper {
	return HeaderMapper{}
}

// MapHeaders buckets headers by destination.  The base destination is
// the namespace root plus the consumer's header directory.  Without a
// header mappings directory every header collapses into the base; with
// one, each header keeps its directory layout relative to that root.
// Headers living inside a .framework bundle are skipped here because
// MapFrameworkHeaders owns them.
func (m HeaderMapper) MapHeaders(namespace string, consumer types.Consumer, packageRoot string, headers []string) (*types.HeaderMapping, error) {
	base := namespace
	if consumer.HeaderDir != "" {
		base = filepath.Join(base, consumer.HeaderDir)
	}
	var mappingsRoot string
	if consumer.HeaderMappingsDir != "" {
		mappingsRoot = filepath.Join(packageRoot, consumer.HeaderMappingsDir)
	}
	mapping := types.NewHeaderMapping()
	for _, header := range headers {
		if shared.InsideFrameworkBundle(header) {
			continue
		}
		dest := base
		if mappingsRoot != "" {
			rel, err := shared.RelativeTo(header, mappingsRoot)
			if err != nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("header %s is outside header_mappings_dir %s", header, consumer.HeaderMappingsDir)).
					WithCause(err)
			}
			if dir := filepath.Dir(rel); dir != "." {
				dest = filepath.Join(base, dir)
			}
		}
		mapping.Add(dest, header)
	}
	return mapping, nil
}

// MapFrameworkHeaders maps the internal headers of every vendored
// framework of the accessor.  Each framework gets its own destination
// root, <namespace>/<FrameworkName>, and the layout below the bundle's
// Headers directory is kept verbatim.  Prebuilt framework headers are
// never flattened, whatever the consumer settings say.
func (m HeaderMapper) MapFrameworkHeaders(namespace string, accessor ports.FileAccessor) (*types.HeaderMapping, error) {
	mapping := types.NewHeaderMapping()
	for _, framework := range accessor.VendoredFrameworks() {
		destRoot := filepath.Join(namespace, shared.StripExt(filepath.Base(framework)))
		headersDir := shared.FrameworkHeadersDir(framework)
		for _, header := range accessor.VendoredFrameworkHeaders(framework) {
			rel, err := shared.RelativeTo(header, headersDir)
			if err != nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("framework header %s is outside %s", header, headersDir)).
					WithCause(err)
			}
			dest := destRoot
			if dir := filepath.Dir(rel); dir != "." {
				dest = filepath.Join(destRoot, dir)
			}
			mapping.Add(dest, header)
		}
	}
	return mapping, nil
}
