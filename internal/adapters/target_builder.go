package adapters

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"podrefs/internal/ports"
	"podrefs/internal/types"
)

// BuildPodTargets assembles one pod target per manifest target, with a
// filesystem accessor per linked spec.  Accessors come back unrefreshed;
// the installer refreshes them as its first step.
func BuildPodTargets(manifest types.Manifest, sandbox ports.Sandbox) ([]ports.PodTarget, error) {
	var targets []ports.PodTarget
	for _, target := range manifest.Targets {
		podTarget := ports.PodTarget{Name: target.Name, Platform: target.Platform}
		for _, specName := range target.Packages {
			decl, ok := manifest.FindSpec(specName)
			if !ok {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeNotFound).
					WithMsg(fmt.Sprintf("target %s references unknown spec: %s", target.Name, specName))
			}
			spec := types.PackageSpec{
				Name: decl.Name,
				Consumer: types.Consumer{
					Platform:          target.Platform,
					HeaderDir:         decl.HeaderDir,
					HeaderMappingsDir: decl.HeaderMappingsDir,
				},
			}
			accessor := NewFSFileAccessor(spec, sandbox.PackageRoot(specName), decl)
			podTarget.FileAccessors = append(podTarget.FileAccessors, accessor)
		}
		targets = append(targets, podTarget)
	}
	return targets, nil
}
