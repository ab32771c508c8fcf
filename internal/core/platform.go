package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	debversion "github.com/knqyf263/go-deb-version"
	"github.com/rs/zerolog/log"

	"podrefs/internal/types"
)

// deploymentCache memoizes parsed deployment targets so each distinct
// version string is parsed once per validation run.  Deployment targets
// are dotted decimal strings; Debian upstream-version ordering gives the
// right numeric segment comparison ("10.10" > "10.9").
type deploymentCache struct {
	parsed map[string]debversion.Version
}

func newDeploymentCache() *deploymentCache {
	return &deploymentCache{parsed: map[string]debversion.Version{}}
}

func (c *deploymentCache) version(value string) (debversion.Version, error) {
	if parsed, ok := c.parsed[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid deployment target: %s", value)).
			WithCause(err)
	}
	c.parsed[value] = parsed
	return parsed, nil
}

// satisfies reports whether the platform's deployment target is at least
// minimum.  Either side being empty means unconstrained.
func (c *deploymentCache) satisfies(platform types.Platform, minimum string) (bool, error) {
	if minimum == "" || platform.DeploymentTarget == "" {
		return true, nil
	}
	have, err := c.version(platform.DeploymentTarget)
	if err != nil {
		return false, err
	}
	want, err := c.version(minimum)
	if err != nil {
		return false, err
	}
	return !have.LessThan(want), nil
}

// ValidateTargetPlatforms checks every target against the minimum
// deployment targets its linked packages declare.  It runs before any
// port is mutated, so a violation aborts the install with nothing
// written.
func ValidateTargetPlatforms(ctx context.Context, manifest types.Manifest) error {
	cache := newDeploymentCache()
	for _, target := range manifest.Targets {
		for _, specName := range target.Packages {
			pkg, ok := manifest.FindPackage(specName)
			if !ok {
				continue
			}
			if len(pkg.Platforms) == 0 {
				// No platform declarations means unconstrained.
				continue
			}
			minimum, ok := pkg.Platforms[target.Platform.Name]
			if !ok {
				return errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("package %s does not support platform %s required by target %s",
						pkg.Name, target.Platform.Name, target.Name))
			}
			satisfied, err := cache.satisfies(target.Platform, minimum)
			if err != nil {
				return err
			}
			if !satisfied {
				return errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("package %s requires %s %s but target %s declares %s",
						pkg.Name, target.Platform.Name, minimum, target.Name, target.Platform.DeploymentTarget))
			}
		}
	}
	log.Ctx(ctx).Debug().Int("targets", len(manifest.Targets)).Msg("target platforms validated")
	return nil
}
