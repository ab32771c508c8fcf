package types

// Platform identifies the build platform of a target.  DeploymentTarget
// is the minimum OS version the target declares as a dotted decimal
// string ("12.0"); it takes part in deployment-target validation and is
// recorded next to every header search root.
type Platform struct {
	Name             string `yaml:"name"`
	DeploymentTarget string `yaml:"deployment_target,omitempty"`
}
