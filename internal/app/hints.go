package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"podrefs/internal/types"
)

// applyInstallDefaults fills unset request fields from the manifest
// defaults.  Default paths are relative to the manifest's directory, so
// a manifest carries its layout regardless of where the command runs.
func applyInstallDefaults(req InstallRequest, manifestPath string, defaults types.ManifestDefaults) InstallRequest {
	base := filepath.Dir(manifestPath)
	if strings.TrimSpace(req.SandboxDir) == "" && defaults.Sandbox != "" {
		req.SandboxDir = resolveDefaultPath(base, defaults.Sandbox)
	}
	if strings.TrimSpace(req.OutputDir) == "" && defaults.Output != "" {
		req.OutputDir = resolveDefaultPath(base, defaults.Output)
	}
	return req
}

func resolveDefaultPath(base string, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// defaultsHint pairs a flag name with a manifest defaults key for hint
// messages.
type defaultsHint struct {
	FlagName    string
	DefaultsKey string
}

// checkInstallDefaultsHints returns hints for install flags that could
// be replaced by manifest defaults.  A hint is generated when the user
// explicitly provided a value while a non-empty default exists.
func checkInstallDefaultsHints(req InstallRequest, defaults types.ManifestDefaults) []string {
	checks := []struct {
		hint       defaultsHint
		provided   bool
		hasDefault bool
	}{
		{
			hint:       defaultsHint{"--sandbox", "defaults.sandbox"},
			provided:   strings.TrimSpace(req.SandboxDir) != "",
			hasDefault: defaults.Sandbox != "",
		},
		{
			hint:       defaultsHint{"--output", "defaults.output"},
			provided:   strings.TrimSpace(req.OutputDir) != "",
			hasDefault: defaults.Output != "",
		},
	}

	var hints []string
	for _, c := range checks {
		if c.provided && c.hasDefault {
			hints = append(hints, fmt.Sprintf(
				"hint: %s is also set in the manifest (%s); you can omit the flag",
				c.hint.FlagName, c.hint.DefaultsKey,
			))
		}
	}
	return hints
}

// emitHints writes hint messages to stderr.
func emitHints(hints []string) {
	for _, h := range hints {
		fmt.Fprintln(os.Stderr, h)
	}
}
