package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"podrefs/internal/app"
)

type installOptions struct {
	Manifest  string
	Sandbox   string
	OutputDir string
	SkipHooks bool
}

func newInstallCommand() *cobra.Command {
	opts := installOptions{}
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install file references and header layouts into the project outputs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Manifest, "manifest", "podrefs.yaml", "Manifest file path")
	cmd.Flags().StringVar(&opts.Sandbox, "sandbox", "", "Sandbox directory holding the packages (defaults to the manifest setting)")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Output directory (defaults to the manifest setting)")
	cmd.Flags().BoolVar(&opts.SkipHooks, "skip-hooks", false, "Skip pre-install hooks")

	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("sandbox", cmd.Flags().Lookup("sandbox"))
	// The inspect command binds "output" with a non-empty default;
	// install keeps its own key so an unset flag still falls back to
	// the manifest defaults.
	_ = viper.BindPFlag("install_output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("skip_hooks", cmd.Flags().Lookup("skip-hooks"))

	return cmd
}

func runInstall(ctx context.Context, cmd *cobra.Command, opts installOptions) error {
	service := newAppService()
	result, err := service.Install(ctx, app.InstallRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		SandboxDir:   resolveString(cmd, opts.Sandbox, "sandbox", "sandbox"),
		OutputDir:    resolveString(cmd, opts.OutputDir, "install_output", "output"),
		SkipHooks:    resolveBool(cmd, opts.SkipHooks, "skip_hooks", "skip-hooks"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("installed: %s\n", result.ProjectName)
	fmt.Printf("packages: %d, file references: %d, headers: %d, search roots: %d\n",
		result.Packages, result.FileReferences, result.HeaderFiles, result.SearchRoots)
	for _, collision := range result.Collisions {
		fmt.Printf("warning: %s header destination %s fed by %s\n",
			collision.Scope, collision.Destination, strings.Join(collision.Packages, ", "))
	}
	fmt.Printf("output: %s\n", result.OutputDir)
	return nil
}
