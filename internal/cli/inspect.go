package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"podrefs/internal/app"
)

type inspectOptions struct {
	OutputDir string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect a previous install's output directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("project: %s\n", result.ProjectName)
	fmt.Println("groups:")
	for _, group := range result.Groups {
		fmt.Printf("- %s: %d files\n", group.Path, group.Count)
	}
	fmt.Println("header scopes:")
	for _, scope := range result.Scopes {
		fmt.Printf("- %s: %d search roots, %d destinations, %d headers\n",
			scope.Scope, scope.SearchRoots, scope.Links, scope.Headers)
	}
	fmt.Printf("report: %d packages, %d file references, created %s\n",
		result.Report.Packages, result.Report.FileReferences, result.Report.CreatedAt)
	for _, collision := range result.Report.Collisions {
		fmt.Printf("- collision (%s) %s: %s\n",
			collision.Scope, collision.Destination, strings.Join(collision.Packages, ", "))
	}
	return nil
}
