package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"incov.dev/pkg/incov/internal/domain"
	m "incov.dev/pkg/incov/internal/model"
)

const defaultViewManifest = "incov.manifest.yaml"

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [manifest]",
		Short: "View a manifest written by a previous report run",
		Long: `View the changed sources and filtered inputs recorded in a manifest.
Defaults to report.manifest from the configuration, then incov.manifest.yaml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.View(cmd.Context(), domain.ViewArgs{Manifest: viewManifestPath(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func viewManifestPath(args []string) m.Path {
	if len(args) > 0 {
		return m.Path(args[0])
	}

	if configured := viper.GetString(manifestConfigKey); configured != "" {
		return m.Path(configured)
	}

	return defaultViewManifest
}
