package cmd

import (
	"github.com/spf13/cobra"

	"incov.dev/pkg/incov/internal/domain"
)

var mapRootsFlag []string

// mapCmd represents the map command.
var mapCmd = newMapCmd()

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map [sources...]",
		Short: "Show which compiled artifact each source file maps to",
		Long: `Map repository-relative source paths (e.g. src/main/java/com/example/A.java)
onto compiled artifacts found under the given class roots.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			roots := mapRootsFlag
			if len(roots) == 0 {
				roots = []string{"."}
			}

			return wf.Map(cmd.Context(), domain.MapArgs{
				Roots:   parsePaths(roots),
				Sources: args,
			})
		},
	}

	cmd.Flags().StringArrayVar(&mapRootsFlag, classFilesFlagName, nil, "class file or directory to search (default: current directory)")

	return cmd
}

func init() {
	rootCmd.AddCommand(mapCmd)
}
