package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"incov.dev/pkg/incov/internal/domain"
	m "incov.dev/pkg/incov/internal/model"
)

// changesCmd represents the changes command.
var changesCmd = newChangesCmd()

func newChangesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "changes",
		Short: "List source files changed since a commit or the first commit of a branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Changes(cmd.Context(), domain.ChangesArgs{
				Repository: m.Path(viper.GetString(repoConfigKey)),
				Commit:     commitFlag,
				Branch:     branchFlag,
			})
		},
	}

	configureBaseFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(changesCmd)
}
