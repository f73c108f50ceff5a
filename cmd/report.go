package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"incov.dev/pkg/incov/internal/domain"
	m "incov.dev/pkg/incov/internal/model"
)

var commitFlag string
var branchFlag string
var classFilesFlag []string
var sourceFilesFlag []string
var manifestFlag string
var analyzerFlag string
var warnLimitFlag int

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [execfiles...] [-- analyzer args...]",
		Short: "Filter coverage inputs to changed files and run the analyzer",
		Long:  reportLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			execFiles, extra := splitAtDash(args, cmd.ArgsLenAtDash())

			return wf.Report(cmd.Context(), domain.ReportArgs{
				Repository:   m.Path(viper.GetString(repoConfigKey)),
				Commit:       commitFlag,
				Branch:       branchFlag,
				ExecFiles:    parsePaths(execFiles),
				ClassFiles:   parsePaths(classFilesFlag),
				SourceFiles:  parsePaths(sourceFilesFlag),
				Manifest:     m.Path(viper.GetString(manifestConfigKey)),
				Analyzer:     viper.GetString(analyzerConfigKey),
				AnalyzerArgs: extra,
				WarnLimit:    viper.GetInt(warnLimitConfigKey),
			})
		},
	}

	configureReportFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func configureReportFlags(cmd *cobra.Command) {
	configureBaseFlags(cmd)

	cmd.Flags().StringArrayVar(&classFilesFlag, classFilesFlagName, nil, "class file or directory to analyze (can be repeated)")
	cmd.Flags().StringArrayVar(&sourceFilesFlag, sourceFilesFlagName, nil, "source file or directory for the report (can be repeated)")

	cmd.Flags().StringVar(&manifestFlag, manifestFlagName, viper.GetString(manifestConfigKey), "write the filtered inputs to this YAML manifest")
	bindFlagToConfig(cmd.Flags().Lookup(manifestFlagName), manifestConfigKey)

	cmd.Flags().StringVar(&analyzerFlag, analyzerFlagName, viper.GetString(analyzerConfigKey), "analyzer command receiving the filtered inputs")
	bindFlagToConfig(cmd.Flags().Lookup(analyzerFlagName), analyzerConfigKey)

	cmd.Flags().IntVar(&warnLimitFlag, warnLimitFlagName, viper.GetInt(warnLimitConfigKey), "number of unmapped source files listed individually")
	bindFlagToConfig(cmd.Flags().Lookup(warnLimitFlagName), warnLimitConfigKey)
}

// configureBaseFlags adds the flags naming the comparison base.
func configureBaseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&commitFlag, commitFlagName, "c", "", "compare against this commit (hash, branch, tag or expression such as HEAD~3)")
	cmd.Flags().StringVarP(&branchFlag, branchFlagName, "b", "", "compare against the first commit of this branch")
}

func splitAtDash(args []string, dash int) ([]string, []string) {
	if dash < 0 || dash > len(args) {
		return args, nil
	}

	return args[:dash], args[dash:]
}
