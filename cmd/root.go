// Package cmd provides the root command and CLI setup for incov.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"incov.dev/pkg/incov/internal/adapter"
	"incov.dev/pkg/incov/internal/controller"
	"incov.dev/pkg/incov/internal/domain"
	m "incov.dev/pkg/incov/internal/model"
)

// workflow is built on first use so flags and config are already applied.
// Tests replace it with a mock.
var workflow domain.Workflow

var repoFlag string
var verboseFlag bool
var logFileFlag string

const rootLongDescription = `Incov narrows a coverage report to the classes whose sources changed since
a given commit, or since the first commit of a branch, so coverage tooling
reports on incremental work instead of the whole codebase.

Changed source files are mapped onto compiled artifacts using Maven and
Gradle layouts (configurable under mapping.conventions in incov.yaml).`

const reportLongDescription = `Filter the class and source inputs of a coverage report down to the files
changed since --commit or the first commit of --branch, then hand them to the
configured analyzer.

Positional arguments are execution data files passed to the analyzer as-is.
Arguments after "--" are appended to the analyzer command line.

Without --commit or --branch every input is analyzed.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "incov",
		Short:        "Incremental coverage filtering for JVM builds",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&repoFlag, repoFlagName, "r", viper.GetString(repoConfigKey), "repository root (default: discovered from the inputs)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(repoFlagName), repoConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// currentWorkflow returns the injected workflow or builds the default one,
// printing to the root of cmd.
func currentWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	opts, err := mapperOptions()
	if err != nil {
		return nil, err
	}

	fsAdapter := adapter.NewLocalArtifactFSAdapter()

	mapper, err := domain.NewArtifactMapper(fsAdapter, opts)
	if err != nil {
		return nil, fmt.Errorf("create artifact mapper: %w", err)
	}

	return domain.NewWorkflow(
		fsAdapter,
		adapter.NewLocalAnalyzerAdapter(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		adapter.NewYAMLManifestStore(),
		controller.NewSimpleUI(cmd.Root()),
		mapper,
		domain.NewArtifactFilter(fsAdapter, mapper, opts.SourceSuffix, opts.ArtifactSuffix),
		adapter.NewGitRepositoryFactory(opts.SourceSuffix),
	), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
