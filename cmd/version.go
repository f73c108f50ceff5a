package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const goGitModulePath = "github.com/go-git/go-git/v5"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the incov build version, the Go version and the go-git version it was built with.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				info = nil
			}

			for _, line := range versionLines(info) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines formats the build information. A nil info yields only the
// unknown incov version.
func versionLines(info *debug.BuildInfo) []string {
	version := "unknown"
	if info != nil && info.Main.Version != "" {
		version = info.Main.Version
	}

	lines := []string{"incov version\t" + version}
	if info == nil {
		return lines
	}

	lines = append(lines, "go version\t"+info.GoVersion)

	for _, dep := range info.Deps {
		if dep.Path != goGitModulePath {
			continue
		}

		gitVersion := dep.Version
		if dep.Replace != nil {
			gitVersion = dep.Replace.Version
		}

		lines = append(lines, "go-git version\t"+gitVersion)
	}

	return lines
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
