package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "incov.dev/pkg/incov/internal/model"
)

const (
	infoTag = "[INFO]"
	warnTag = "[WARN]"

	notFoundLabel = "-"
)

// SimpleUI implements UI by printing plain lines to the cobra command output.
type SimpleUI struct {
	cmd  *cobra.Command
	info lipgloss.Style
	warn lipgloss.Style
}

// NewSimpleUI creates a new SimpleUI. Tags are colored only when the command
// output is a terminal.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	renderer := lipgloss.NewRenderer(cmd.OutOrStdout())

	return &SimpleUI{
		cmd:  cmd,
		info: renderer.NewStyle().Foreground(lipgloss.Color("12")),
		warn: renderer.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// DisplayBase prints the change point the comparison starts from.
func (s *SimpleUI) DisplayBase(ctx context.Context, base *m.ChangePoint, branch string) {
	if err := ctx.Err(); err != nil || base == nil {
		return
	}

	if branch != "" {
		s.infof("using first commit of branch %s: %s (%s)", branch, base.Hash, base.Short())
		return
	}

	s.infof("using commit %s (%s)", base.Hash, base.Short())
}

// DisplayNoFiltering tells the user every input is passed through.
func (s *SimpleUI) DisplayNoFiltering(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.infof("no commit or branch given, analyzing all files")
}

// DisplayChangeCount prints the size of the change set.
func (s *SimpleUI) DisplayChangeCount(ctx context.Context, count int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.infof("found %d changed source files", count)
}

// DisplayUnmapped warns about changed sources without a compiled artifact.
func (s *SimpleUI) DisplayUnmapped(ctx context.Context, unmapped []string, limit int) {
	if err := ctx.Err(); err != nil || len(unmapped) == 0 {
		return
	}

	if limit < 0 {
		limit = 0
	}

	shown := min(limit, len(unmapped))
	for _, path := range unmapped[:shown] {
		s.warnf("no artifact found for source file: %s", path)
	}

	if rest := len(unmapped) - shown; rest > 0 {
		s.warnf("%d more files could not be mapped to artifacts", rest)
	}
}

// DisplayFilterSummary prints the filtered list sizes.
func (s *SimpleUI) DisplayFilterSummary(ctx context.Context, classFiles int, sourceFiles int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.infof("after filtering: %d artifact files, %d source files", classFiles, sourceFiles)
}

// DisplayChanges prints the change set as a table.
func (s *SimpleUI) DisplayChanges(ctx context.Context, base *m.ChangePoint, changes m.ChangeSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	paths := changes.Sorted()

	s.printf("\n%s", renderTable(
		[]string{"Changed Source"},
		func(table *tablewriter.Table) {
			for _, path := range paths {
				table.Append([]string{path})
			}

			footer := fmt.Sprintf("Total Files %d", len(paths))
			if base != nil {
				footer = fmt.Sprintf("%s since %s", footer, base.Short())
			}

			table.SetFooter([]string{footer})
		},
	))

	return nil
}

// DisplayMappings prints source to artifact mappings as a table.
func (s *SimpleUI) DisplayMappings(ctx context.Context, results []m.MappingResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	found := 0

	s.printf("\n%s", renderTable(
		[]string{"Source", "Artifact"},
		func(table *tablewriter.Table) {
			for _, result := range results {
				artifact := notFoundLabel
				if result.Found {
					artifact = string(result.Artifact)
					found++
				}

				table.Append([]string{result.Source, artifact})
			}

			table.SetFooter([]string{
				fmt.Sprintf("Total Files %d", len(results)),
				fmt.Sprintf("Mapped %d", found),
			})
		},
	))

	return nil
}

// DisplayManifest prints a saved manifest, one row per entry.
func (s *SimpleUI) DisplayManifest(ctx context.Context, manifest m.Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if manifest.Base != "" {
		s.infof("manifest base commit %s", manifest.Base)
	}

	s.printf("\n%s", renderTable(
		[]string{"Kind", "Path"},
		func(table *tablewriter.Table) {
			appendRows(table, "changed", manifest.Changed)
			appendRows(table, "class", manifest.ClassFiles)
			appendRows(table, "source", manifest.SourceFiles)
			appendRows(table, "unmapped", manifest.Unmapped)

			table.SetFooter([]string{
				fmt.Sprintf("Changed %d", len(manifest.Changed)),
				fmt.Sprintf("Classes %d Sources %d", len(manifest.ClassFiles), len(manifest.SourceFiles)),
			})
		},
	))

	return nil
}

func appendRows(table *tablewriter.Table, kind string, paths []string) {
	for _, path := range paths {
		table.Append([]string{kind, path})
	}
}

func renderTable(header []string, fill func(*tablewriter.Table)) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	fill(table)
	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) infof(format string, args ...interface{}) {
	s.line(s.info.Render(infoTag), format, args...)
}

func (s *SimpleUI) warnf(format string, args ...interface{}) {
	s.line(s.warn.Render(warnTag), format, args...)
}

func (s *SimpleUI) line(tag, format string, args ...interface{}) {
	s.printf("%s %s\n", tag, fmt.Sprintf(format, args...))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out(), format, args...)
}

func (s *SimpleUI) out() io.Writer {
	return s.cmd.OutOrStdout()
}
