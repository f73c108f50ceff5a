package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "incov.dev/pkg/incov/internal/model"
)

func newTestUI() (*SimpleUI, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return NewSimpleUI(cmd), out
}

var testBase = &m.ChangePoint{Hash: "4b825dc642cb6eb9a060e54bf8d69288fbee4904", Summary: "initial"}

func TestSimpleUI_DisplayBase(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		ui, out := newTestUI()
		ui.DisplayBase(context.Background(), testBase, "")
		assert.Equal(t, "[INFO] using commit 4b825dc642cb6eb9a060e54bf8d69288fbee4904 (4b825dc)\n", out.String())
	})

	t.Run("branch", func(t *testing.T) {
		ui, out := newTestUI()
		ui.DisplayBase(context.Background(), testBase, "main")
		assert.Equal(t, "[INFO] using first commit of branch main: 4b825dc642cb6eb9a060e54bf8d69288fbee4904 (4b825dc)\n", out.String())
	})

	t.Run("nil base prints nothing", func(t *testing.T) {
		ui, out := newTestUI()
		ui.DisplayBase(context.Background(), nil, "main")
		assert.Empty(t, out.String())
	})
}

func TestSimpleUI_CountsAndSummary(t *testing.T) {
	ui, out := newTestUI()
	ctx := context.Background()

	ui.DisplayChangeCount(ctx, 3)
	ui.DisplayFilterSummary(ctx, 2, 1)
	ui.DisplayNoFiltering(ctx)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[INFO] found 3 changed source files", lines[0])
	assert.Equal(t, "[INFO] after filtering: 2 artifact files, 1 source files", lines[1])
	assert.Equal(t, "[INFO] no commit or branch given, analyzing all files", lines[2])
}

func TestSimpleUI_DisplayUnmapped(t *testing.T) {
	unmapped := []string{"a/A.java", "a/B.java", "a/C.java", "a/D.java", "a/E.java", "a/F.java", "a/G.java"}

	tests := []struct {
		name     string
		unmapped []string
		limit    int
		want     []string
	}{
		{
			name:     "capped with rollup",
			unmapped: unmapped,
			limit:    5,
			want: []string{
				"[WARN] no artifact found for source file: a/A.java",
				"[WARN] no artifact found for source file: a/B.java",
				"[WARN] no artifact found for source file: a/C.java",
				"[WARN] no artifact found for source file: a/D.java",
				"[WARN] no artifact found for source file: a/E.java",
				"[WARN] 2 more files could not be mapped to artifacts",
			},
		},
		{
			name:     "under the limit",
			unmapped: unmapped[:2],
			limit:    5,
			want: []string{
				"[WARN] no artifact found for source file: a/A.java",
				"[WARN] no artifact found for source file: a/B.java",
			},
		},
		{
			name:     "zero limit only rolls up",
			unmapped: unmapped[:2],
			limit:    0,
			want:     []string{"[WARN] 2 more files could not be mapped to artifacts"},
		},
		{
			name:     "nothing unmapped",
			unmapped: nil,
			limit:    5,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, out := newTestUI()
			ui.DisplayUnmapped(context.Background(), tt.unmapped, tt.limit)

			var got []string
			if trimmed := strings.TrimSpace(out.String()); trimmed != "" {
				got = strings.Split(trimmed, "\n")
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimpleUI_DisplayChanges(t *testing.T) {
	ui, out := newTestUI()

	err := ui.DisplayChanges(context.Background(), testBase, m.NewChangeSet("src/main/java/B.java", "src/main/java/A.java"))
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "CHANGED SOURCE")
	assert.Less(t, strings.Index(output, "A.java"), strings.Index(output, "B.java"))
	assert.Contains(t, output, "SINCE 4B825DC")
}

func TestSimpleUI_DisplayMappings(t *testing.T) {
	ui, out := newTestUI()

	err := ui.DisplayMappings(context.Background(), []m.MappingResult{
		{Source: "src/main/java/A.java", Artifact: "target/classes/A.class", Found: true},
		{Source: "src/main/java/B.java"},
	})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "target/classes/A.class")
	assert.Contains(t, output, "src/main/java/B.java")
	assert.Contains(t, output, "MAPPED 1")
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ui, out := newTestUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui.DisplayBase(ctx, testBase, "")
	ui.DisplayChangeCount(ctx, 1)
	ui.DisplayUnmapped(ctx, []string{"A.java"}, 5)
	ui.DisplayFilterSummary(ctx, 1, 1)

	assert.Error(t, ui.DisplayChanges(ctx, testBase, m.NewChangeSet("A.java")))
	assert.Error(t, ui.DisplayMappings(ctx, nil))
	assert.Empty(t, out.String())
}

func TestSimpleUI_DisplayManifest(t *testing.T) {
	ui, out := newTestUI()

	err := ui.DisplayManifest(context.Background(), m.Manifest{
		Base:        testBase.Hash,
		Changed:     []string{"src/main/java/A.java", "src/main/java/B.java"},
		ClassFiles:  []string{"target/classes/A.class"},
		SourceFiles: []string{"src/main/java/A.java"},
		Unmapped:    []string{"src/main/java/B.java"},
	})
	require.NoError(t, err)

	output := out.String()
	assert.True(t, strings.HasPrefix(output, "[INFO] manifest base commit "+testBase.Hash+"\n"))
	assert.Contains(t, output, "target/classes/A.class")
	assert.Contains(t, output, "unmapped")
	assert.Contains(t, output, "CHANGED 2")
	assert.Contains(t, output, "CLASSES 1 SOURCES 1")
}
