package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeSet_Apply(t *testing.T) {
	tests := []struct {
		name   string
		change FileChange
		want   []string
	}{
		{"add matching", FileChange{Kind: ChangeAdd, NewPath: "src/A.java"}, []string{"src/A.java"}},
		{"add other suffix", FileChange{Kind: ChangeAdd, NewPath: "README.md"}, []string{}},
		{"modify", FileChange{Kind: ChangeModify, OldPath: "B.java", NewPath: "B.java"}, []string{"B.java"}},
		{"copy", FileChange{Kind: ChangeCopy, OldPath: "B.java", NewPath: "C.java"}, []string{"C.java"}},
		{"delete excluded", FileChange{Kind: ChangeDelete, OldPath: "D.java"}, []string{}},
		{
			"rename keeps both paths",
			FileChange{Kind: ChangeRename, OldPath: "a/Old.java", NewPath: "b/New.java"},
			[]string{"a/Old.java", "b/New.java"},
		},
		{
			"rename to other suffix",
			FileChange{Kind: ChangeRename, OldPath: "Old.java", NewPath: "Old.kt"},
			[]string{},
		},
		{
			"rename from other suffix",
			FileChange{Kind: ChangeRename, OldPath: "Old.txt", NewPath: "New.java"},
			[]string{"New.java"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewChangeSet()
			set.Apply(tt.change, ".java")
			assert.Equal(t, tt.want, set.Sorted())
		})
	}
}

func TestChangeSet_NormalizesSeparators(t *testing.T) {
	set := NewChangeSet(`src\main\java\A.java`, "src/main/java/A.java", "  ")

	require.Equal(t, 1, set.Len())
	assert.True(t, set.Contains("src/main/java/A.java"))
	assert.True(t, set.Contains(`src\main\java\A.java`))
}

func TestChangeSet_Clone(t *testing.T) {
	set := NewChangeSet("A.java")
	clone := set.Clone()
	clone.Add("B.java")

	assert.Equal(t, 1, set.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestChangePoint_Short(t *testing.T) {
	cp := ChangePoint{Hash: "0123456789abcdef"}
	assert.Equal(t, "0123456", cp.Short())
	assert.True(t, cp.IsRoot())

	assert.Equal(t, "abc", ChangePoint{Hash: "abc"}.Short())
}
