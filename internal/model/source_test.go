package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "src/main/java/A.java", NormalizePath(`src\main\java\A.java`))
	assert.Equal(t, "a/b", Path(`a\b`).Slash())
}

func TestDefaultConventions(t *testing.T) {
	conventions := DefaultConventions()
	require.Len(t, conventions, 2)

	assert.Equal(t, "maven", conventions[0].Name)
	assert.Equal(t, []string{"target/classes"}, conventions[0].OutputDirs)
	assert.Equal(t, "gradle", conventions[1].Name)
	assert.Contains(t, conventions[1].OutputDirs, "build/classes/java/test")

	conventions[0].Name = "changed"
	assert.Equal(t, "maven", DefaultConventions()[0].Name)
}

func TestNewManifest(t *testing.T) {
	t.Run("filtered", func(t *testing.T) {
		manifest := NewManifest(FilterResult{
			Base:        &ChangePoint{Hash: "0123456789abcdef0123456789abcdef01234567"},
			Changed:     NewChangeSet("b/B.java", "a/A.java"),
			ClassFiles:  []Path{"target/classes/a/A.class"},
			SourceFiles: []Path{"src/main/java/a/A.java"},
			Unmapped:    []string{"b/B.java"},
			Filtered:    true,
		})

		assert.Equal(t, "0123456789abcdef0123456789abcdef01234567", manifest.Base)
		assert.Equal(t, []string{"a/A.java", "b/B.java"}, manifest.Changed)
		assert.Equal(t, []string{"target/classes/a/A.class"}, manifest.ClassFiles)
		assert.Equal(t, []string{"src/main/java/a/A.java"}, manifest.SourceFiles)
		assert.Equal(t, []string{"b/B.java"}, manifest.Unmapped)
	})

	t.Run("unfiltered", func(t *testing.T) {
		manifest := NewManifest(FilterResult{})

		assert.Empty(t, manifest.Base)
		assert.NotNil(t, manifest.ClassFiles)
		assert.NotNil(t, manifest.SourceFiles)
		assert.Empty(t, manifest.Unmapped)
	})
}
