package model

import "strings"

// Path represents a file system path.
type Path string

// Slash returns the path with every backslash replaced by a forward slash.
func (p Path) Slash() string {
	return NormalizePath(string(p))
}

// NormalizePath converts path separators to forward slashes.
func NormalizePath(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// Convention describes one build tool's directory layout: where its sources
// live relative to a module root and where it writes compiled artifacts.
type Convention struct {
	Name        string   `mapstructure:"name" yaml:"name"`
	SourceRoots []string `mapstructure:"source_roots" yaml:"source_roots"`
	OutputDirs  []string `mapstructure:"output_dirs" yaml:"output_dirs"`
}

// DefaultConventions returns the Maven and Gradle layouts.
func DefaultConventions() []Convention {
	return []Convention{
		{
			Name:        "maven",
			SourceRoots: []string{"src/main/java/", "src/test/java/"},
			OutputDirs:  []string{"target/classes"},
		},
		{
			Name:        "gradle",
			SourceRoots: []string{"src/main/java/", "src/test/java/"},
			OutputDirs:  []string{"build/classes/java/main", "build/classes/java/test"},
		},
	}
}

// MappingResult is the outcome of mapping one source path onto an artifact.
type MappingResult struct {
	Source   string
	Logical  string
	Artifact Path
	Found    bool
}

// FilterResult holds what the report workflow narrowed the analyzer input to.
type FilterResult struct {
	Base        *ChangePoint
	Changed     ChangeSet
	ClassFiles  []Path
	SourceFiles []Path
	Unmapped    []string
	Filtered    bool
}

// Manifest is the hand-off file describing what the analyzer should read.
type Manifest struct {
	Base        string   `yaml:"base,omitempty"`
	Changed     []string `yaml:"changed"`
	ClassFiles  []string `yaml:"classfiles"`
	SourceFiles []string `yaml:"sourcefiles"`
	Unmapped    []string `yaml:"unmapped,omitempty"`
}

// NewManifest builds a Manifest from a filter result.
func NewManifest(result FilterResult) Manifest {
	manifest := Manifest{
		Changed:     result.Changed.Sorted(),
		ClassFiles:  pathStrings(result.ClassFiles),
		SourceFiles: pathStrings(result.SourceFiles),
		Unmapped:    result.Unmapped,
	}

	if result.Base != nil {
		manifest.Base = result.Base.Hash
	}

	return manifest
}

func pathStrings(paths []Path) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, string(p))
	}

	return out
}
