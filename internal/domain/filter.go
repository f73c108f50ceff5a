package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"incov.dev/pkg/incov/internal/adapter"
	m "incov.dev/pkg/incov/internal/model"
)

// ArtifactFilter narrows analyzer inputs down to the entries that belong to
// changed source files.
type ArtifactFilter interface {
	// FilterArtifacts keeps the artifact files under roots that some changed
	// source maps to. An empty change set yields an empty list.
	FilterArtifacts(roots []m.Path, changes m.ChangeSet) ([]m.Path, error)

	// FilterSources keeps the source files under roots whose path is one of
	// the changed paths. Files inside repoRoot are compared by their
	// root-relative path; an empty repoRoot falls back to suffix matching.
	FilterSources(repoRoot m.Path, roots []m.Path, changes m.ChangeSet) ([]m.Path, error)

	// Unmapped lists the changed sources for which no artifact exists under roots.
	Unmapped(roots []m.Path, changes m.ChangeSet) []string
}

type artifactFilter struct {
	fs             adapter.ArtifactFSAdapter
	mapper         ArtifactMapper
	sourceSuffix   string
	artifactSuffix string
}

// NewArtifactFilter constructs an ArtifactFilter using the given mapper.
func NewArtifactFilter(fs adapter.ArtifactFSAdapter, mapper ArtifactMapper, sourceSuffix, artifactSuffix string) ArtifactFilter {
	if sourceSuffix == "" {
		sourceSuffix = DefaultSourceSuffix
	}

	if artifactSuffix == "" {
		artifactSuffix = DefaultArtifactSuffix
	}

	return &artifactFilter{
		fs:             fs,
		mapper:         mapper,
		sourceSuffix:   sourceSuffix,
		artifactSuffix: artifactSuffix,
	}
}

func (f *artifactFilter) FilterArtifacts(roots []m.Path, changes m.ChangeSet) ([]m.Path, error) {
	filtered := []m.Path{}
	if changes.Len() == 0 {
		return filtered, nil
	}

	targets := make(map[string]struct{})

	for _, source := range changes.Sorted() {
		result := f.mapper.MapSourceToArtifact(source, roots)
		if result.Found {
			targets[filepath.Clean(string(result.Artifact))] = struct{}{}
		}
	}

	if len(targets) == 0 {
		return filtered, nil
	}

	keep := func(path string) bool {
		_, ok := targets[filepath.Clean(path)]
		return ok
	}

	return f.collect(roots, f.artifactSuffix, keep)
}

func (f *artifactFilter) FilterSources(repoRoot m.Path, roots []m.Path, changes m.ChangeSet) ([]m.Path, error) {
	if changes.Len() == 0 {
		return []m.Path{}, nil
	}

	keep := func(path string) bool {
		return containsChangedPath(changes, string(repoRoot), path)
	}

	return f.collect(roots, f.sourceSuffix, keep)
}

func (f *artifactFilter) Unmapped(roots []m.Path, changes m.ChangeSet) []string {
	var unmapped []string

	for _, source := range changes.Sorted() {
		if !f.mapper.MapSourceToArtifact(source, roots).Found {
			unmapped = append(unmapped, source)
		}
	}

	return unmapped
}

// collect walks every root (a directory is traversed recursively, a file is
// checked directly) and returns the suffix-matching files accepted by keep.
func (f *artifactFilter) collect(roots []m.Path, suffix string, keep func(string) bool) ([]m.Path, error) {
	filtered := []m.Path{}
	seen := make(map[string]bool)

	add := func(path string) {
		clean := filepath.Clean(path)
		if seen[clean] {
			return
		}

		seen[clean] = true
		filtered = append(filtered, m.Path(path))
	}

	for _, root := range roots {
		info, err := f.fs.FileInfo(root)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Warn("skipping missing input", "path", root)
				continue
			}

			return nil, fmt.Errorf("stat %s: %w", root, err)
		}

		if !info.IsDir() {
			if strings.HasSuffix(info.Name(), suffix) && keep(string(root)) {
				add(string(root))
			}

			continue
		}

		err = f.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return fmt.Errorf("walk %s: %w", path, err)
			}

			if info.IsDir() || !strings.HasSuffix(info.Name(), suffix) {
				return nil
			}

			if keep(path) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return filtered, nil
}

// containsChangedPath matches a filesystem path against repository-relative
// changed paths. A path inside repoRoot matches only by its root-relative
// form. Otherwise the whole normalized path must be in the set, or a trailing
// run of segments must equal a changed path that has at least one directory.
func containsChangedPath(changes m.ChangeSet, repoRoot, path string) bool {
	if rel, ok := relativeTo(repoRoot, path); ok {
		return changes.Contains(rel)
	}

	normalized := strings.TrimPrefix(m.NormalizePath(filepath.Clean(path)), "./")
	if changes.Contains(normalized) {
		return true
	}

	for i := 0; i < len(normalized); i++ {
		if normalized[i] != '/' {
			continue
		}

		suffix := normalized[i+1:]
		if strings.Contains(suffix, "/") && changes.Contains(suffix) {
			return true
		}
	}

	return false
}

// relativeTo returns path relative to root in slash form, and false when
// root is empty or path lies outside it.
func relativeTo(root, path string) (string, bool) {
	if root == "" {
		return "", false
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}

	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	return m.NormalizePath(rel), true
}
