package domain

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"incov.dev/pkg/incov/internal/adapter"
	m "incov.dev/pkg/incov/internal/model"
)

// Mapper defaults.
const (
	DefaultSourceSuffix   = ".java"
	DefaultArtifactSuffix = ".class"
	DefaultSearchDepth    = 5
	defaultMemoSize       = 4096
)

// ArtifactMapper converts repository-relative source paths into the build
// output files compiled from them.
type ArtifactMapper interface {
	// LogicalPath strips the source root prefix and the source suffix, e.g.
	// "src/main/java/com/example/A.java" -> "com/example/A". The second result
	// is false when the path does not carry the source suffix.
	LogicalPath(sourcePath string) (string, bool)

	// MapSourceToArtifact returns the first existing artifact for sourcePath
	// under any of the candidate roots. A miss is reported via Found=false.
	MapSourceToArtifact(sourcePath string, roots []m.Path) m.MappingResult
}

// MapperOptions configures an ArtifactMapper.
type MapperOptions struct {
	SourceSuffix   string
	ArtifactSuffix string
	Conventions    []m.Convention
	SearchDepth    int
	MemoSize       int
}

func (o MapperOptions) withDefaults() MapperOptions {
	if o.SourceSuffix == "" {
		o.SourceSuffix = DefaultSourceSuffix
	}

	if o.ArtifactSuffix == "" {
		o.ArtifactSuffix = DefaultArtifactSuffix
	}

	if o.Conventions == nil {
		o.Conventions = m.DefaultConventions()
	}

	if o.SearchDepth <= 0 {
		o.SearchDepth = DefaultSearchDepth
	}

	if o.MemoSize <= 0 {
		o.MemoSize = defaultMemoSize
	}

	return o
}

type artifactMapper struct {
	fs          adapter.ArtifactFSAdapter
	opts        MapperOptions
	sourceRoots []string
	memo        *lru.Cache[string, m.MappingResult]
}

// NewArtifactMapper constructs an ArtifactMapper. Results are memoized per
// (source path, roots) for the lifetime of the mapper.
func NewArtifactMapper(fs adapter.ArtifactFSAdapter, opts MapperOptions) (ArtifactMapper, error) {
	opts = opts.withDefaults()

	memo, err := lru.New[string, m.MappingResult](opts.MemoSize)
	if err != nil {
		return nil, err
	}

	return &artifactMapper{
		fs:          fs,
		opts:        opts,
		sourceRoots: collectSourceRoots(opts.Conventions),
		memo:        memo,
	}, nil
}

// collectSourceRoots flattens the conventions' source roots in declaration
// order, normalized to "dir/" and de-duplicated.
func collectSourceRoots(conventions []m.Convention) []string {
	var roots []string

	seen := make(map[string]bool)

	for _, c := range conventions {
		for _, r := range c.SourceRoots {
			r = strings.Trim(m.NormalizePath(strings.TrimSpace(r)), "/")
			if r == "" || seen[r] {
				continue
			}

			seen[r] = true
			roots = append(roots, r+"/")
		}
	}

	return roots
}

func (a *artifactMapper) LogicalPath(sourcePath string) (string, bool) {
	path := strings.TrimPrefix(m.NormalizePath(sourcePath), "./")
	if !strings.HasSuffix(path, a.opts.SourceSuffix) {
		return "", false
	}

	path = strings.TrimSuffix(path, a.opts.SourceSuffix)

	for _, root := range a.sourceRoots {
		if strings.HasPrefix(path, root) {
			return path[len(root):], true
		}
	}

	// Multi-module layouts put the source root below a module directory.
	for _, root := range a.sourceRoots {
		if i := strings.LastIndex(path, "/"+root); i >= 0 {
			return path[i+len(root)+1:], true
		}
	}

	// Non-standard source sets such as src/integration/java.
	slashed := "/" + path
	if i := strings.LastIndex(slashed, "/src/"); i >= 0 {
		if j := strings.Index(slashed[i:], "/java/"); j >= 0 {
			return slashed[i+j+len("/java/"):], true
		}
	}

	// No known convention: assume the path already is the package path.
	return path, true
}

func (a *artifactMapper) MapSourceToArtifact(sourcePath string, roots []m.Path) m.MappingResult {
	key := memoKey(sourcePath, roots)
	if cached, ok := a.memo.Get(key); ok {
		return cached
	}

	result := a.mapUncached(sourcePath, roots)
	a.memo.Add(key, result)

	return result
}

func (a *artifactMapper) mapUncached(sourcePath string, roots []m.Path) m.MappingResult {
	result := m.MappingResult{Source: sourcePath}

	logical, ok := a.LogicalPath(sourcePath)
	if !ok {
		return result
	}

	result.Logical = logical
	rel := filepath.FromSlash(logical + a.opts.ArtifactSuffix)

	for _, root := range roots {
		if artifact, found := a.lookup(string(root), rel); found {
			result.Artifact = m.Path(filepath.Clean(artifact))
			result.Found = true

			return result
		}
	}

	slog.Debug("no artifact found for source", "source", sourcePath, "logical", logical)

	return result
}

// lookup tries the direct location, then the convention output directories,
// then a depth-bounded search for a directory holding rel.
func (a *artifactMapper) lookup(root, rel string) (string, bool) {
	direct := filepath.Join(root, rel)
	if a.fs.IsFile(m.Path(direct)) {
		return direct, true
	}

	info, err := a.fs.FileInfo(m.Path(root))
	if err != nil || !info.IsDir() {
		return "", false
	}

	for _, c := range a.opts.Conventions {
		for _, out := range c.OutputDirs {
			candidate := filepath.Join(root, filepath.FromSlash(out), rel)
			if a.fs.IsFile(m.Path(candidate)) {
				return candidate, true
			}
		}
	}

	return a.search(root, rel)
}

type searchItem struct {
	dir   string
	depth int
}

// search walks the directories below root breadth-first, up to SearchDepth
// levels, and returns the first dir/rel that exists. Symlinked directories
// are not followed.
func (a *artifactMapper) search(root, rel string) (string, bool) {
	queue := []searchItem{{dir: root, depth: 0}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if item.depth > 0 {
			candidate := filepath.Join(item.dir, rel)
			if a.fs.IsFile(m.Path(candidate)) {
				return candidate, true
			}
		}

		if item.depth >= a.opts.SearchDepth {
			continue
		}

		entries, err := a.fs.ReadDir(m.Path(item.dir))
		if err != nil {
			slog.Debug("skipping unreadable directory", "dir", item.dir, "error", err)
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() || entry.Type()&os.ModeSymlink != 0 || entry.Name() == ".git" {
				continue
			}

			queue = append(queue, searchItem{dir: filepath.Join(item.dir, entry.Name()), depth: item.depth + 1})
		}
	}

	return "", false
}

func memoKey(sourcePath string, roots []m.Path) string {
	var b strings.Builder

	b.WriteString(sourcePath)

	for _, r := range roots {
		b.WriteByte(0)
		b.WriteString(string(r))
	}

	return b.String()
}
