// Package adapter contains the repository, filesystem and analyzer adapters
// used by the incremental coverage workflow.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	m "incov.dev/pkg/incov/internal/model"
)

// ArtifactFSAdapter abstracts the filesystem reads the mapper and filter rely
// on. It hides direct `os` access so the domain logic can be tested against
// temp directories or fakes.
type ArtifactFSAdapter interface {
	// Walk traverses root recursively without following symlinked directories.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// FileInfo returns metadata for a path so callers can check existence or
	// distinguish between files and directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// ReadDir lists the entries of a directory.
	ReadDir(path m.Path) ([]os.DirEntry, error)

	// IsFile reports whether path exists and is not a directory.
	IsFile(path m.Path) bool

	// FindRepositoryRoot searches for a .git entry walking up the directory tree.
	FindRepositoryRoot(startPath m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// ErrRepositoryRootNotFound is returned when no ancestor contains a .git entry.
var ErrRepositoryRootNotFound = errors.New("git repository root not found")

// LocalArtifactFSAdapter is the os-backed ArtifactFSAdapter.
type LocalArtifactFSAdapter struct{}

// NewLocalArtifactFSAdapter constructs a LocalArtifactFSAdapter.
func NewLocalArtifactFSAdapter() *LocalArtifactFSAdapter {
	return &LocalArtifactFSAdapter{}
}

// Walk iterates over every file and directory under root.
func (a *LocalArtifactFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalArtifactFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ReadDir lists directory entries sorted by name.
func (a *LocalArtifactFSAdapter) ReadDir(path m.Path) ([]os.DirEntry, error) {
	return os.ReadDir(string(path))
}

// IsFile reports whether path is an existing non-directory.
func (a *LocalArtifactFSAdapter) IsFile(path m.Path) bool {
	info, err := os.Stat(string(path))
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// FindRepositoryRoot walks up from startPath until it finds a directory
// holding a .git directory or file.
func (a *LocalArtifactFSAdapter) FindRepositoryRoot(startPath m.Path) (m.Path, error) {
	dir, err := filepath.Abs(string(startPath))
	if err != nil {
		return "", err
	}

	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		if _, err := os.Lstat(filepath.Join(dir, gitDirName)); err == nil {
			return m.Path(dir), nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no .git in any parent directory of %s", ErrRepositoryRootNotFound, startPath)
		}

		dir = parent
	}
}
