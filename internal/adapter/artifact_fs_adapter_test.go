package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	m "incov.dev/pkg/incov/internal/model"
)

func TestLocalArtifactFSAdapter_Walk(t *testing.T) {
	adapter := NewLocalArtifactFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "Main.class"), "cafebabe")

	nestedDir := filepath.Join(root, "com", "example")
	if err := os.MkdirAll(nestedDir, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}
	child := filepath.Join(nestedDir, "Child.class")
	writeTestFile(t, child, "cafebabe")

	var visited []string
	err := adapter.Walk(m.Path(root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		visited = append(visited, path)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	for _, want := range []string{filepath.Join(root, "Main.class"), nestedDir, child} {
		if !containsPath(visited, want) {
			t.Fatalf("Walk() did not visit %s", want)
		}
	}
}

func TestLocalArtifactFSAdapter_Walk_MissingRoot(t *testing.T) {
	adapter := NewLocalArtifactFSAdapter()

	missing := filepath.Join(t.TempDir(), "missing")
	err := adapter.Walk(m.Path(missing), func(path string, info os.FileInfo, err error) error {
		return err
	})
	if err == nil {
		t.Fatalf("Walk() expected error for missing root")
	}
}

func TestLocalArtifactFSAdapter_FileInfoAndIsFile(t *testing.T) {
	adapter := NewLocalArtifactFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "A.class")
	writeTestFile(t, path, "cafebabe")

	info, err := adapter.FileInfo(m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	if !adapter.IsFile(m.Path(path)) {
		t.Fatalf("IsFile() = false for existing file")
	}

	if adapter.IsFile(m.Path(root)) {
		t.Fatalf("IsFile() = true for directory")
	}

	if adapter.IsFile(m.Path(filepath.Join(root, "Missing.class"))) {
		t.Fatalf("IsFile() = true for missing file")
	}
}

func TestLocalArtifactFSAdapter_ReadDir(t *testing.T) {
	adapter := NewLocalArtifactFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "B.class"), "b")
	writeTestFile(t, filepath.Join(root, "A.class"), "a")

	entries, err := adapter.ReadDir(m.Path(root))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	if len(entries) != 2 || entries[0].Name() != "A.class" {
		t.Fatalf("ReadDir() = %v, want [A.class B.class]", entries)
	}
}

func TestLocalArtifactFSAdapter_FindRepositoryRoot(t *testing.T) {
	adapter := NewLocalArtifactFSAdapter()

	root := t.TempDir()
	repoDir := filepath.Join(root, "project")
	mustMkdir(t, repoDir)
	mustMkdir(t, filepath.Join(repoDir, ".git"))

	classesDir := filepath.Join(repoDir, "target", "classes")
	if err := os.MkdirAll(classesDir, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	got, err := adapter.FindRepositoryRoot(m.Path(classesDir))
	if err != nil {
		t.Fatalf("FindRepositoryRoot() error = %v", err)
	}

	if got != m.Path(repoDir) {
		t.Fatalf("FindRepositoryRoot() = %s, want %s", got, repoDir)
	}

	t.Run("starting from a file", func(t *testing.T) {
		file := filepath.Join(classesDir, "A.class")
		writeTestFile(t, file, "cafebabe")

		got, err := adapter.FindRepositoryRoot(m.Path(file))
		if err != nil {
			t.Fatalf("FindRepositoryRoot() error = %v", err)
		}

		if got != m.Path(repoDir) {
			t.Fatalf("FindRepositoryRoot() = %s, want %s", got, repoDir)
		}
	})

	t.Run("worktree .git file", func(t *testing.T) {
		worktree := filepath.Join(root, "worktree")
		mustMkdir(t, worktree)
		writeTestFile(t, filepath.Join(worktree, ".git"), "gitdir: ../project/.git/worktrees/wt\n")

		got, err := adapter.FindRepositoryRoot(m.Path(worktree))
		if err != nil {
			t.Fatalf("FindRepositoryRoot() error = %v", err)
		}

		if got != m.Path(worktree) {
			t.Fatalf("FindRepositoryRoot() = %s, want %s", got, worktree)
		}
	})
}

func TestLocalArtifactFSAdapter_FindRepositoryRoot_NotFound(t *testing.T) {
	adapter := NewLocalArtifactFSAdapter()

	// The temp dir may itself live inside a repository on developer machines.
	start := t.TempDir()
	got, err := adapter.FindRepositoryRoot(m.Path(start))
	if err == nil {
		if _, statErr := os.Lstat(filepath.Join(string(got), ".git")); statErr != nil {
			t.Fatalf("FindRepositoryRoot() = %s without a .git entry", got)
		}
		return
	}

	if !errors.Is(err, ErrRepositoryRootNotFound) {
		t.Fatalf("FindRepositoryRoot() error = %v, want ErrRepositoryRootNotFound", err)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
