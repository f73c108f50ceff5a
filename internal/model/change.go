package model

import (
	"sort"
	"strings"
)

// ChangePoint is an immutable point in version history.
type ChangePoint struct {
	Hash         string
	Summary      string
	ParentHashes []string
}

// Short returns the seven character abbreviation of the hash.
func (c ChangePoint) Short() string {
	if len(c.Hash) <= MinAbbrevLength {
		return c.Hash
	}

	return c.Hash[:MinAbbrevLength]
}

// IsRoot reports whether the change point has no parents.
func (c ChangePoint) IsRoot() bool {
	return len(c.ParentHashes) == 0
}

// MinAbbrevLength is the shortest abbreviated hash accepted as a reference.
const MinAbbrevLength = 7

// ChangeKind classifies one entry of a tree diff.
type ChangeKind int

// Available ChangeKind values.
const (
	ChangeAdd ChangeKind = iota
	ChangeModify
	ChangeCopy
	ChangeRename
	ChangeDelete
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdd:
		return "add"
	case ChangeModify:
		return "modify"
	case ChangeCopy:
		return "copy"
	case ChangeRename:
		return "rename"
	case ChangeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// FileChange is a name-and-status diff entry.
type FileChange struct {
	Kind    ChangeKind
	OldPath string
	NewPath string
}

// ChangeSet is a set of slash-separated paths relative to the repository root.
type ChangeSet map[string]struct{}

// NewChangeSet builds a set from the given paths.
func NewChangeSet(paths ...string) ChangeSet {
	set := make(ChangeSet, len(paths))
	for _, p := range paths {
		set.Add(p)
	}

	return set
}

// Add inserts a path after normalizing its separators.
func (s ChangeSet) Add(path string) {
	path = strings.TrimSpace(NormalizePath(path))
	if path == "" {
		return
	}

	s[path] = struct{}{}
}

// Contains reports whether the normalized path is in the set.
func (s ChangeSet) Contains(path string) bool {
	_, ok := s[NormalizePath(path)]
	return ok
}

// Len returns the number of paths.
func (s ChangeSet) Len() int {
	return len(s)
}

// Sorted returns the paths in lexical order.
func (s ChangeSet) Sorted() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	return paths
}

// Clone returns an independent copy of the set.
func (s ChangeSet) Clone() ChangeSet {
	out := make(ChangeSet, len(s))
	for p := range s {
		out[p] = struct{}{}
	}

	return out
}

// Apply folds a diff entry into the set. Deletions are ignored; a renamed file
// whose new path has the suffix contributes its old path too when that one
// also has the suffix.
func (s ChangeSet) Apply(change FileChange, suffix string) {
	switch change.Kind {
	case ChangeAdd, ChangeModify, ChangeCopy:
		if strings.HasSuffix(change.NewPath, suffix) {
			s.Add(change.NewPath)
		}
	case ChangeRename:
		if !strings.HasSuffix(change.NewPath, suffix) {
			return
		}

		s.Add(change.NewPath)

		if change.OldPath != "" && strings.HasSuffix(change.OldPath, suffix) {
			s.Add(change.OldPath)
		}
	case ChangeDelete:
		// nothing left to analyze
	}
}
