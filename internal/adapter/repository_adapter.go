package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/go-git/go-git/v5/utils/merkletrie"
	m "incov.dev/pkg/incov/internal/model"
)

const gitDirName = ".git"

// RepositoryAdapter resolves references and computes change sets against one
// repository. Implementations own a lazily opened store handle and per-instance
// caches; callers must Close them when the report run ends.
type RepositoryAdapter interface {
	// IsRepository reports whether the root contains a .git entry. It never
	// opens the store.
	IsRepository() bool

	// Resolve turns a revision string (full or abbreviated hash, branch, tag,
	// relative expression such as HEAD~2) into a change point.
	Resolve(reference string) (*m.ChangePoint, error)

	// FirstChangePoint returns the root commit reachable from the branch tip.
	FirstChangePoint(ctx context.Context, branch string) (*m.ChangePoint, error)

	// ChangedSourceFiles lists source files that differ between base and HEAD.
	ChangedSourceFiles(ctx context.Context, base *m.ChangePoint) (m.ChangeSet, error)

	// Close releases the store handle. It is safe to call more than once.
	Close() error
}

// RepositoryFactory creates a fresh RepositoryAdapter rooted at a directory.
type RepositoryFactory func(root m.Path) RepositoryAdapter

// NewGitRepositoryFactory returns a factory producing go-git backed adapters
// that track files with the given source suffix.
func NewGitRepositoryFactory(sourceSuffix string) RepositoryFactory {
	return func(root m.Path) RepositoryAdapter {
		return NewGitRepositoryAdapter(root, sourceSuffix)
	}
}

// GitRepositoryAdapter implements RepositoryAdapter on top of go-git.
type GitRepositoryAdapter struct {
	root         string
	sourceSuffix string

	repo   *git.Repository
	closed bool

	commits map[string]*m.ChangePoint
	changes map[string]m.ChangeSet
}

// NewGitRepositoryAdapter constructs an adapter for the repository at root.
// Nothing is opened until the first operation that needs the store.
func NewGitRepositoryAdapter(root m.Path, sourceSuffix string) *GitRepositoryAdapter {
	return &GitRepositoryAdapter{
		root:         string(root),
		sourceSuffix: sourceSuffix,
		commits:      make(map[string]*m.ChangePoint),
		changes:      make(map[string]m.ChangeSet),
	}
}

// IsRepository reports whether root/.git is a directory.
func (a *GitRepositoryAdapter) IsRepository() bool {
	info, err := os.Stat(filepath.Join(a.root, gitDirName))
	if err != nil {
		return false
	}

	// worktrees and submodules carry a gitdir file instead of a directory
	return info.IsDir() || info.Mode().IsRegular()
}

func (a *GitRepositoryAdapter) ensureRepository() error {
	if a.repo != nil {
		return nil
	}

	if a.closed {
		return m.NewGitError(m.KindRepositoryUnavailable, "repository handle already closed: "+a.absRoot(), nil)
	}

	if !a.IsRepository() {
		return m.NewGitError(m.KindRepositoryUnavailable, "cannot open git repository: "+a.absRoot(), nil)
	}

	repo, err := git.PlainOpen(a.root)
	if err != nil {
		return m.NewGitError(m.KindRepositoryUnavailable, "cannot open git repository: "+a.absRoot(), err)
	}

	slog.Debug("opened git repository", "root", a.root)
	a.repo = repo

	return nil
}

func (a *GitRepositoryAdapter) absRoot() string {
	abs, err := filepath.Abs(a.root)
	if err != nil {
		return a.root
	}

	return abs
}

// Resolve resolves a reference to a commit. Results are cached per reference
// string for the lifetime of the adapter.
func (a *GitRepositoryAdapter) Resolve(reference string) (*m.ChangePoint, error) {
	if strings.TrimSpace(reference) == "" {
		return nil, m.NewGitError(m.KindInvalidReference, "commit reference must not be empty", nil)
	}

	if cp, ok := a.commits[reference]; ok {
		return cp, nil
	}

	if err := a.ensureRepository(); err != nil {
		return nil, err
	}

	commit, err := a.resolveCommit(reference)
	if err != nil {
		return nil, err
	}

	cp := toChangePoint(commit)
	a.commits[reference] = cp
	slog.Debug("resolved reference", "reference", reference, "hash", cp.Hash)

	return cp, nil
}

func (a *GitRepositoryAdapter) resolveCommit(reference string) (*object.Commit, error) {
	if isAbbreviatedHash(reference) && !a.isRefName(reference) {
		return a.resolveAbbreviated(reference)
	}

	hash, err := a.repo.ResolveRevision(plumbing.Revision(reference))
	if err == nil {
		commit, commitErr := a.repo.CommitObject(*hash)
		if commitErr != nil {
			return nil, unresolvable(reference, commitErr)
		}

		return commit, nil
	}

	if commit, ok, tagErr := a.peelTag(reference); ok || tagErr != nil {
		return commit, tagErr
	}

	if plumbing.IsHash(reference) {
		if obj, objErr := a.repo.Object(plumbing.AnyObject, plumbing.NewHash(reference)); objErr == nil {
			return nil, wrongKind(reference, obj.Type())
		}
	}

	return nil, unresolvable(reference, err)
}

// resolveAbbreviated looks up a unique object by hash prefix and requires
// it to be a commit.
func (a *GitRepositoryAdapter) resolveAbbreviated(prefix string) (*object.Commit, error) {
	if len(prefix) < m.MinAbbrevLength {
		return nil, unresolvable(prefix, nil)
	}

	iter, err := a.repo.Storer.IterEncodedObjects(plumbing.AnyObject)
	if err != nil {
		return nil, unresolvable(prefix, err)
	}

	hash, kind, err := findByPrefix(iter, prefix)
	if err != nil {
		return nil, err
	}

	if kind != plumbing.CommitObject {
		return nil, wrongKind(prefix, kind)
	}

	commit, err := a.repo.CommitObject(hash)
	if err != nil {
		return nil, unresolvable(prefix, err)
	}

	return commit, nil
}

// findByPrefix returns the hash and type of the only object in iter whose
// hash starts with prefix. It closes iter.
func findByPrefix(iter storer.EncodedObjectIter, prefix string) (plumbing.Hash, plumbing.ObjectType, error) {
	defer iter.Close()

	prefix = strings.ToLower(prefix)

	var (
		hash    plumbing.Hash
		kind    plumbing.ObjectType
		matches int
	)

	err := iter.ForEach(func(obj plumbing.EncodedObject) error {
		if strings.HasPrefix(obj.Hash().String(), prefix) {
			matches++
			hash = obj.Hash()
			kind = obj.Type()
		}

		return nil
	})
	if err != nil {
		return plumbing.ZeroHash, plumbing.InvalidObject, unresolvable(prefix, err)
	}

	switch {
	case matches == 0:
		return plumbing.ZeroHash, plumbing.InvalidObject, unresolvable(prefix, nil)
	case matches > 1:
		return plumbing.ZeroHash, plumbing.InvalidObject, m.NewGitError(m.KindAmbiguousOrMissingReference,
			fmt.Sprintf("ambiguous commit reference %s matches %d objects", prefix, matches), nil)
	}

	return hash, kind, nil
}

// isRefName reports whether the string names a ref under git's rev-parse rules.
func (a *GitRepositoryAdapter) isRefName(name string) bool {
	for _, rule := range plumbing.RefRevParseRules {
		if _, err := a.repo.Reference(plumbing.ReferenceName(fmt.Sprintf(rule, name)), true); err == nil {
			return true
		}
	}

	return false
}

// peelTag follows an annotated tag to the commit it points to.
func (a *GitRepositoryAdapter) peelTag(name string) (*object.Commit, bool, error) {
	ref, err := a.repo.Tag(name)
	if err != nil {
		return nil, false, nil
	}

	tag, err := a.repo.TagObject(ref.Hash())
	if err != nil {
		// lightweight tag pointing straight at a tree or blob
		obj, objErr := a.repo.Object(plumbing.AnyObject, ref.Hash())
		if objErr != nil || obj.Type() == plumbing.CommitObject {
			return nil, false, nil
		}

		return nil, false, wrongKind(name, obj.Type())
	}

	commit, err := tag.Commit()
	if err != nil {
		return nil, false, m.NewGitError(m.KindWrongObjectKind,
			fmt.Sprintf("reference %s is not a commit (tag pointing to a %s)", name, tag.TargetType), err)
	}

	return commit, true, nil
}

func wrongKind(reference string, kind plumbing.ObjectType) error {
	return m.NewGitError(m.KindWrongObjectKind,
		fmt.Sprintf("reference %s is not a commit (it is a %s)", reference, kind), nil)
}

func unresolvable(reference string, cause error) error {
	if len(reference) < m.MinAbbrevLength {
		return m.NewGitError(m.KindAmbiguousOrMissingReference,
			fmt.Sprintf("commit reference too short (at least %d characters required): %s", m.MinAbbrevLength, reference), cause)
	}

	return m.NewGitError(m.KindAmbiguousOrMissingReference,
		fmt.Sprintf("cannot resolve commit reference: %s; check that the commit exists or the tag/branch name is correct", reference), cause)
}

func isAbbreviatedHash(s string) bool {
	if len(s) == 0 || len(s) >= 40 {
		return false
	}

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}

	return true
}

// FirstChangePoint walks the history reachable from the branch tip and
// returns its root commit. The walk is streamed; only the last root seen is kept.
func (a *GitRepositoryAdapter) FirstChangePoint(ctx context.Context, branch string) (*m.ChangePoint, error) {
	if strings.TrimSpace(branch) == "" {
		return nil, m.NewGitError(m.KindInvalidReference, "branch name must not be empty", nil)
	}

	if err := a.ensureRepository(); err != nil {
		return nil, err
	}

	tip, ok := a.resolveBranch(branch)
	if !ok {
		return nil, m.NewGitError(m.KindBranchNotFound,
			fmt.Sprintf("branch does not exist: %s; check the branch name", branch), nil)
	}

	iter, err := a.repo.Log(&git.LogOptions{From: tip, Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, m.NewGitError(m.KindEmptyBranch, fmt.Sprintf("branch %s has no commits", branch), err)
	}
	defer iter.Close()

	var last, lastRoot *object.Commit

	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		last = c
		if c.NumParents() == 0 {
			lastRoot = c
		}

		return nil
	})

	switch {
	case err != nil && ctx.Err() != nil:
		return nil, err
	case err != nil && (last == nil || !errors.Is(err, plumbing.ErrObjectNotFound)):
		return nil, m.NewGitError(m.KindDiffFailure, fmt.Sprintf("walk history of branch %s", branch), err)
	case last == nil:
		return nil, m.NewGitError(m.KindEmptyBranch, fmt.Sprintf("branch %s has no commits", branch), nil)
	}

	// A shallow clone ends in commits whose parents are missing.
	first := lastRoot
	if first == nil {
		first = last
	}

	slog.Debug("found first commit of branch", "branch", branch, "hash", first.Hash.String())

	return toChangePoint(first), nil
}

func (a *GitRepositoryAdapter) resolveBranch(name string) (plumbing.Hash, bool) {
	if ref, err := a.repo.Reference(plumbing.NewBranchReferenceName(name), true); err == nil {
		return ref.Hash(), true
	}

	if alt, ok := alternateDefaultBranch(name); ok {
		if ref, err := a.repo.Reference(plumbing.NewBranchReferenceName(alt), true); err == nil {
			slog.Debug("using alternate default branch", "requested", name, "branch", alt)
			return ref.Hash(), true
		}
	}

	if hash, err := a.repo.ResolveRevision(plumbing.Revision(name)); err == nil {
		return *hash, true
	}

	return plumbing.ZeroHash, false
}

func alternateDefaultBranch(name string) (string, bool) {
	switch name {
	case "master":
		return "main", true
	case "main":
		return "master", true
	default:
		return "", false
	}
}

// ChangedSourceFiles diffs the base tree against the HEAD tree with rename
// detection and returns the source paths that were added, modified or renamed.
func (a *GitRepositoryAdapter) ChangedSourceFiles(ctx context.Context, base *m.ChangePoint) (m.ChangeSet, error) {
	if base == nil {
		return nil, m.NewGitError(m.KindInvalidReference, "base commit must not be nil", nil)
	}

	if err := a.ensureRepository(); err != nil {
		return nil, err
	}

	if cached, ok := a.changes[base.Hash]; ok {
		return cached.Clone(), nil
	}

	head, err := a.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			slog.Debug("HEAD is not resolvable, repository has no commits")
			return m.NewChangeSet(), nil
		}

		return nil, m.NewGitError(m.KindDiffFailure, "resolve HEAD", err)
	}

	baseTree, err := a.treeOf(plumbing.NewHash(base.Hash))
	if err != nil {
		return nil, err
	}

	headTree, err := a.treeOf(head.Hash())
	if err != nil {
		return nil, err
	}

	changes, err := object.DiffTreeWithOptions(ctx, baseTree, headTree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, m.NewGitError(m.KindDiffFailure, "compute changed files", err)
	}

	set := m.NewChangeSet()

	for _, change := range changes {
		fc, err := toFileChange(change)
		if err != nil {
			return nil, m.NewGitError(m.KindDiffFailure, "classify change "+change.String(), err)
		}

		set.Apply(fc, a.sourceSuffix)
	}

	slog.Debug("computed changed source files",
		"base", base.Hash, "head", head.Hash().String(), "entries", len(changes), "changed", set.Len())

	a.changes[base.Hash] = set.Clone()

	return set, nil
}

func (a *GitRepositoryAdapter) treeOf(hash plumbing.Hash) (*object.Tree, error) {
	commit, err := a.repo.CommitObject(hash)
	if err != nil {
		return nil, m.NewGitError(m.KindDiffFailure, "load commit "+hash.String(), err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, m.NewGitError(m.KindDiffFailure, "load tree of commit "+hash.String(), err)
	}

	return tree, nil
}

func toFileChange(change *object.Change) (m.FileChange, error) {
	action, err := change.Action()
	if err != nil {
		return m.FileChange{}, err
	}

	switch action {
	case merkletrie.Insert:
		return m.FileChange{Kind: m.ChangeAdd, NewPath: change.To.Name}, nil
	case merkletrie.Delete:
		return m.FileChange{Kind: m.ChangeDelete, OldPath: change.From.Name}, nil
	case merkletrie.Modify:
		if change.From.Name != change.To.Name {
			return m.FileChange{Kind: m.ChangeRename, OldPath: change.From.Name, NewPath: change.To.Name}, nil
		}

		return m.FileChange{Kind: m.ChangeModify, OldPath: change.From.Name, NewPath: change.To.Name}, nil
	default:
		return m.FileChange{}, fmt.Errorf("unsupported change action %v", action)
	}
}

func toChangePoint(commit *object.Commit) *m.ChangePoint {
	parents := make([]string, 0, len(commit.ParentHashes))
	for _, p := range commit.ParentHashes {
		parents = append(parents, p.String())
	}

	summary, _, _ := strings.Cut(strings.TrimSpace(commit.Message), "\n")

	return &m.ChangePoint{
		Hash:         commit.Hash.String(),
		Summary:      summary,
		ParentHashes: parents,
	}
}

// Close releases the store handle if one was opened.
func (a *GitRepositoryAdapter) Close() error {
	a.closed = true

	if a.repo == nil {
		return nil
	}

	repo := a.repo
	a.repo = nil

	if closer, ok := repo.Storer.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("close repository %s: %w", a.root, err)
		}
	}

	slog.Debug("closed git repository", "root", a.root)

	return nil
}
