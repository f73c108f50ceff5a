package domain

import (
	"context"
	"fmt"
	"log/slog"

	"incov.dev/pkg/incov/internal/adapter"
	"incov.dev/pkg/incov/internal/controller"
	m "incov.dev/pkg/incov/internal/model"
)

// DefaultWarnLimit is how many unmapped sources are listed before the rollup line.
const DefaultWarnLimit = 5

// ReportArgs contains the arguments for a filtered coverage report run.
type ReportArgs struct {
	// Repository is the working tree root. Empty means discover it from the
	// inputs and the working directory.
	Repository m.Path
	Commit     string
	Branch     string

	ExecFiles   []m.Path
	ClassFiles  []m.Path
	SourceFiles []m.Path

	Manifest     m.Path
	Analyzer     string
	AnalyzerArgs []string
	WarnLimit    int
}

// ChangesArgs contains the arguments for listing a change set.
type ChangesArgs struct {
	Repository m.Path
	Commit     string
	Branch     string
}

// MapArgs contains the arguments for mapping sources onto artifacts.
type MapArgs struct {
	Roots   []m.Path
	Sources []string
}

// ViewArgs contains the arguments for displaying a saved manifest.
type ViewArgs struct {
	Manifest m.Path
}

// Workflow wires reference resolution, change extraction and artifact
// filtering together for the CLI.
type Workflow interface {
	// Filter narrows the class and source inputs to the files changed since
	// the base named by Commit or Branch. Without either, inputs pass through.
	Filter(ctx context.Context, args ReportArgs) (m.FilterResult, error)
	// Report filters, writes the manifest and runs the analyzer when configured.
	Report(ctx context.Context, args ReportArgs) error
	Changes(ctx context.Context, args ChangesArgs) error
	Map(ctx context.Context, args MapArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.ArtifactFSAdapter
	adapter.AnalyzerAdapter
	adapter.ManifestStore
	controller.UI
	ArtifactMapper
	ArtifactFilter

	repositories adapter.RepositoryFactory
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.ArtifactFSAdapter,
	analyzer adapter.AnalyzerAdapter,
	manifestStore adapter.ManifestStore,
	ui controller.UI,
	mapper ArtifactMapper,
	filter ArtifactFilter,
	repositories adapter.RepositoryFactory,
) Workflow {
	return &workflow{
		ArtifactFSAdapter: fsAdapter,
		AnalyzerAdapter:   analyzer,
		ManifestStore:     manifestStore,
		UI:                ui,
		ArtifactMapper:    mapper,
		ArtifactFilter:    filter,
		repositories:      repositories,
	}
}

func (w *workflow) Report(ctx context.Context, args ReportArgs) error {
	result, err := w.Filter(ctx, args)
	if err != nil {
		return err
	}

	if args.Manifest != "" {
		if err := w.SaveManifest(args.Manifest, m.NewManifest(result)); err != nil {
			return fmt.Errorf("save manifest: %w", err)
		}

		slog.Info("manifest written", "path", args.Manifest)
	}

	if args.Analyzer == "" {
		return nil
	}

	err = w.Analyze(ctx, adapter.AnalyzeArgs{
		Command:     args.Analyzer,
		ExecFiles:   args.ExecFiles,
		ClassFiles:  result.ClassFiles,
		SourceFiles: result.SourceFiles,
		Extra:       args.AnalyzerArgs,
	})
	if err != nil {
		return fmt.Errorf("run analyzer: %w", err)
	}

	return nil
}

func (w *workflow) Filter(ctx context.Context, args ReportArgs) (m.FilterResult, error) {
	result := m.FilterResult{
		ClassFiles:  args.ClassFiles,
		SourceFiles: args.SourceFiles,
	}

	if args.Commit == "" && args.Branch == "" {
		w.DisplayNoFiltering(ctx)
		return result, nil
	}

	root := w.repositoryRoot(args.Repository, args.ClassFiles, args.SourceFiles)

	var changes m.ChangeSet

	err := w.withRepository(root, func(repo adapter.RepositoryAdapter) error {
		base, err := w.resolveBase(ctx, repo, args.Commit, args.Branch)
		if err != nil {
			return err
		}

		result.Base = base
		w.DisplayBase(ctx, base, branchLabel(args.Commit, args.Branch))

		changes, err = repo.ChangedSourceFiles(ctx, base)
		if err != nil {
			return fmt.Errorf("changed source files since %s: %w", base.Short(), err)
		}

		return nil
	})
	if err != nil {
		return m.FilterResult{}, err
	}

	w.DisplayChangeCount(ctx, changes.Len())

	classFiles, err := w.FilterArtifacts(args.ClassFiles, changes)
	if err != nil {
		return m.FilterResult{}, fmt.Errorf("filter class files: %w", err)
	}

	sourceFiles, err := w.FilterSources(root, args.SourceFiles, changes)
	if err != nil {
		return m.FilterResult{}, fmt.Errorf("filter source files: %w", err)
	}

	if len(args.ClassFiles) > 0 {
		result.Unmapped = w.Unmapped(args.ClassFiles, changes)
	}

	warnLimit := args.WarnLimit
	if warnLimit == 0 {
		warnLimit = DefaultWarnLimit
	}

	w.DisplayUnmapped(ctx, result.Unmapped, warnLimit)
	w.DisplayFilterSummary(ctx, len(classFiles), len(sourceFiles))

	result.Changed = changes
	result.ClassFiles = classFiles
	result.SourceFiles = sourceFiles
	result.Filtered = true

	slog.Info("filtered analyzer inputs",
		"changed", changes.Len(),
		"classfiles", len(classFiles),
		"sourcefiles", len(sourceFiles),
		"unmapped", len(result.Unmapped),
	)

	return result, nil
}

func (w *workflow) Changes(ctx context.Context, args ChangesArgs) error {
	if args.Commit == "" && args.Branch == "" {
		return m.NewGitError(m.KindInvalidReference, "either a commit or a branch is required", nil)
	}

	root := w.repositoryRoot(args.Repository, nil, nil)

	return w.withRepository(root, func(repo adapter.RepositoryAdapter) error {
		base, err := w.resolveBase(ctx, repo, args.Commit, args.Branch)
		if err != nil {
			return err
		}

		changes, err := repo.ChangedSourceFiles(ctx, base)
		if err != nil {
			return fmt.Errorf("changed source files since %s: %w", base.Short(), err)
		}

		return w.DisplayChanges(ctx, base, changes)
	})
}

func (w *workflow) Map(ctx context.Context, args MapArgs) error {
	results := make([]m.MappingResult, 0, len(args.Sources))

	for _, source := range args.Sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		results = append(results, w.MapSourceToArtifact(source, args.Roots))
	}

	return w.DisplayMappings(ctx, results)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	manifest, err := w.LoadManifest(args.Manifest)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	return w.DisplayManifest(ctx, manifest)
}

// withRepository opens a fresh repository adapter for root and guarantees it
// is closed on every exit path.
func (w *workflow) withRepository(root m.Path, fn func(adapter.RepositoryAdapter) error) error {
	repo := w.repositories(root)

	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Warn("failed to close repository", "root", root, "error", closeErr)
		}
	}()

	if !repo.IsRepository() {
		return m.NewGitError(m.KindRepositoryUnavailable, fmt.Sprintf("not a git repository: %s", root), nil)
	}

	return fn(repo)
}

func (w *workflow) resolveBase(ctx context.Context, repo adapter.RepositoryAdapter, commit, branch string) (*m.ChangePoint, error) {
	if commit != "" {
		base, err := repo.Resolve(commit)
		if err != nil {
			return nil, fmt.Errorf("resolve commit %q: %w", commit, err)
		}

		return base, nil
	}

	base, err := repo.FirstChangePoint(ctx, branch)
	if err != nil {
		return nil, fmt.Errorf("first commit of branch %q: %w", branch, err)
	}

	return base, nil
}

// repositoryRoot returns the explicit root, or the first repository found
// above the class inputs, the source inputs or the working directory.
func (w *workflow) repositoryRoot(explicit m.Path, classFiles, sourceFiles []m.Path) m.Path {
	if explicit != "" {
		return explicit
	}

	var starts []m.Path
	if len(classFiles) > 0 {
		starts = append(starts, classFiles[0])
	}

	if len(sourceFiles) > 0 {
		starts = append(starts, sourceFiles[0])
	}

	starts = append(starts, ".")

	for _, start := range starts {
		root, err := w.FindRepositoryRoot(start)
		if err == nil {
			slog.Debug("repository root discovered", "start", start, "root", root)
			return root
		}
	}

	return "."
}

// branchLabel is the branch to report when the base came from a branch walk.
func branchLabel(commit, branch string) string {
	if commit != "" {
		return ""
	}

	return branch
}
