// Package controller provides output adapters for displaying incremental
// coverage filtering results.
package controller

import (
	"context"

	m "incov.dev/pkg/incov/internal/model"
)

// UI defines the interface for reporting filter progress to the user.
// Implementations never influence the filtering itself.
type UI interface {
	DisplayBase(ctx context.Context, base *m.ChangePoint, branch string)
	DisplayNoFiltering(ctx context.Context)
	DisplayChangeCount(ctx context.Context, count int)
	// DisplayUnmapped prints at most limit warnings followed by a rollup line
	// for the remainder. A limit <= 0 suppresses the per-file lines.
	DisplayUnmapped(ctx context.Context, unmapped []string, limit int)
	DisplayFilterSummary(ctx context.Context, classFiles int, sourceFiles int)
	DisplayChanges(ctx context.Context, base *m.ChangePoint, changes m.ChangeSet) error
	DisplayMappings(ctx context.Context, results []m.MappingResult) error
	DisplayManifest(ctx context.Context, manifest m.Manifest) error
}
