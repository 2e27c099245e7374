package repositories

import (
	"context"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
)

// BuildFileRepository edits the build descriptor of a generated project.
type BuildFileRepository interface {
	// AddSnapshotRepository declares the snapshot repository in the build
	// descriptor of dir when deps carry a snapshot build of micronaut-crac.
	// It reports whether the file was rewritten.
	AddSnapshotRepository(
		ctx context.Context,
		dir string,
		buildTool entities.BuildTool,
		deps []entities.Dependency,
	) (bool, error)
}
