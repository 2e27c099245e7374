//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
	"github.com/rios0rios0/cracgen/internal/domain/repositories"
)

// SpyBuildFileRepository implements repositories.BuildFileRepository as a configurable spy.
type SpyBuildFileRepository struct {
	Changed bool
	Err     error
	Calls   []AddSnapshotRepositoryCall
}

// AddSnapshotRepositoryCall records a single invocation of AddSnapshotRepository.
type AddSnapshotRepositoryCall struct {
	Dir          string
	BuildTool    entities.BuildTool
	Dependencies []entities.Dependency
}

var _ repositories.BuildFileRepository = (*SpyBuildFileRepository)(nil)

func (s *SpyBuildFileRepository) AddSnapshotRepository(
	_ context.Context,
	dir string,
	buildTool entities.BuildTool,
	deps []entities.Dependency,
) (bool, error) {
	s.Calls = append(s.Calls, AddSnapshotRepositoryCall{Dir: dir, BuildTool: buildTool, Dependencies: deps})
	return s.Changed, s.Err
}
