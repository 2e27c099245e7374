package buildfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
	"github.com/rios0rios0/cracgen/internal/domain/repositories"
)

// BuildFileRepository patches build.gradle and pom.xml files on disk.
type BuildFileRepository struct{}

var _ repositories.BuildFileRepository = (*BuildFileRepository)(nil)

// NewBuildFileRepository creates a build descriptor patcher.
func NewBuildFileRepository() *BuildFileRepository {
	return &BuildFileRepository{}
}

func (r *BuildFileRepository) AddSnapshotRepository(
	ctx context.Context,
	dir string,
	buildTool entities.BuildTool,
	deps []entities.Dependency,
) (bool, error) {
	if !entities.NeedsSnapshotRepository(deps) {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	path := filepath.Join(dir, buildTool.BuildFileName())
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	patched, changed, err := entities.AddSnapshotRepository(string(content), buildTool)
	if err != nil {
		return false, err
	}
	if !changed {
		logger.Debugf("[patcher] %s already declares the snapshot repository", path)
		return false, nil
	}

	if err = os.WriteFile(path, []byte(patched), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Infof("[patcher] Added the snapshot repository to %s", path)
	return true, nil
}
