package repositories

import (
	"context"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
)

// ProjectGeneratorRepository is the scaffolding engine: it turns a request
// into a validated generation plan and renders that plan to disk.
type ProjectGeneratorRepository interface {
	// CreateGeneratorContext selects default and requested features, runs the
	// feature validators, applies the features and resolves dependency
	// versions. Nothing is written to disk.
	CreateGeneratorContext(ctx context.Context, request entities.GenerationRequest) (*entities.GeneratorContext, error)

	// Generate renders the project skeleton into outputDir and returns the
	// relative paths of the files it wrote.
	Generate(ctx context.Context, generatorContext *entities.GeneratorContext, outputDir string, force bool) ([]string, error)
}
