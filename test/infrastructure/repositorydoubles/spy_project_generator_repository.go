//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
	"github.com/rios0rios0/cracgen/internal/domain/repositories"
)

// SpyProjectGeneratorRepository implements repositories.ProjectGeneratorRepository as a configurable spy.
type SpyProjectGeneratorRepository struct {
	// --- CreateGeneratorContext ---
	// Dependencies are added to the context built from the request.
	Dependencies   []entities.Dependency
	CreateErr      error
	CreateRequests []entities.GenerationRequest

	// --- Generate ---
	Files         []string
	GenerateErr   error
	GenerateCalls []GenerateCall
}

// GenerateCall records a single invocation of Generate.
type GenerateCall struct {
	Context   *entities.GeneratorContext
	OutputDir string
	Force     bool
}

var _ repositories.ProjectGeneratorRepository = (*SpyProjectGeneratorRepository)(nil)

func (s *SpyProjectGeneratorRepository) CreateGeneratorContext(
	_ context.Context,
	request entities.GenerationRequest,
) (*entities.GeneratorContext, error) {
	s.CreateRequests = append(s.CreateRequests, request)
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}

	genCtx := entities.NewGeneratorContext(request.ApplicationType, request.Project, request.Options, nil)
	for _, dep := range s.Dependencies {
		genCtx.AddDependency(dep)
	}
	return genCtx, nil
}

func (s *SpyProjectGeneratorRepository) Generate(
	_ context.Context,
	genCtx *entities.GeneratorContext,
	outputDir string,
	force bool,
) ([]string, error) {
	s.GenerateCalls = append(s.GenerateCalls, GenerateCall{Context: genCtx, OutputDir: outputDir, Force: force})
	return s.Files, s.GenerateErr
}
