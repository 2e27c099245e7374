package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/cracgen/internal/domain/repositories"
	"github.com/rios0rios0/cracgen/internal/infrastructure/repositories/buildfile"
	"github.com/rios0rios0/cracgen/internal/infrastructure/repositories/catalog"
	"github.com/rios0rios0/cracgen/internal/infrastructure/repositories/features"
	"github.com/rios0rios0/cracgen/internal/infrastructure/repositories/generator"
	"github.com/rios0rios0/cracgen/internal/infrastructure/repositories/git"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register feature registry with every shipped feature
	if err := container.Provide(func() *FeatureRegistry {
		reg := NewFeatureRegistry()
		for _, f := range features.All() {
			reg.Register(f)
		}
		return reg
	}); err != nil {
		return err
	}
	if err := container.Provide(features.Validators); err != nil {
		return err
	}

	// Register repository constructors
	if err := container.Provide(catalog.NewDependencyCatalogRepository); err != nil {
		return err
	}
	if err := container.Provide(generator.NewProjectGeneratorRepository); err != nil {
		return err
	}
	if err := container.Provide(buildfile.NewBuildFileRepository); err != nil {
		return err
	}
	if err := container.Provide(git.NewVersionControlRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *FeatureRegistry) domainRepos.FeatureRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *catalog.DependencyCatalogRepository) domainRepos.DependencyCatalogRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *generator.ProjectGeneratorRepository) domainRepos.ProjectGeneratorRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *buildfile.BuildFileRepository) domainRepos.BuildFileRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *git.VersionControlRepository) domainRepos.VersionControlRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
