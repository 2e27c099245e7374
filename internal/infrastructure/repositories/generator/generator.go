package generator

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
	"github.com/rios0rios0/cracgen/internal/domain/repositories"
)

// ProjectGeneratorRepository selects, validates and applies features and
// renders the resulting plan from the embedded templates.
type ProjectGeneratorRepository struct {
	features   repositories.FeatureRepository
	validators []repositories.FeatureValidator
	catalog    repositories.DependencyCatalogRepository
}

var _ repositories.ProjectGeneratorRepository = (*ProjectGeneratorRepository)(nil)

// NewProjectGeneratorRepository creates the generator on top of a feature
// catalogue, the validators to run and a dependency catalog.
func NewProjectGeneratorRepository(
	features repositories.FeatureRepository,
	validators []repositories.FeatureValidator,
	catalog repositories.DependencyCatalogRepository,
) *ProjectGeneratorRepository {
	return &ProjectGeneratorRepository{
		features:   features,
		validators: validators,
		catalog:    catalog,
	}
}

func (r *ProjectGeneratorRepository) CreateGeneratorContext(
	_ context.Context,
	request entities.GenerationRequest,
) (*entities.GeneratorContext, error) {
	selected, err := r.selectFeatures(request)
	if err != nil {
		return nil, err
	}
	logger.Debugf("[generator] Selected features: %s", strings.Join(selected.Names(), ", "))

	for _, validator := range r.validators {
		if err = validator.ValidatePreProcessing(request.Options, request.ApplicationType, selected); err != nil {
			return nil, err
		}
	}

	genCtx := entities.NewGeneratorContext(request.ApplicationType, request.Project, request.Options, selected)
	addBaseDependencies(genCtx)
	for _, f := range selected.All() {
		f.Apply(genCtx)
	}
	addBaseConfiguration(genCtx)

	for _, validator := range r.validators {
		if err = validator.ValidatePostProcessing(request.Options, request.ApplicationType, selected); err != nil {
			return nil, err
		}
	}

	err = genCtx.ResolveDependencies(func(dep entities.Dependency) (entities.Dependency, error) {
		return r.catalog.Resolve(dep, request.VersionPins)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
	}
	return genCtx, nil
}

// selectFeatures returns the default features of the application type
// followed by the requested ones.
func (r *ProjectGeneratorRepository) selectFeatures(request entities.GenerationRequest) (*entities.FeatureSet, error) {
	selected := entities.NewFeatureSet()
	for _, f := range r.features.All() {
		if f.Supports(request.ApplicationType) && f.IsDefault(request.ApplicationType, request.Options) {
			selected.Add(f)
		}
	}

	for _, name := range request.FeatureNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f := r.features.Get(name)
		if f == nil {
			return nil, fmt.Errorf("%w: the requested feature does not exist: %s", entities.ErrInvalidArgument, name)
		}
		selected.Add(f)
	}
	return selected, nil
}

// addBaseDependencies adds what every generated project needs regardless of
// the selected features.
func addBaseDependencies(genCtx *entities.GeneratorContext) {
	lang := genCtx.Options.Language

	if lang == entities.LanguageGroovy {
		genCtx.AddDependency(entities.LookupDependency("micronaut-inject-groovy", entities.ScopeCompileOnly))
	} else {
		genCtx.AddDependency(entities.LookupDependency("micronaut-inject-java", entities.ScopeAnnotationProcessor))
	}
	genCtx.AddDependency(entities.LookupDependency("micronaut-serde-processor", entities.ScopeAnnotationProcessor))
	genCtx.AddDependency(entities.LookupDependency("micronaut-runtime", entities.ScopeCompile))
	genCtx.AddDependency(entities.LookupDependency("micronaut-serde-jackson", entities.ScopeCompile))

	if lang == entities.LanguageKotlin {
		genCtx.AddDependency(entities.LookupDependency("micronaut-kotlin-runtime", entities.ScopeCompile))
		genCtx.AddDependency(entities.LookupDependency("kotlin-stdlib", entities.ScopeCompile))
		genCtx.AddDependency(entities.LookupDependency("jackson-module-kotlin", entities.ScopeRuntime))
	}
	genCtx.AddDependency(entities.LookupDependency("logback-classic", entities.ScopeRuntime))

	switch genCtx.Options.TestFramework {
	case entities.TestFrameworkSpock:
		genCtx.AddDependency(entities.LookupDependency("micronaut-test-spock", entities.ScopeTest))
		genCtx.AddDependency(entities.LookupDependency("spock-core", entities.ScopeTest))
	case entities.TestFrameworkKotest:
		genCtx.AddDependency(entities.LookupDependency("micronaut-test-kotest5", entities.ScopeTest))
		genCtx.AddDependency(entities.LookupDependency("kotest-runner-junit5-jvm", entities.ScopeTest))
	default:
		genCtx.AddDependency(entities.LookupDependency("micronaut-test-junit5", entities.ScopeTest))
		genCtx.AddDependency(entities.LookupDependency("junit-jupiter-api", entities.ScopeTest))
		genCtx.AddDependency(entities.LookupDependency("junit-jupiter-engine", entities.ScopeTest))
	}

	if genCtx.ApplicationType == entities.ApplicationTypeDefault {
		genCtx.AddDependency(entities.LookupDependency("micronaut-http-client", entities.ScopeTest))
	}
}

func addBaseConfiguration(genCtx *entities.GeneratorContext) {
	genCtx.AddConfiguration("micronaut.application.name", genCtx.Project.Name)
	if genCtx.ApplicationType == entities.ApplicationTypeDefault {
		genCtx.AddConfiguration("hello.suffix", "world")
	}
}
