package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
	"github.com/rios0rios0/cracgen/internal/domain/repositories"
)

// Generate is the interface for the create-app command.
type Generate interface {
	Execute(ctx context.Context, opts GenerateOptions) (*entities.GenerationResult, error)
}

// GenerateOptions holds everything a single generation needs.
type GenerateOptions struct {
	// Directory is where the project is written. Empty means ./<name>.
	Directory       string
	ApplicationType entities.ApplicationType
	// PackageAndName is the combined identifier, e.g. "com.example.demo".
	PackageAndName string
	Features       []string
	BuildTool      entities.BuildTool
	TestFramework  entities.TestFramework
	Language       entities.Language
	JavaVersion    entities.JdkVersion
	// VersionPins maps artifact ids to versions that override the catalog.
	VersionPins map[string]string
	InitGit     bool
	Force       bool
}

// GenerateCommand validates a request, renders the project and patches the
// generated build descriptor when the selected CRaC build is a snapshot.
type GenerateCommand struct {
	generator  repositories.ProjectGeneratorRepository
	buildFiles repositories.BuildFileRepository
	vcs        repositories.VersionControlRepository
}

// NewGenerateCommand creates a new GenerateCommand.
func NewGenerateCommand(
	generator repositories.ProjectGeneratorRepository,
	buildFiles repositories.BuildFileRepository,
	vcs repositories.VersionControlRepository,
) *GenerateCommand {
	return &GenerateCommand{
		generator:  generator,
		buildFiles: buildFiles,
		vcs:        vcs,
	}
}

// Execute generates one application. Invalid project names fail with a
// *entities.BadRequestError and feature validation errors are returned as
// they are; both happen before anything is written. Failures after that are
// wrapped and leave whatever was already written in place.
func (it *GenerateCommand) Execute(
	ctx context.Context,
	opts GenerateOptions,
) (*entities.GenerationResult, error) {
	project, err := entities.ParseProject(opts.PackageAndName)
	if err != nil {
		return nil, entities.NewBadProjectNameError(err)
	}

	options, err := entities.NewOptions(opts.Language, opts.TestFramework, opts.BuildTool, opts.JavaVersion)
	if err != nil {
		return nil, err
	}

	applicationType := opts.ApplicationType
	if applicationType == "" {
		applicationType = entities.ApplicationTypeDefault
	}
	featureNames := opts.Features
	if featureNames == nil {
		featureNames = []string{}
	}

	genCtx, err := it.generator.CreateGeneratorContext(ctx, entities.GenerationRequest{
		ApplicationType: applicationType,
		Project:         project,
		Options:         options,
		FeatureNames:    featureNames,
		VersionPins:     opts.VersionPins,
	})
	if err != nil {
		return nil, err
	}

	outputDir := opts.Directory
	if outputDir == "" {
		outputDir = project.Name
	}
	logger.Infof("Generating %s application %q into %s", applicationType, project.Name, outputDir)

	result := &entities.GenerationResult{
		OutputDir: outputDir,
		Features:  genCtx.Features.Names(),
	}

	result.Files, err = it.generator.Generate(ctx, genCtx, outputDir, opts.Force)
	if err != nil {
		return nil, generationError(err)
	}

	result.SnapshotRepositoryAdded, err = it.buildFiles.AddSnapshotRepository(
		ctx, outputDir, options.BuildTool, genCtx.Dependencies(),
	)
	if err != nil {
		return nil, generationError(err)
	}

	if opts.InitGit {
		if err = it.vcs.InitRepository(ctx, outputDir); err != nil {
			return nil, generationError(err)
		}
		result.GitInitialized = true
	}

	logger.Infof("Generated %d files for %q", len(result.Files), project.Name)
	return result, nil
}

func generationError(err error) error {
	return fmt.Errorf("error generating application: %w", err)
}
