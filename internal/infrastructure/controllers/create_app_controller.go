package controllers

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cracgen/internal/domain/commands"
	"github.com/rios0rios0/cracgen/internal/domain/entities"
)

// CreateAppController handles the "create-app" subcommand.
type CreateAppController struct {
	command commands.Generate
}

// NewCreateAppController creates a new CreateAppController.
func NewCreateAppController(command commands.Generate) *CreateAppController {
	return &CreateAppController{command: command}
}

// GetBind returns the Cobra command metadata for the create-app controller.
func (it *CreateAppController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "create-app <package.name>",
		Short: "Create a Micronaut application",
		Long: `Create a Micronaut application from a combined package and name,
for example "com.example.demo".

Features are selected with --features. Selecting "crac" adds the Micronaut
CRaC runtime; when the resolved CRaC version is a snapshot build, the
generated build file also declares the Sonatype snapshot repository.

Defaults for every flag can be set in a cracgen.yaml or cracgen.hcl file.`,
	}
}

// Execute runs the generation.
func (it *CreateAppController) Execute(cmd *cobra.Command, args []string) {
	applyVerbosity(cmd)
	if len(args) != 1 {
		logger.Fatalf("create-app expects exactly one <package.name> argument, got %d", len(args))
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	opts, err := buildGenerateOptions(cmd, args[0], settings)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	result, err := it.command.Execute(context.Background(), opts)
	if err != nil {
		var badRequest *entities.BadRequestError
		if errors.As(err, &badRequest) {
			logger.Fatalf("bad request (%d): %v", badRequest.StatusCode(), badRequest)
		}
		logger.Fatalf("%v", err)
	}

	printResult(cmd, result)
}

// AddFlags adds the create-app specific flags to the given Cobra command.
func (it *CreateAppController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", "", "Application type (default, cli, function, grpc, messaging)")
	cmd.Flags().StringSliceP("features", "f", nil, "Features to add, comma separated (see 'cracgen features')")
	cmd.Flags().StringP("build", "b", "", "Build tool (gradle, maven)")
	cmd.Flags().StringP("lang", "l", "", "Language (java, kotlin, groovy)")
	cmd.Flags().String("test", "", "Test framework (junit, spock, kotest)")
	cmd.Flags().Int("jdk", 0, "Java version (17, 21)")
	cmd.Flags().StringP("dir", "d", "", "Output directory (default: ./<name>)")
	cmd.Flags().StringToString("pin", nil, "Pin artifact versions, e.g. --pin micronaut-crac=2.5.0-SNAPSHOT")
	cmd.Flags().Bool("git", false, "Initialise a git repository with an initial commit")
	cmd.Flags().Bool("force", false, "Write into a non-empty output directory")
}

// buildGenerateOptions merges command line flags over the settings defaults.
func buildGenerateOptions(
	cmd *cobra.Command,
	packageAndName string,
	settings *entities.Settings,
) (commands.GenerateOptions, error) {
	defaults := settings.Defaults
	flags := cmd.Flags()

	typeName := stringFlagOr(cmd, "type", defaults.ApplicationType)
	applicationType, err := entities.ParseApplicationType(typeName)
	if err != nil {
		return commands.GenerateOptions{}, err
	}
	buildTool, err := entities.ParseBuildTool(stringFlagOr(cmd, "build", defaults.BuildTool))
	if err != nil {
		return commands.GenerateOptions{}, err
	}
	language, err := entities.ParseLanguage(stringFlagOr(cmd, "lang", defaults.Language))
	if err != nil {
		return commands.GenerateOptions{}, err
	}
	testFramework, err := entities.ParseTestFramework(stringFlagOr(cmd, "test", defaults.TestFramework))
	if err != nil {
		return commands.GenerateOptions{}, err
	}

	jdk := defaults.JdkVersion
	if flags.Changed("jdk") {
		jdk, _ = flags.GetInt("jdk")
	}
	javaVersion, err := entities.ParseJdkVersion(jdk)
	if err != nil {
		return commands.GenerateOptions{}, err
	}

	requested, _ := flags.GetStringSlice("features")
	featureNames := append(append([]string{}, defaults.Features...), requested...)

	pins := make(map[string]string, len(settings.Versions))
	for artifactID, version := range settings.Versions {
		pins[artifactID] = version
	}
	flagPins, _ := flags.GetStringToString("pin")
	for artifactID, version := range flagPins {
		pins[artifactID] = version
	}

	initGit := defaults.InitGit
	if flags.Changed("git") {
		initGit, _ = flags.GetBool("git")
	}
	dir, _ := flags.GetString("dir")
	force, _ := flags.GetBool("force")

	return commands.GenerateOptions{
		Directory:       dir,
		ApplicationType: applicationType,
		PackageAndName:  packageAndName,
		Features:        featureNames,
		BuildTool:       buildTool,
		TestFramework:   testFramework,
		Language:        language,
		JavaVersion:     javaVersion,
		VersionPins:     pins,
		InitGit:         initGit,
		Force:           force,
	}, nil
}

func stringFlagOr(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		value, _ := cmd.Flags().GetString(name)
		return value
	}
	return fallback
}

func printResult(cmd *cobra.Command, result *entities.GenerationResult) {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, title.Render("Application created at "+result.OutputDir))
	for _, file := range result.Files {
		_, _ = fmt.Fprintln(out, muted.Render("  "+file))
	}
	if result.SnapshotRepositoryAdded {
		_, _ = fmt.Fprintln(out, "Added the snapshot repository for the micronaut-crac snapshot build")
	}
	if result.GitInitialized {
		_, _ = fmt.Fprintln(out, "Initialised a git repository with an initial commit")
	}
}
