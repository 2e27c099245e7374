package controllers

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cracgen/internal/domain/commands"
	"github.com/rios0rios0/cracgen/internal/domain/entities"
)

// FeaturesController handles the "features" subcommand.
type FeaturesController struct {
	command commands.ListFeatures
}

// NewFeaturesController creates a new FeaturesController.
func NewFeaturesController(command commands.ListFeatures) *FeaturesController {
	return &FeaturesController{command: command}
}

// GetBind returns the Cobra command metadata for the features controller.
func (it *FeaturesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "features",
		Short: "List the features available for an application type",
		Long: `List the features that can be passed to create-app --features,
grouped by category.`,
	}
}

// Execute prints the feature listing.
func (it *FeaturesController) Execute(cmd *cobra.Command, _ []string) {
	applyVerbosity(cmd)

	typeName, _ := cmd.Flags().GetString("type")
	applicationType, err := entities.ParseApplicationType(typeName)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	features, err := it.command.Execute(context.Background(), commands.ListFeaturesOptions{
		ApplicationType: applicationType,
	})
	if err != nil {
		logger.Fatalf("failed to list features: %v", err)
	}

	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	name := lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Width(20)
	out := cmd.OutOrStdout()

	var category entities.Category
	for _, f := range features {
		if f.Category != category {
			if category != "" {
				_, _ = fmt.Fprintln(out)
			}
			category = f.Category
			_, _ = fmt.Fprintln(out, heading.Render(string(category)))
		}
		_, _ = fmt.Fprintf(out, "  %s %s\n", name.Render(f.Name), f.Description)
	}
}

// AddFlags adds the features specific flags to the given Cobra command.
func (it *FeaturesController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", "", "Application type (default, cli, function, grpc, messaging)")
}
