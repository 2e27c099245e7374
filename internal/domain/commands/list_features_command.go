package commands

import (
	"context"
	"sort"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
	"github.com/rios0rios0/cracgen/internal/domain/repositories"
)

// ListFeatures is the interface for the features command.
type ListFeatures interface {
	Execute(ctx context.Context, opts ListFeaturesOptions) ([]*entities.Feature, error)
}

// ListFeaturesOptions holds the filters of a feature listing.
type ListFeaturesOptions struct {
	ApplicationType entities.ApplicationType
}

// ListFeaturesCommand lists the features a user may request.
type ListFeaturesCommand struct {
	features repositories.FeatureRepository
}

// NewListFeaturesCommand creates a new ListFeaturesCommand.
func NewListFeaturesCommand(features repositories.FeatureRepository) *ListFeaturesCommand {
	return &ListFeaturesCommand{features: features}
}

// Execute returns the visible features supporting the application type,
// ordered by category and then by name.
func (it *ListFeaturesCommand) Execute(
	_ context.Context,
	opts ListFeaturesOptions,
) ([]*entities.Feature, error) {
	applicationType := opts.ApplicationType
	if applicationType == "" {
		applicationType = entities.ApplicationTypeDefault
	}

	var result []*entities.Feature
	for _, f := range it.features.All() {
		if f.Visible && f.Supports(applicationType) {
			result = append(result, f)
		}
	}
	sortFeatures(result)
	return result, nil
}

func sortFeatures(features []*entities.Feature) {
	sort.SliceStable(features, func(i, j int) bool {
		if features[i].Category != features[j].Category {
			return features[i].Category < features[j].Category
		}
		return features[i].Name < features[j].Name
	})
}
