package repositories

import "github.com/rios0rios0/cracgen/internal/domain/entities"

// FeatureRepository is the catalogue of features the generator can apply.
type FeatureRepository interface {
	// Get returns the feature with the given name, or nil.
	Get(name string) *entities.Feature

	// All returns every registered feature ordered by name.
	All() []*entities.Feature
}

// FeatureValidator checks a feature selection before any file is generated.
// Pre-processing runs on the selection before features are applied,
// post-processing on the final set after they were applied.
type FeatureValidator interface {
	ValidatePreProcessing(options entities.Options, applicationType entities.ApplicationType, features *entities.FeatureSet) error
	ValidatePostProcessing(options entities.Options, applicationType entities.ApplicationType, features *entities.FeatureSet) error
}
