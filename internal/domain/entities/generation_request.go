package entities

// GenerationRequest is everything the generator needs to build a plan.
type GenerationRequest struct {
	ApplicationType ApplicationType
	Project         Project
	Options         Options
	FeatureNames    []string
	// VersionPins maps artifact ids to versions that override the catalog.
	VersionPins map[string]string
}
