package entities

// GenerationResult describes what a generation run left on disk.
type GenerationResult struct {
	OutputDir string
	Files     []string
	Features  []string
	// SnapshotRepositoryAdded is true when the build descriptor was patched.
	SnapshotRepositoryAdded bool
	GitInitialized          bool
}
