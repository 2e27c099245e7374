package commands

// SortFeatures exports sortFeatures for testing.
var SortFeatures = sortFeatures //nolint:gochecknoglobals // test export
