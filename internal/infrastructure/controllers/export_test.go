package controllers

// BuildGenerateOptions exports buildGenerateOptions for testing.
var BuildGenerateOptions = buildGenerateOptions //nolint:gochecknoglobals // test export

// LoadSettings exports loadSettings for testing.
var LoadSettings = loadSettings //nolint:gochecknoglobals // test export
