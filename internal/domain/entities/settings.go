package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is the optional user configuration for cracgen.
type Settings struct {
	Defaults *GenerationDefaults `yaml:"defaults" hcl:"defaults,block"`
	Versions map[string]string   `yaml:"versions" hcl:"versions,optional"`
}

// GenerationDefaults holds values used when the matching CLI flag is not set.
type GenerationDefaults struct {
	ApplicationType string   `yaml:"application_type" hcl:"application_type,optional"`
	BuildTool       string   `yaml:"build_tool"       hcl:"build_tool,optional"`
	Language        string   `yaml:"language"         hcl:"language,optional"`
	TestFramework   string   `yaml:"test_framework"   hcl:"test_framework,optional"`
	JdkVersion      int      `yaml:"jdk_version"      hcl:"jdk_version,optional"`
	Features        []string `yaml:"features"         hcl:"features,optional"`
	InitGit         bool     `yaml:"init_git"         hcl:"init_git,optional"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns settings with every default left to the generator.
func NewDefaultSettings() *Settings {
	return &Settings{
		Defaults: &GenerationDefaults{},
		Versions: map[string]string{},
	}
}

// NewSettings reads a settings file. Files ending in .hcl are decoded as HCL,
// anything else as YAML.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings *Settings
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		settings, err = decodeHCLSettings(data, path)
	} else {
		settings, err = decodeYAMLSettings(data, path)
	}
	if err != nil {
		return nil, err
	}

	settings.normalize()
	if validateErr := settings.validate(); validateErr != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, validateErr)
	}
	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".cracgen.yaml",
		".cracgen.yml",
		"cracgen.yaml",
		"cracgen.yml",
		"cracgen.hcl",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func decodeYAMLSettings(data []byte, path string) (*Settings, error) {
	expanded := expandEnv(string(data))

	result, err := ValidateSettingsDocument([]byte(expanded))
	if err != nil {
		return nil, fmt.Errorf("failed to validate config file %q: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("config file %q does not match the settings schema: %s", path, result)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal([]byte(expanded), &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}
	return &settings, nil
}

// expandEnv replaces ${VAR} references with their environment values.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

func (s *Settings) normalize() {
	if s.Defaults == nil {
		s.Defaults = &GenerationDefaults{}
	}
	if s.Versions == nil {
		s.Versions = map[string]string{}
	}
	features := make([]string, 0, len(s.Defaults.Features))
	for _, f := range s.Defaults.Features {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			features = append(features, trimmed)
		}
	}
	s.Defaults.Features = features
}

// validate checks values the schema cannot express, and HCL files which
// skip the schema entirely.
func (s *Settings) validate() error {
	d := s.Defaults
	if _, err := ParseApplicationType(d.ApplicationType); err != nil {
		return err
	}
	if _, err := ParseBuildTool(d.BuildTool); err != nil {
		return err
	}
	if _, err := ParseLanguage(d.Language); err != nil {
		return err
	}
	if _, err := ParseTestFramework(d.TestFramework); err != nil {
		return err
	}
	if _, err := ParseJdkVersion(d.JdkVersion); err != nil {
		return err
	}
	for artifactID, version := range s.Versions {
		if strings.TrimSpace(version) == "" {
			return fmt.Errorf("versions.%s must not be empty", artifactID)
		}
	}
	return nil
}
