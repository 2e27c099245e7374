package entities

import "sort"

// ConfigurationEntry is one application configuration property.
type ConfigurationEntry struct {
	Key   string
	Value string
}

// GeneratorContext is the in-memory generation plan: what is being generated,
// with which features, and which dependencies and configuration the features
// contributed.
type GeneratorContext struct {
	ApplicationType ApplicationType
	Project         Project
	Options         Options
	Features        *FeatureSet

	dependencies  []Dependency
	depIndex      map[string]int
	configuration map[string]string
}

// NewGeneratorContext creates an empty plan for the given selection.
func NewGeneratorContext(
	applicationType ApplicationType,
	project Project,
	options Options,
	features *FeatureSet,
) *GeneratorContext {
	if features == nil {
		features = NewFeatureSet()
	}
	return &GeneratorContext{
		ApplicationType: applicationType,
		Project:         project,
		Options:         options,
		Features:        features,
		depIndex:        make(map[string]int),
		configuration:   make(map[string]string),
	}
}

// AddDependency adds a dependency unless one with the same artifact id and
// scope is already present.
func (c *GeneratorContext) AddDependency(dep Dependency) {
	key := dep.key()
	if _, ok := c.depIndex[key]; ok {
		return
	}
	c.depIndex[key] = len(c.dependencies)
	c.dependencies = append(c.dependencies, dep)
}

// Dependencies returns a copy of the dependencies in insertion order.
func (c *GeneratorContext) Dependencies() []Dependency {
	result := make([]Dependency, len(c.dependencies))
	copy(result, c.dependencies)
	return result
}

// DependencyByArtifactID returns the first dependency with the artifact id.
func (c *GeneratorContext) DependencyByArtifactID(artifactID string) (Dependency, bool) {
	return FindDependency(c.dependencies, artifactID)
}

// ResolveDependencies replaces every dependency with the result of resolve,
// stopping at the first error.
func (c *GeneratorContext) ResolveDependencies(resolve func(Dependency) (Dependency, error)) error {
	for i, dep := range c.dependencies {
		resolved, err := resolve(dep)
		if err != nil {
			return err
		}
		c.dependencies[i] = resolved
	}
	return nil
}

// HasFeature reports whether the named feature was selected.
func (c *GeneratorContext) HasFeature(name string) bool {
	return c.Features.Contains(name)
}

// AddConfiguration sets an application configuration property.
func (c *GeneratorContext) AddConfiguration(key, value string) {
	c.configuration[key] = value
}

// Configuration returns the configuration properties sorted by key.
func (c *GeneratorContext) Configuration() []ConfigurationEntry {
	keys := make([]string, 0, len(c.configuration))
	for k := range c.configuration {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]ConfigurationEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, ConfigurationEntry{Key: k, Value: c.configuration[k]})
	}
	return entries
}

// FindDependency returns the first dependency in deps with the artifact id.
func FindDependency(deps []Dependency, artifactID string) (Dependency, bool) {
	for _, dep := range deps {
		if dep.ArtifactID == artifactID {
			return dep, true
		}
	}
	return Dependency{}, false
}
