//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cracgen/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyBuilder helps create test dependencies with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	groupID    string
	artifactID string
	version    string
	scope      entities.Scope
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		groupID:     "io.micronaut.test",
		artifactID:  "test-artifact",
		version:     "1.0.0",
		scope:       entities.ScopeCompile,
	}
}

// WithGroupID sets the group id.
func (b *DependencyBuilder) WithGroupID(groupID string) *DependencyBuilder {
	b.groupID = groupID
	return b
}

// WithArtifactID sets the artifact id.
func (b *DependencyBuilder) WithArtifactID(artifactID string) *DependencyBuilder {
	b.artifactID = artifactID
	return b
}

// WithVersion sets the version.
func (b *DependencyBuilder) WithVersion(version string) *DependencyBuilder {
	b.version = version
	return b
}

// WithScope sets the scope.
func (b *DependencyBuilder) WithScope(scope entities.Scope) *DependencyBuilder {
	b.scope = scope
	return b
}

// AsCrac makes the dependency the runtime micronaut-crac artifact.
func (b *DependencyBuilder) AsCrac() *DependencyBuilder {
	b.groupID = "io.micronaut.crac"
	b.artifactID = entities.CracArtifactID
	b.scope = entities.ScopeRuntime
	return b
}

// Unresolved clears group id and version, as a feature would add it.
func (b *DependencyBuilder) Unresolved() *DependencyBuilder {
	b.groupID = ""
	b.version = ""
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	return entities.Dependency{
		GroupID:    b.groupID,
		ArtifactID: b.artifactID,
		Version:    b.version,
		Scope:      b.scope,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.groupID = "io.micronaut.test"
	b.artifactID = "test-artifact"
	b.version = "1.0.0"
	b.scope = entities.ScopeCompile
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		groupID:     b.groupID,
		artifactID:  b.artifactID,
		version:     b.version,
		scope:       b.scope,
	}
}
