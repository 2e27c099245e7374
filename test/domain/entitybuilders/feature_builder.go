//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cracgen/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// FeatureBuilder helps create test features with a fluent interface.
type FeatureBuilder struct {
	*testkit.BaseBuilder
	name         string
	category     entities.Category
	visible      bool
	defaultFor   []entities.ApplicationType
	supportsOnly []entities.ApplicationType
	dependencies []entities.Dependency
}

// NewFeatureBuilder creates a visible feature without hooks.
func NewFeatureBuilder() *FeatureBuilder {
	return &FeatureBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-feature",
		category:    entities.CategoryConfiguration,
		visible:     true,
	}
}

// WithName sets the feature name.
func (b *FeatureBuilder) WithName(name string) *FeatureBuilder {
	b.name = name
	return b
}

// WithCategory sets the listing category.
func (b *FeatureBuilder) WithCategory(category entities.Category) *FeatureBuilder {
	b.category = category
	return b
}

// Hidden makes the feature invisible to listings.
func (b *FeatureBuilder) Hidden() *FeatureBuilder {
	b.visible = false
	return b
}

// DefaultFor selects the feature automatically for the application types.
func (b *FeatureBuilder) DefaultFor(types ...entities.ApplicationType) *FeatureBuilder {
	b.defaultFor = append(b.defaultFor, types...)
	return b
}

// SupportsOnly restricts the feature to the application types.
func (b *FeatureBuilder) SupportsOnly(types ...entities.ApplicationType) *FeatureBuilder {
	b.supportsOnly = append(b.supportsOnly, types...)
	return b
}

// WithDependency makes Apply add the dependency.
func (b *FeatureBuilder) WithDependency(dep entities.Dependency) *FeatureBuilder {
	b.dependencies = append(b.dependencies, dep)
	return b
}

// Build creates the feature (satisfies testkit.Builder interface).
func (b *FeatureBuilder) Build() interface{} {
	return b.BuildFeature()
}

// BuildFeature creates the feature with a concrete return type.
func (b *FeatureBuilder) BuildFeature() *entities.Feature {
	defaultFor := append([]entities.ApplicationType{}, b.defaultFor...)
	supportsOnly := append([]entities.ApplicationType{}, b.supportsOnly...)
	deps := append([]entities.Dependency{}, b.dependencies...)

	f := &entities.Feature{
		Name:     b.name,
		Title:    b.name,
		Category: b.category,
		Visible:  b.visible,
		IsDefaultFunc: func(t entities.ApplicationType, _ entities.Options) bool {
			return containsType(defaultFor, t)
		},
		ApplyFunc: func(ctx *entities.GeneratorContext) {
			for _, dep := range deps {
				ctx.AddDependency(dep)
			}
		},
	}
	if len(supportsOnly) > 0 {
		f.SupportsFunc = func(t entities.ApplicationType) bool {
			return containsType(supportsOnly, t)
		}
	}
	return f
}

// Reset clears the builder state, allowing it to be reused.
func (b *FeatureBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-feature"
	b.category = entities.CategoryConfiguration
	b.visible = true
	b.defaultFor = nil
	b.supportsOnly = nil
	b.dependencies = nil
	return b
}

// Clone creates a deep copy of the FeatureBuilder.
func (b *FeatureBuilder) Clone() testkit.Builder {
	return &FeatureBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:         b.name,
		category:     b.category,
		visible:      b.visible,
		defaultFor:   append([]entities.ApplicationType{}, b.defaultFor...),
		supportsOnly: append([]entities.ApplicationType{}, b.supportsOnly...),
		dependencies: append([]entities.Dependency{}, b.dependencies...),
	}
}

func containsType(types []entities.ApplicationType, t entities.ApplicationType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
