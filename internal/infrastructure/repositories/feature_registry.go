package repositories

import (
	"sort"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
	domainRepos "github.com/rios0rios0/cracgen/internal/domain/repositories"
)

// FeatureRegistry manages all registered features.
type FeatureRegistry struct {
	features map[string]*entities.Feature
}

var _ domainRepos.FeatureRepository = (*FeatureRegistry)(nil)

// NewFeatureRegistry creates an empty feature registry.
func NewFeatureRegistry() *FeatureRegistry {
	return &FeatureRegistry{
		features: make(map[string]*entities.Feature),
	}
}

// Register adds a feature under its name, replacing any previous one.
func (r *FeatureRegistry) Register(f *entities.Feature) {
	r.features[f.Name] = f
}

// Get returns the feature with the given name, or nil if not registered.
func (r *FeatureRegistry) Get(name string) *entities.Feature {
	return r.features[name]
}

// All returns every registered feature ordered by name.
func (r *FeatureRegistry) All() []*entities.Feature {
	result := make([]*entities.Feature, 0, len(r.features))
	for _, f := range r.features {
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Names returns the registered feature names in sorted order.
func (r *FeatureRegistry) Names() []string {
	names := make([]string, 0, len(r.features))
	for name := range r.features {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
