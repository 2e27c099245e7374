//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cracgen/internal/domain/entities"
	"github.com/rios0rios0/cracgen/internal/domain/repositories"
)

// StubFeatureRepository implements repositories.FeatureRepository over a fixed list.
type StubFeatureRepository struct {
	Features []*entities.Feature
}

var _ repositories.FeatureRepository = (*StubFeatureRepository)(nil)

func (s *StubFeatureRepository) Get(name string) *entities.Feature {
	for _, f := range s.Features {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (s *StubFeatureRepository) All() []*entities.Feature {
	return s.Features
}
