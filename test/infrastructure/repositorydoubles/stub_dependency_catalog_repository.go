//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
	"github.com/rios0rios0/cracgen/internal/domain/repositories"
)

// StubDependencyCatalogRepository resolves every artifact to the same group
// and version, except for the ones listed in Versions or Unknown.
type StubDependencyCatalogRepository struct {
	GroupID  string
	Version  string
	Versions map[string]string
	Unknown  []string
	Platform string
}

var _ repositories.DependencyCatalogRepository = (*StubDependencyCatalogRepository)(nil)

func (s *StubDependencyCatalogRepository) Resolve(
	dep entities.Dependency,
	pins map[string]string,
) (entities.Dependency, error) {
	for _, unknown := range s.Unknown {
		if unknown == dep.ArtifactID {
			return entities.Dependency{}, fmt.Errorf("%w: %q", entities.ErrUnknownArtifact, dep.ArtifactID)
		}
	}
	if dep.GroupID == "" {
		dep.GroupID = s.GroupID
	}
	if dep.Version == "" {
		dep.Version = s.Version
		if v, ok := s.Versions[dep.ArtifactID]; ok {
			dep.Version = v
		}
		if v, ok := pins[dep.ArtifactID]; ok {
			dep.Version = v
		}
	}
	return dep, nil
}

func (s *StubDependencyCatalogRepository) PlatformVersion() string {
	return s.Platform
}
