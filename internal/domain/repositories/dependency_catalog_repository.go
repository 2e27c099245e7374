package repositories

import "github.com/rios0rios0/cracgen/internal/domain/entities"

// DependencyCatalogRepository resolves looked up dependencies to full
// coordinates.
type DependencyCatalogRepository interface {
	// Resolve fills in the group id and version of dep. A pinned version for
	// the artifact id wins over the catalog. Already resolved dependencies are
	// returned unchanged.
	Resolve(dep entities.Dependency, pins map[string]string) (entities.Dependency, error)

	// PlatformVersion is the Micronaut platform release the catalog tracks.
	PlatformVersion() string
}
