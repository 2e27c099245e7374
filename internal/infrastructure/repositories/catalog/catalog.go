package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
	"github.com/rios0rios0/cracgen/internal/domain/repositories"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// catalogFile is the on-disk layout of catalog.yaml.
type catalogFile struct {
	PlatformVersion string         `yaml:"platform_version"`
	Artifacts       []catalogEntry `yaml:"artifacts"`
}

type catalogEntry struct {
	ArtifactID string   `yaml:"artifact_id"`
	GroupID    string   `yaml:"group_id"`
	Versions   []string `yaml:"versions"`
}

// artifact is a catalog entry with its newest version already picked.
type artifact struct {
	groupID string
	version string
}

// DependencyCatalogRepository resolves artifact ids against a version catalog.
type DependencyCatalogRepository struct {
	platformVersion string
	artifacts       map[string]artifact
}

var _ repositories.DependencyCatalogRepository = (*DependencyCatalogRepository)(nil)

// NewDependencyCatalogRepository loads the catalog shipped with the binary.
func NewDependencyCatalogRepository() (*DependencyCatalogRepository, error) {
	return NewDependencyCatalogRepositoryFromBytes(embeddedCatalog)
}

// NewDependencyCatalogRepositoryFromBytes loads a catalog from YAML.
func NewDependencyCatalogRepositoryFromBytes(data []byte) (*DependencyCatalogRepository, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse dependency catalog: %w", err)
	}
	if file.PlatformVersion == "" {
		return nil, errors.New("dependency catalog has no platform_version")
	}

	repo := &DependencyCatalogRepository{
		platformVersion: file.PlatformVersion,
		artifacts:       make(map[string]artifact, len(file.Artifacts)),
	}
	for i, entry := range file.Artifacts {
		if entry.ArtifactID == "" || entry.GroupID == "" {
			return nil, fmt.Errorf("artifacts[%d]: artifact_id and group_id are required", i)
		}
		if _, exists := repo.artifacts[entry.ArtifactID]; exists {
			return nil, fmt.Errorf("artifacts[%d]: duplicate artifact %q", i, entry.ArtifactID)
		}
		version, err := newestVersion(entry.Versions)
		if err != nil {
			return nil, fmt.Errorf("artifacts[%d] (%s): %w", i, entry.ArtifactID, err)
		}
		repo.artifacts[entry.ArtifactID] = artifact{groupID: entry.GroupID, version: version}
	}
	return repo, nil
}

// PlatformVersion is the Micronaut platform release the catalog tracks.
func (r *DependencyCatalogRepository) PlatformVersion() string {
	return r.platformVersion
}

// Resolve fills in the coordinates of a looked up dependency.
func (r *DependencyCatalogRepository) Resolve(
	dep entities.Dependency,
	pins map[string]string,
) (entities.Dependency, error) {
	if dep.IsResolved() {
		return dep, nil
	}

	entry, ok := r.artifacts[dep.ArtifactID]
	if !ok {
		return entities.Dependency{}, fmt.Errorf("%w: %q", entities.ErrUnknownArtifact, dep.ArtifactID)
	}

	if dep.GroupID == "" {
		dep.GroupID = entry.groupID
	}
	if dep.Version == "" {
		dep.Version = entry.version
		if pinned, pinnedOK := pins[dep.ArtifactID]; pinnedOK && pinned != "" {
			logger.Debugf("[catalog] Using pinned version %s for %s (catalog has %s)", pinned, dep.ArtifactID, entry.version)
			dep.Version = pinned
		}
	}
	return dep, nil
}

// newestVersion returns the highest of the given Maven versions.
func newestVersion(versions []string) (string, error) {
	if len(versions) == 0 {
		return "", errors.New("no versions listed")
	}

	newest := ""
	newestCanonical := ""
	for _, v := range versions {
		canonical, err := CanonicalVersion(v)
		if err != nil {
			return "", err
		}
		if newest == "" || semver.Compare(canonical, newestCanonical) > 0 {
			newest = v
			newestCanonical = canonical
		}
	}
	return newest, nil
}

// CanonicalVersion maps a Maven style version onto semantic versioning so
// versions can be ordered: "2.2" becomes "v2.2.0" and "1.0.0-SNAPSHOT"
// becomes "v1.0.0-SNAPSHOT", which orders before "v1.0.0".
func CanonicalVersion(version string) (string, error) {
	release, qualifier, hasQualifier := strings.Cut(strings.TrimSpace(version), "-")
	parts := strings.Split(release, ".")
	for len(parts) < 3 {
		parts = append(parts, "0")
	}

	canonical := "v" + strings.Join(parts, ".")
	if hasQualifier {
		canonical += "-" + qualifier
	}
	if !semver.IsValid(canonical) {
		return "", fmt.Errorf("invalid version %q", version)
	}
	return canonical, nil
}
