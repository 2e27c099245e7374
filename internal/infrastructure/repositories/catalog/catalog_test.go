//go:build unit

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
	"github.com/rios0rios0/cracgen/internal/infrastructure/repositories/catalog"
)

func TestDependencyCatalogRepository(t *testing.T) {
	t.Parallel()

	t.Run("should load the embedded catalog", func(t *testing.T) {
		t.Parallel()

		// when
		repo, err := catalog.NewDependencyCatalogRepository()

		// then
		require.NoError(t, err)
		assert.NotEmpty(t, repo.PlatformVersion())
	})

	t.Run("should resolve the newest listed version", func(t *testing.T) {
		t.Parallel()

		// given
		repo, err := catalog.NewDependencyCatalogRepositoryFromBytes([]byte(`
platform_version: 4.4.3
artifacts:
  - artifact_id: micronaut-crac
    group_id: io.micronaut.crac
    versions: ["2.4.0", "2.10.0", "2.5.0-SNAPSHOT"]
`))
		require.NoError(t, err)

		// when
		dep, err := repo.Resolve(entities.LookupDependency("micronaut-crac", entities.ScopeRuntime), nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.Dependency{
			GroupID:    "io.micronaut.crac",
			ArtifactID: "micronaut-crac",
			Version:    "2.10.0",
			Scope:      entities.ScopeRuntime,
		}, dep)
	})

	t.Run("should order a snapshot below its release", func(t *testing.T) {
		t.Parallel()

		// given
		repo, err := catalog.NewDependencyCatalogRepositoryFromBytes([]byte(`
platform_version: 4.4.3
artifacts:
  - artifact_id: micronaut-crac
    group_id: io.micronaut.crac
    versions: ["2.5.0", "2.5.0-SNAPSHOT"]
`))
		require.NoError(t, err)

		// when
		dep, err := repo.Resolve(entities.LookupDependency("micronaut-crac", entities.ScopeRuntime), nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, "2.5.0", dep.Version)
	})

	t.Run("should prefer a pinned version", func(t *testing.T) {
		t.Parallel()

		// given
		repo, err := catalog.NewDependencyCatalogRepository()
		require.NoError(t, err)
		pins := map[string]string{"micronaut-crac": "2.5.0-SNAPSHOT"}

		// when
		dep, err := repo.Resolve(entities.LookupDependency("micronaut-crac", entities.ScopeRuntime), pins)

		// then
		require.NoError(t, err)
		assert.Equal(t, "2.5.0-SNAPSHOT", dep.Version)
		assert.Equal(t, "io.micronaut.crac", dep.GroupID)
	})

	t.Run("should return resolved dependencies unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		repo, err := catalog.NewDependencyCatalogRepository()
		require.NoError(t, err)
		dep := entities.Dependency{GroupID: "org.example", ArtifactID: "custom", Version: "1.0", Scope: entities.ScopeCompile}

		// when
		resolved, err := repo.Resolve(dep, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, dep, resolved)
	})

	t.Run("should fail for an unknown artifact", func(t *testing.T) {
		t.Parallel()

		// given
		repo, err := catalog.NewDependencyCatalogRepository()
		require.NoError(t, err)

		// when
		_, err = repo.Resolve(entities.LookupDependency("does-not-exist", entities.ScopeCompile), nil)

		// then
		require.ErrorIs(t, err, entities.ErrUnknownArtifact)
	})

	t.Run("should reject invalid catalogs", func(t *testing.T) {
		t.Parallel()

		for name, content := range map[string]string{
			"missing platform": "artifacts: []\n",
			"invalid version":  "platform_version: 4\nartifacts:\n  - {artifact_id: a, group_id: g, versions: [\"latest\"]}\n",
			"no versions":      "platform_version: 4\nartifacts:\n  - {artifact_id: a, group_id: g, versions: []}\n",
			"duplicate":        "platform_version: 4\nartifacts:\n  - {artifact_id: a, group_id: g, versions: [\"1\"]}\n  - {artifact_id: a, group_id: g, versions: [\"2\"]}\n",
			"missing group":    "platform_version: 4\nartifacts:\n  - {artifact_id: a, versions: [\"1\"]}\n",
		} {
			// when
			_, err := catalog.NewDependencyCatalogRepositoryFromBytes([]byte(content))

			// then
			assert.Error(t, err, name)
		}
	})
}

func TestCanonicalVersion(t *testing.T) {
	t.Parallel()

	t.Run("should map maven versions onto semantic versions", func(t *testing.T) {
		t.Parallel()

		for input, expected := range map[string]string{
			"2.2":            "v2.2.0",
			"4.4.10":         "v4.4.10",
			"2.5.0-SNAPSHOT": "v2.5.0-SNAPSHOT",
			"2.3-groovy-4.0": "v2.3.0-groovy-4.0",
		} {
			// when
			canonical, err := catalog.CanonicalVersion(input)

			// then
			require.NoError(t, err, input)
			assert.Equal(t, expected, canonical, input)
		}
	})

	t.Run("should reject versions that cannot be ordered", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := catalog.CanonicalVersion("1.2.3.4")

		// then
		assert.Error(t, err)
	})
}
