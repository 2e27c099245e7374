//go:build unit

package entities_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
	"github.com/rios0rios0/cracgen/test/domain/entitybuilders"
)

const gradleBuild = `plugins {
    id("io.micronaut.application") version "4.4.0"
}

repositories {
    mavenCentral()
}

dependencies {
    runtimeOnly("io.micronaut.crac:micronaut-crac:2.5.0-SNAPSHOT")
}
`

const mavenPom = `<project>
  <modelVersion>4.0.0</modelVersion>

  <repositories>
    <repository>
      <id>central</id>
      <url>https://repo.maven.apache.org/maven2</url>
    </repository>
  </repositories>
</project>
`

func TestNeedsSnapshotRepository(t *testing.T) {
	t.Parallel()

	t.Run("should be false without micronaut-crac", func(t *testing.T) {
		t.Parallel()

		// given
		deps := []entities.Dependency{
			entitybuilders.NewDependencyBuilder().WithArtifactID("micronaut-runtime").WithVersion("4.4.0-SNAPSHOT").BuildDependency(),
		}

		// when
		needed := entities.NeedsSnapshotRepository(deps)

		// then
		assert.False(t, needed)
	})

	t.Run("should be false for a release of micronaut-crac", func(t *testing.T) {
		t.Parallel()

		// given
		deps := []entities.Dependency{
			entitybuilders.NewDependencyBuilder().AsCrac().WithVersion("2.4.0").BuildDependency(),
		}

		// when
		needed := entities.NeedsSnapshotRepository(deps)

		// then
		assert.False(t, needed)
	})

	t.Run("should be true for a snapshot of micronaut-crac", func(t *testing.T) {
		t.Parallel()

		// given
		deps := []entities.Dependency{
			entitybuilders.NewDependencyBuilder().WithArtifactID("micronaut-runtime").BuildDependency(),
			entitybuilders.NewDependencyBuilder().AsCrac().WithVersion("2.5.0-SNAPSHOT").BuildDependency(),
		}

		// when
		needed := entities.NeedsSnapshotRepository(deps)

		// then
		assert.True(t, needed)
	})

	t.Run("should only match the literal upper case suffix", func(t *testing.T) {
		t.Parallel()

		// given
		deps := []entities.Dependency{
			entitybuilders.NewDependencyBuilder().AsCrac().WithVersion("2.5.0-snapshot").BuildDependency(),
		}

		// when
		needed := entities.NeedsSnapshotRepository(deps)

		// then
		assert.False(t, needed)
	})
}

func TestAddSnapshotRepository(t *testing.T) {
	t.Parallel()

	t.Run("should insert the maven line right after the gradle repositories block opener", func(t *testing.T) {
		t.Parallel()

		// given
		expected := strings.Replace(gradleBuild,
			"repositories {\n",
			"repositories {\n    maven { url = 'https://s01.oss.sonatype.org/content/repositories/snapshots' }\n",
			1,
		)

		// when
		patched, changed, err := entities.AddSnapshotRepository(gradleBuild, entities.BuildToolGradle)

		// then
		require.NoError(t, err)
		assert.True(t, changed)
		if diff := cmp.Diff(expected, patched); diff != "" {
			t.Errorf("patched build.gradle mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should treat an empty build tool as gradle", func(t *testing.T) {
		t.Parallel()

		// when
		patched, changed, err := entities.AddSnapshotRepository(gradleBuild, "")

		// then
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Contains(t, patched, entities.GradleSnapshotRepository)
	})

	t.Run("should insert the repository block right after the pom repositories element", func(t *testing.T) {
		t.Parallel()

		// given
		expected := strings.Replace(mavenPom,
			"  <repositories>\n",
			"  <repositories>\n"+
				"    <repository>\n"+
				"      <id>sonatype</id>\n"+
				"      <url>https://s01.oss.sonatype.org/content/repositories/snapshots</url>\n"+
				"    </repository>\n",
			1,
		)

		// when
		patched, changed, err := entities.AddSnapshotRepository(mavenPom, entities.BuildToolMaven)

		// then
		require.NoError(t, err)
		assert.True(t, changed)
		if diff := cmp.Diff(expected, patched); diff != "" {
			t.Errorf("patched pom.xml mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should be idempotent for both dialects", func(t *testing.T) {
		t.Parallel()

		for _, tc := range []struct {
			buildTool entities.BuildTool
			content   string
			marker    string
		}{
			{entities.BuildToolGradle, gradleBuild, entities.GradleSnapshotRepository},
			{entities.BuildToolMaven, mavenPom, entities.MavenSonatypeID},
		} {
			// given
			once, _, err := entities.AddSnapshotRepository(tc.content, tc.buildTool)
			require.NoError(t, err)

			// when
			twice, changed, err := entities.AddSnapshotRepository(once, tc.buildTool)

			// then
			require.NoError(t, err)
			assert.False(t, changed)
			assert.Equal(t, once, twice)
			assert.Equal(t, 1, strings.Count(twice, tc.marker))
		}
	})

	t.Run("should leave content that already declares the repository untouched", func(t *testing.T) {
		t.Parallel()

		// given
		content := "repositories {\n" + entities.GradleSnapshotRepository + "\n    mavenCentral()\n}\n"

		// when
		patched, changed, err := entities.AddSnapshotRepository(content, entities.BuildToolGradle)

		// then
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, content, patched)
	})

	t.Run("should only match the anchor as a whole line", func(t *testing.T) {
		t.Parallel()

		// given
		content := "buildscript {\n    repositories {\n    }\n}\nrepositories {\n    mavenCentral()\n}"

		// when
		patched, changed, err := entities.AddSnapshotRepository(content, entities.BuildToolGradle)

		// then
		require.NoError(t, err)
		assert.True(t, changed)
		lines := strings.Split(patched, "\n")
		assert.Equal(t, "    repositories {", lines[1])
		assert.Equal(t, "repositories {", lines[4])
		assert.Equal(t, entities.GradleSnapshotRepository, lines[5])
	})

	t.Run("should return ErrAnchorNotFound when the anchor is missing", func(t *testing.T) {
		t.Parallel()

		// given
		content := "<project>\n<repositories>\n</repositories>\n</project>\n"

		// when
		patched, changed, err := entities.AddSnapshotRepository(content, entities.BuildToolMaven)

		// then
		require.ErrorIs(t, err, entities.ErrAnchorNotFound)
		assert.False(t, changed)
		assert.Empty(t, patched)
	})

	t.Run("should keep CRLF line endings consistent", func(t *testing.T) {
		t.Parallel()

		// given
		content := strings.ReplaceAll(gradleBuild, "\n", "\r\n")

		// when
		patched, changed, err := entities.AddSnapshotRepository(content, entities.BuildToolGradle)

		// then
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Contains(t, patched, "repositories {\r\n"+entities.GradleSnapshotRepository+"\r\n")

		again, changedAgain, err := entities.AddSnapshotRepository(patched, entities.BuildToolGradle)
		require.NoError(t, err)
		assert.False(t, changedAgain)
		assert.Equal(t, patched, again)
	})
}
