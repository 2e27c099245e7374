//go:build unit

package generator_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
	"github.com/rios0rios0/cracgen/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/cracgen/internal/infrastructure/repositories"
	"github.com/rios0rios0/cracgen/internal/infrastructure/repositories/catalog"
	"github.com/rios0rios0/cracgen/internal/infrastructure/repositories/features"
	"github.com/rios0rios0/cracgen/internal/infrastructure/repositories/generator"
	doubles "github.com/rios0rios0/cracgen/test/infrastructure/repositorydoubles"
)

func newGenerator(t *testing.T) *generator.ProjectGeneratorRepository {
	t.Helper()
	reg := infraRepos.NewFeatureRegistry()
	for _, f := range features.All() {
		reg.Register(f)
	}
	cat, err := catalog.NewDependencyCatalogRepository()
	require.NoError(t, err)
	return generator.NewProjectGeneratorRepository(reg, features.Validators(), cat)
}

func newRequest(
	t *testing.T,
	applicationType entities.ApplicationType,
	opts entities.Options,
	featureNames ...string,
) entities.GenerationRequest {
	t.Helper()
	project, err := entities.ParseProject("com.example.demo")
	require.NoError(t, err)
	options, err := entities.NewOptions(opts.Language, opts.TestFramework, opts.BuildTool, opts.JavaVersion)
	require.NoError(t, err)
	return entities.GenerationRequest{
		ApplicationType: applicationType,
		Project:         project,
		Options:         options,
		FeatureNames:    featureNames,
	}
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(content)
}

func TestCreateGeneratorContext(t *testing.T) {
	t.Parallel()

	t.Run("should select the default features before the requested ones", func(t *testing.T) {
		t.Parallel()

		// given
		gen := newGenerator(t)
		request := newRequest(t, entities.ApplicationTypeDefault, entities.Options{}, features.CracName)

		// when
		genCtx, err := gen.CreateGeneratorContext(context.Background(), request)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"netty-server", "yaml", "crac"}, genCtx.Features.Names())

		dep, found := genCtx.DependencyByArtifactID(entities.CracArtifactID)
		require.True(t, found)
		assert.Equal(t, "io.micronaut.crac", dep.GroupID)
		assert.Equal(t, entities.ScopeRuntime, dep.Scope)
		for _, d := range genCtx.Dependencies() {
			assert.True(t, d.IsResolved(), d.ArtifactID)
		}
	})

	t.Run("should apply version pins", func(t *testing.T) {
		t.Parallel()

		// given
		gen := newGenerator(t)
		request := newRequest(t, entities.ApplicationTypeDefault, entities.Options{}, features.CracName)
		request.VersionPins = map[string]string{entities.CracArtifactID: "2.5.0-SNAPSHOT"}

		// when
		genCtx, err := gen.CreateGeneratorContext(context.Background(), request)

		// then
		require.NoError(t, err)
		assert.True(t, entities.NeedsSnapshotRepository(genCtx.Dependencies()))
	})

	t.Run("should reject an unknown feature", func(t *testing.T) {
		t.Parallel()

		// given
		gen := newGenerator(t)
		request := newRequest(t, entities.ApplicationTypeDefault, entities.Options{}, "does-not-exist")

		// when
		_, err := gen.CreateGeneratorContext(context.Background(), request)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "does-not-exist")
	})

	t.Run("should reject crac combined with graalvm", func(t *testing.T) {
		t.Parallel()

		// given
		gen := newGenerator(t)
		request := newRequest(t, entities.ApplicationTypeDefault, entities.Options{},
			features.CracName, features.GraalVMName)

		// when
		_, err := gen.CreateGeneratorContext(context.Background(), request)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "CRaC and GraalVM cannot be combined")
	})

	t.Run("should reject a feature the application type does not support", func(t *testing.T) {
		t.Parallel()

		// given
		gen := newGenerator(t)
		request := newRequest(t, entities.ApplicationTypeCLI, entities.Options{}, "management")

		// when
		_, err := gen.CreateGeneratorContext(context.Background(), request)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidArgument)
	})

	t.Run("should fail when the catalog cannot resolve a dependency", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewFeatureRegistry()
		reg.Register(features.NewCracFeature())
		cat := &doubles.StubDependencyCatalogRepository{
			GroupID: "io.micronaut",
			Version: "4.4.0",
			Unknown: []string{entities.CracArtifactID},
		}
		gen := generator.NewProjectGeneratorRepository(reg, features.Validators(), cat)
		request := newRequest(t, entities.ApplicationTypeDefault, entities.Options{}, features.CracName)

		// when
		_, err := gen.CreateGeneratorContext(context.Background(), request)

		// then
		require.ErrorIs(t, err, entities.ErrUnknownArtifact)
	})

	t.Run("should not run validators it was not given", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewFeatureRegistry()
		reg.Register(features.NewCracFeature())
		reg.Register(features.NewGraalVMFeature())
		cat := &doubles.StubDependencyCatalogRepository{GroupID: "io.micronaut", Version: "4.4.0"}
		gen := generator.NewProjectGeneratorRepository(reg, []repositories.FeatureValidator{}, cat)
		request := newRequest(t, entities.ApplicationTypeDefault, entities.Options{},
			features.CracName, features.GraalVMName)

		// when
		genCtx, err := gen.CreateGeneratorContext(context.Background(), request)

		// then
		require.NoError(t, err)
		assert.True(t, genCtx.HasFeature(features.GraalVMName))
	})
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("should render a gradle java web application", func(t *testing.T) {
		t.Parallel()

		// given
		gen := newGenerator(t)
		genCtx, err := gen.CreateGeneratorContext(context.Background(),
			newRequest(t, entities.ApplicationTypeDefault, entities.Options{}, features.CracName))
		require.NoError(t, err)
		dir := t.TempDir()

		// when
		files, err := gen.Generate(context.Background(), genCtx, dir, false)

		// then
		require.NoError(t, err)
		assert.Contains(t, files, "build.gradle")
		assert.Contains(t, files, "settings.gradle")
		assert.Contains(t, files, ".gitignore")
		assert.Contains(t, files, "src/main/java/com/example/Application.java")
		assert.Contains(t, files, "src/main/java/com/example/HelloController.java")
		assert.Contains(t, files, "src/main/java/com/example/AppConfig.java")
		assert.Contains(t, files, "src/test/java/com/example/DemoTest.java")
		assert.NotContains(t, files, "pom.xml")

		build := readFile(t, dir, "build.gradle")
		assert.Contains(t, strings.Split(build, "\n"), "repositories {")
		assert.Contains(t, build, `runtimeOnly("io.micronaut.crac:micronaut-crac:2.4.0")`)
		assert.Contains(t, build, `annotationProcessor("io.micronaut:micronaut-inject-java:`)
		assert.Contains(t, build, `mainClass = "com.example.Application"`)
		assert.Contains(t, build, `runtime("netty")`)

		config := readFile(t, dir, "src/main/resources/application.yml")
		assert.Equal(t, "hello.suffix: world\nmicronaut.application.name: demo\n", config)

		controller := readFile(t, dir, "src/main/java/com/example/HelloController.java")
		assert.Contains(t, controller, "package com.example;")
		assert.Contains(t, controller, `@Get("/hello{/name}")`)

		readme := readFile(t, dir, "README.md")
		assert.Contains(t, readme, "## Demo")
		assert.Contains(t, readme, "- CRaC support (`crac`)")
		assert.Contains(t, readme, "## CRaC")
	})

	t.Run("should render a maven pom with the repositories anchor", func(t *testing.T) {
		t.Parallel()

		// given
		gen := newGenerator(t)
		genCtx, err := gen.CreateGeneratorContext(context.Background(),
			newRequest(t, entities.ApplicationTypeDefault, entities.Options{BuildTool: entities.BuildToolMaven}))
		require.NoError(t, err)
		dir := t.TempDir()

		// when
		files, err := gen.Generate(context.Background(), genCtx, dir, false)

		// then
		require.NoError(t, err)
		assert.Contains(t, files, "pom.xml")
		assert.NotContains(t, files, "build.gradle")

		pom := readFile(t, dir, "pom.xml")
		assert.Contains(t, strings.Split(pom, "\n"), "  <repositories>")
		assert.Contains(t, pom, "<artifactId>logback-classic</artifactId>")
		assert.Contains(t, pom, "<scope>runtime</scope>")
		assert.Contains(t, pom, "<path>\n              <groupId>io.micronaut</groupId>\n              <artifactId>micronaut-inject-java</artifactId>")
		assert.NotContains(t, readFile(t, dir, "README.md"), "## CRaC")
	})

	t.Run("should render kotlin sources with kotest", func(t *testing.T) {
		t.Parallel()

		// given
		gen := newGenerator(t)
		genCtx, err := gen.CreateGeneratorContext(context.Background(), newRequest(t, entities.ApplicationTypeDefault,
			entities.Options{Language: entities.LanguageKotlin, TestFramework: entities.TestFrameworkKotest}))
		require.NoError(t, err)
		dir := t.TempDir()

		// when
		files, err := gen.Generate(context.Background(), genCtx, dir, false)

		// then
		require.NoError(t, err)
		assert.Contains(t, files, "src/main/kotlin/com/example/Application.kt")
		assert.Contains(t, files, "src/test/kotlin/com/example/DemoTest.kt")
		assert.Contains(t, readFile(t, dir, "src/test/kotlin/com/example/DemoTest.kt"), "StringSpec")
		build := readFile(t, dir, "build.gradle")
		assert.Contains(t, build, `mainClass = "com.example.ApplicationKt"`)
		assert.Contains(t, build, `kapt("io.micronaut:micronaut-inject-java:`)
		assert.Contains(t, build, `testRuntime("kotest5")`)
	})

	t.Run("should render groovy sources with spock", func(t *testing.T) {
		t.Parallel()

		// given
		gen := newGenerator(t)
		genCtx, err := gen.CreateGeneratorContext(context.Background(), newRequest(t, entities.ApplicationTypeDefault,
			entities.Options{Language: entities.LanguageGroovy}))
		require.NoError(t, err)
		dir := t.TempDir()

		// when
		files, err := gen.Generate(context.Background(), genCtx, dir, false)

		// then
		require.NoError(t, err)
		assert.Contains(t, files, "src/main/groovy/com/example/Application.groovy")
		assert.Contains(t, files, "src/test/groovy/com/example/DemoSpec.groovy")
		assert.Contains(t, readFile(t, dir, "build.gradle"), `id("groovy")`)
	})

	t.Run("should skip the example controller outside web applications", func(t *testing.T) {
		t.Parallel()

		// given
		gen := newGenerator(t)
		genCtx, err := gen.CreateGeneratorContext(context.Background(),
			newRequest(t, entities.ApplicationTypeCLI, entities.Options{}))
		require.NoError(t, err)
		dir := t.TempDir()

		// when
		files, err := gen.Generate(context.Background(), genCtx, dir, false)

		// then
		require.NoError(t, err)
		assert.NotContains(t, files, "src/main/java/com/example/HelloController.java")
		assert.Contains(t, readFile(t, dir, "build.gradle"), `runtime("none")`)
		assert.Equal(t, "micronaut.application.name: demo\n", readFile(t, dir, "src/main/resources/application.yml"))
	})

	t.Run("should refuse a non-empty directory unless forced", func(t *testing.T) {
		t.Parallel()

		// given
		gen := newGenerator(t)
		genCtx, err := gen.CreateGeneratorContext(context.Background(),
			newRequest(t, entities.ApplicationTypeDefault, entities.Options{}))
		require.NoError(t, err)
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("keep"), 0o600))

		// when
		_, refuseErr := gen.Generate(context.Background(), genCtx, dir, false)
		files, forceErr := gen.Generate(context.Background(), genCtx, dir, true)

		// then
		require.ErrorIs(t, refuseErr, entities.ErrInvalidArgument)
		require.NoError(t, forceErr)
		assert.NotEmpty(t, files)
		assert.Equal(t, "keep", readFile(t, dir, "existing.txt"))
	})

	t.Run("should create a missing output directory", func(t *testing.T) {
		t.Parallel()

		// given
		gen := newGenerator(t)
		genCtx, err := gen.CreateGeneratorContext(context.Background(),
			newRequest(t, entities.ApplicationTypeDefault, entities.Options{}))
		require.NoError(t, err)
		dir := filepath.Join(t.TempDir(), "nested", "demo")

		// when
		_, err = gen.Generate(context.Background(), genCtx, dir, false)

		// then
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "build.gradle"))
	})
}
