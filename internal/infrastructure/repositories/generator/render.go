package generator

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
	"github.com/rios0rios0/cracgen/internal/infrastructure/repositories/features"
)

//go:embed all:templates
var templatesFS embed.FS

// templateFile maps one embedded template onto a generated file. The target
// is itself a template rendered with the same model.
type templateFile struct {
	source string
	target string
	when   func(*templateModel) bool
}

var templateFiles = []templateFile{
	{source: "common/README.md.tmpl", target: "README.md"},
	{source: "common/gitignore.tmpl", target: ".gitignore"},
	{source: "common/application.yml.tmpl", target: "src/main/resources/application.yml"},
	{source: "common/logback.xml.tmpl", target: "src/main/resources/logback.xml"},

	{source: "gradle/build.gradle.tmpl", target: "build.gradle", when: (*templateModel).IsGradle},
	{source: "gradle/settings.gradle.tmpl", target: "settings.gradle", when: (*templateModel).IsGradle},
	{source: "gradle/gradle.properties.tmpl", target: "gradle.properties", when: (*templateModel).IsGradle},
	{source: "maven/pom.xml.tmpl", target: "pom.xml", when: (*templateModel).IsMaven},

	{
		source: "{{.Options.Language}}/Application.{{.Extension}}.tmpl",
		target: "src/main/{{.Options.Language}}/{{.Project.PackagePath}}/Application.{{.Extension}}",
	},
	{
		source: "{{.Options.Language}}/HelloController.{{.Extension}}.tmpl",
		target: "src/main/{{.Options.Language}}/{{.Project.PackagePath}}/HelloController.{{.Extension}}",
		when:   (*templateModel).IsWebApp,
	},
	{
		source: "{{.Options.Language}}/AppConfig.{{.Extension}}.tmpl",
		target: "src/main/{{.Options.Language}}/{{.Project.PackagePath}}/AppConfig.{{.Extension}}",
		when:   (*templateModel).IsWebApp,
	},
	{
		source: "{{.Options.Language}}/ApplicationTest.{{.Extension}}.tmpl",
		target: "src/test/{{.Options.Language}}/{{.Project.PackagePath}}/{{.Project.ClassName}}Test.{{.Extension}}",
		when:   (*templateModel).IsJUnit,
	},
	{
		source: "groovy/ApplicationSpec.groovy.tmpl",
		target: "src/test/groovy/{{.Project.PackagePath}}/{{.Project.ClassName}}Spec.groovy",
		when:   (*templateModel).IsSpock,
	},
	{
		source: "kotlin/ApplicationSpec.kt.tmpl",
		target: "src/test/kotlin/{{.Project.PackagePath}}/{{.Project.ClassName}}Test.kt",
		when:   (*templateModel).IsKotest,
	},
}

// templateModel is the data every template is executed with.
type templateModel struct {
	ApplicationType entities.ApplicationType
	Project         entities.Project
	Options         entities.Options
	PlatformVersion string
	Dependencies    []entities.Dependency
	Configuration   []entities.ConfigurationEntry
	Features        []*entities.Feature

	hasCrac bool
}

func newTemplateModel(genCtx *entities.GeneratorContext, platformVersion string) *templateModel {
	visible := make([]*entities.Feature, 0, genCtx.Features.Len())
	for _, f := range genCtx.Features.All() {
		if f.Visible {
			visible = append(visible, f)
		}
	}
	return &templateModel{
		ApplicationType: genCtx.ApplicationType,
		Project:         genCtx.Project,
		Options:         genCtx.Options,
		PlatformVersion: platformVersion,
		Dependencies:    genCtx.Dependencies(),
		Configuration:   genCtx.Configuration(),
		Features:        visible,
		hasCrac:         genCtx.HasFeature(features.CracName),
	}
}

func (m *templateModel) IsGradle() bool { return m.Options.BuildTool.IsGradle() }
func (m *templateModel) IsMaven() bool  { return !m.Options.BuildTool.IsGradle() }
func (m *templateModel) IsWebApp() bool { return m.ApplicationType == entities.ApplicationTypeDefault }
func (m *templateModel) IsJUnit() bool  { return m.Options.TestFramework == entities.TestFrameworkJUnit }
func (m *templateModel) IsSpock() bool  { return m.Options.TestFramework == entities.TestFrameworkSpock }
func (m *templateModel) IsKotest() bool { return m.Options.TestFramework == entities.TestFrameworkKotest }
func (m *templateModel) HasCrac() bool  { return m.hasCrac }

func (m *templateModel) Extension() string { return m.Options.Language.Extension() }

// UsesGroovy reports whether the Gradle build needs the groovy plugin.
func (m *templateModel) UsesGroovy() bool {
	return m.Options.Language == entities.LanguageGroovy || m.IsSpock()
}

func (m *templateModel) MainClass() string {
	if m.Options.Language == entities.LanguageKotlin {
		return m.Project.PackageName + ".ApplicationKt"
	}
	return m.Project.PackageName + ".Application"
}

// Runtime is the Micronaut runtime the build plugins package for.
func (m *templateModel) Runtime() string {
	if m.IsWebApp() {
		return "netty"
	}
	return "none"
}

func (m *templateModel) TestRuntime() string {
	switch m.Options.TestFramework {
	case entities.TestFrameworkSpock:
		return "spock2"
	case entities.TestFrameworkKotest:
		return "kotest5"
	default:
		return "junit5"
	}
}

// MavenDependencies are the dependencies declared in the POM dependencies
// section. Annotation processors go on the compiler plugin instead.
func (m *templateModel) MavenDependencies() []entities.Dependency {
	result := make([]entities.Dependency, 0, len(m.Dependencies))
	for _, dep := range m.Dependencies {
		if dep.Scope != entities.ScopeAnnotationProcessor {
			result = append(result, dep)
		}
	}
	return result
}

func (m *templateModel) AnnotationProcessors() []entities.Dependency {
	var result []entities.Dependency
	for _, dep := range m.Dependencies {
		if dep.Scope == entities.ScopeAnnotationProcessor {
			result = append(result, dep)
		}
	}
	return result
}

func (r *ProjectGeneratorRepository) Generate(
	ctx context.Context,
	genCtx *entities.GeneratorContext,
	outputDir string,
	force bool,
) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	if !force {
		entries, err := os.ReadDir(outputDir)
		if err != nil {
			return nil, fmt.Errorf("reading output directory: %w", err)
		}
		if len(entries) > 0 {
			return nil, fmt.Errorf(
				"%w: output directory %s is not empty; remove existing files first or use --force",
				entities.ErrInvalidArgument, outputDir,
			)
		}
	}

	model := newTemplateModel(genCtx, r.catalog.PlatformVersion())
	files := make([]string, 0, len(templateFiles))
	for _, file := range templateFiles {
		if err := ctx.Err(); err != nil {
			return files, err
		}
		if file.when != nil && !file.when(model) {
			continue
		}

		target, err := r.renderFile(file, model, outputDir)
		if err != nil {
			return files, err
		}
		logger.Debugf("[generator] Rendered %s", target)
		files = append(files, target)
	}
	return files, nil
}

// renderFile writes one template and returns the slash separated path of the
// generated file relative to outputDir.
func (r *ProjectGeneratorRepository) renderFile(file templateFile, model *templateModel, outputDir string) (string, error) {
	source, err := executeString(file.source, model)
	if err != nil {
		return "", err
	}
	target, err := executeString(file.target, model)
	if err != nil {
		return "", err
	}

	content, err := templatesFS.ReadFile(path.Join("templates", source))
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", source, err)
	}
	tmpl, err := template.New(path.Base(source)).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", source, err)
	}

	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, model); err != nil {
		return "", fmt.Errorf("executing template %s: %w", source, err)
	}
	rendered := strings.TrimLeft(buf.String(), "\n")
	if !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}

	outPath := filepath.Join(outputDir, filepath.FromSlash(target))
	if err = os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", target, err)
	}
	if err = os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", target, err)
	}
	return target, nil
}

func executeString(text string, model *templateModel) (string, error) {
	tmpl, err := template.New("path").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing path template %q: %w", text, err)
	}
	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, model); err != nil {
		return "", fmt.Errorf("executing path template %q: %w", text, err)
	}
	return buf.String(), nil
}
