package entities

// Scope is where a dependency is visible in the generated build.
type Scope string

const (
	ScopeCompile             Scope = "compile"
	ScopeRuntime             Scope = "runtime"
	ScopeCompileOnly         Scope = "compileOnly"
	ScopeAnnotationProcessor Scope = "annotationProcessor"
	ScopeTest                Scope = "test"
)

// Dependency is an artifact added to the generated build. Features add
// dependencies by artifact id only; the group id and version are filled in by
// the dependency catalog.
type Dependency struct {
	GroupID    string
	ArtifactID string
	Version    string
	Scope      Scope
}

// LookupDependency creates a dependency whose coordinates are resolved later.
func LookupDependency(artifactID string, scope Scope) Dependency {
	return Dependency{ArtifactID: artifactID, Scope: scope}
}

// IsResolved reports whether group id and version are known.
func (d Dependency) IsResolved() bool {
	return d.GroupID != "" && d.Version != ""
}

// Coordinates returns "group:artifact:version".
func (d Dependency) Coordinates() string {
	return d.GroupID + ":" + d.ArtifactID + ":" + d.Version
}

// GradleConfiguration returns the Gradle configuration the dependency goes in.
func (d Dependency) GradleConfiguration(lang Language) string {
	switch d.Scope {
	case ScopeRuntime:
		return "runtimeOnly"
	case ScopeCompileOnly:
		return "compileOnly"
	case ScopeAnnotationProcessor:
		switch lang {
		case LanguageKotlin:
			return "kapt"
		case LanguageGroovy:
			return "compileOnly"
		default:
			return "annotationProcessor"
		}
	case ScopeTest:
		return "testImplementation"
	default:
		return "implementation"
	}
}

// MavenScope returns the Maven scope element value, empty for compile scope.
func (d Dependency) MavenScope() string {
	switch d.Scope {
	case ScopeRuntime:
		return "runtime"
	case ScopeCompileOnly, ScopeAnnotationProcessor:
		return "provided"
	case ScopeTest:
		return "test"
	default:
		return ""
	}
}

func (d Dependency) key() string {
	return d.ArtifactID + "@" + string(d.Scope)
}
