package entities

import (
	"fmt"
	"strings"
)

// BuildTool selects the build descriptor dialect of a generated project.
type BuildTool string

const (
	BuildToolGradle BuildTool = "gradle"
	BuildToolMaven  BuildTool = "maven"

	gradleBuildFile = "build.gradle"
	mavenBuildFile  = "pom.xml"
)

// ParseBuildTool converts a user supplied name into a BuildTool. An empty
// string yields an empty BuildTool, which callers treat as "use the default".
func ParseBuildTool(name string) (BuildTool, error) {
	switch BuildTool(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return "", nil
	case BuildToolGradle:
		return BuildToolGradle, nil
	case BuildToolMaven:
		return BuildToolMaven, nil
	default:
		return "", fmt.Errorf("%w: unsupported build tool %q (expected gradle or maven)", ErrInvalidArgument, name)
	}
}

// OrDefault returns Gradle when the build tool was not chosen.
func (b BuildTool) OrDefault() BuildTool {
	if b == "" {
		return BuildToolGradle
	}
	return b
}

// IsGradle reports whether the build tool belongs to the Gradle family.
// The zero value counts as Gradle.
func (b BuildTool) IsGradle() bool {
	return b.OrDefault() == BuildToolGradle
}

// BuildFileName returns the build descriptor file name at the project root.
func (b BuildTool) BuildFileName() string {
	if b.IsGradle() {
		return gradleBuildFile
	}
	return mavenBuildFile
}

func (b BuildTool) String() string { return string(b.OrDefault()) }
