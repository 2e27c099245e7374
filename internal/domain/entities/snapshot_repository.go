package entities

import (
	"fmt"
	"strings"
)

const (
	// CracArtifactID is the runtime artifact added by the crac feature.
	CracArtifactID = "micronaut-crac"

	// SnapshotRepositoryURL hosts pre-release builds of Micronaut modules.
	SnapshotRepositoryURL = "https://s01.oss.sonatype.org/content/repositories/snapshots"

	// GradleSnapshotRepository is the line inserted into build.gradle.
	GradleSnapshotRepository = "    maven { url = '" + SnapshotRepositoryURL + "' }"

	// MavenSonatypeID marks a pom.xml that already declares the repository.
	MavenSonatypeID = "      <id>sonatype</id>"

	gradleRepositoriesAnchor = "repositories {"
	mavenRepositoriesAnchor  = "  <repositories>"
	snapshotSuffix           = "-SNAPSHOT"
)

// mavenSnapshotRepository is inserted after the <repositories> anchor.
var mavenSnapshotRepository = []string{ //nolint:gochecknoglobals // fixed template block
	"    <repository>",
	MavenSonatypeID,
	"      <url>" + SnapshotRepositoryURL + "</url>",
	"    </repository>",
}

// IsSnapshotVersion reports whether the version is a pre-release build.
func IsSnapshotVersion(version string) bool {
	return strings.HasSuffix(version, snapshotSuffix)
}

// NeedsSnapshotRepository reports whether the resolved dependencies contain a
// snapshot build of micronaut-crac, which is only published to the snapshot
// repository.
func NeedsSnapshotRepository(deps []Dependency) bool {
	dep, ok := FindDependency(deps, CracArtifactID)
	return ok && IsSnapshotVersion(dep.Version)
}

// AddSnapshotRepository declares the snapshot repository in a build
// descriptor of the given dialect. It returns the new content and whether
// anything changed. Content that already declares the repository is returned
// as-is. Lines are compared exactly, ignoring a trailing carriage return.
func AddSnapshotRepository(content string, buildTool BuildTool) (string, bool, error) {
	marker, anchor, block := GradleSnapshotRepository, gradleRepositoriesAnchor, []string{GradleSnapshotRepository}
	if !buildTool.IsGradle() {
		marker, anchor, block = MavenSonatypeID, mavenRepositoriesAnchor, mavenSnapshotRepository
	}

	lines := strings.Split(content, "\n")
	if indexOfLine(lines, marker) >= 0 {
		return content, false, nil
	}

	anchorIdx := indexOfLine(lines, anchor)
	if anchorIdx < 0 {
		return "", false, fmt.Errorf("%w: %q in %s", ErrAnchorNotFound, anchor, buildTool.BuildFileName())
	}

	if strings.HasSuffix(lines[anchorIdx], "\r") {
		withCR := make([]string, 0, len(block))
		for _, line := range block {
			withCR = append(withCR, line+"\r")
		}
		block = withCR
	}

	lines = insertLines(lines, anchorIdx+1, block)
	return strings.Join(lines, "\n"), true, nil
}

// indexOfLine returns the index of the first line equal to want, or -1.
func indexOfLine(lines []string, want string) int {
	for i, line := range lines {
		if strings.TrimSuffix(line, "\r") == want {
			return i
		}
	}
	return -1
}

// insertLines inserts extra lines into slice at the given index.
func insertLines(lines []string, at int, extra []string) []string {
	result := make([]string, 0, len(lines)+len(extra))
	result = append(result, lines[:at]...)
	result = append(result, extra...)
	result = append(result, lines[at:]...)
	return result
}
