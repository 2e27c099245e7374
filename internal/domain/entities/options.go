package entities

import (
	"fmt"
	"strings"
)

// Language is the source language of the generated project.
type Language string

const (
	LanguageJava   Language = "java"
	LanguageKotlin Language = "kotlin"
	LanguageGroovy Language = "groovy"
)

// Extension returns the source file extension for the language.
func (l Language) Extension() string {
	switch l {
	case LanguageKotlin:
		return "kt"
	case LanguageGroovy:
		return "groovy"
	default:
		return "java"
	}
}

// SourceDir returns the directory name under src/main and src/test.
func (l Language) SourceDir() string { return string(l) }

// TestFramework is the framework the generated tests are written for.
type TestFramework string

const (
	TestFrameworkJUnit  TestFramework = "junit"
	TestFrameworkSpock  TestFramework = "spock"
	TestFrameworkKotest TestFramework = "kotest"
)

// JdkVersion is the Java release targeted by the generated build.
type JdkVersion int

const (
	JdkVersion17 JdkVersion = 17
	JdkVersion21 JdkVersion = 21
)

// Options bundles the generation knobs that are not features.
type Options struct {
	Language      Language
	TestFramework TestFramework
	BuildTool     BuildTool
	JavaVersion   JdkVersion
}

// NewOptions fills in the defaults for any option left empty and rejects
// combinations the templates cannot render.
func NewOptions(
	language Language,
	testFramework TestFramework,
	buildTool BuildTool,
	javaVersion JdkVersion,
) (Options, error) {
	opts := Options{
		Language:      language,
		TestFramework: testFramework,
		BuildTool:     buildTool.OrDefault(),
		JavaVersion:   javaVersion,
	}
	if opts.Language == "" {
		opts.Language = LanguageJava
	}
	if opts.JavaVersion == 0 {
		opts.JavaVersion = JdkVersion17
	}
	if opts.TestFramework == "" {
		opts.TestFramework = defaultTestFramework(opts.Language)
	}
	if opts.TestFramework == TestFrameworkKotest && opts.Language != LanguageKotlin {
		return Options{}, fmt.Errorf("%w: kotest requires the kotlin language", ErrInvalidArgument)
	}
	return opts, nil
}

func defaultTestFramework(language Language) TestFramework {
	if language == LanguageGroovy {
		return TestFrameworkSpock
	}
	return TestFrameworkJUnit
}

// ParseLanguage converts a user supplied language name. Empty stays empty.
func ParseLanguage(name string) (Language, error) {
	switch l := Language(strings.ToLower(strings.TrimSpace(name))); l {
	case "", LanguageJava, LanguageKotlin, LanguageGroovy:
		return l, nil
	default:
		return "", fmt.Errorf("%w: unsupported language %q", ErrInvalidArgument, name)
	}
}

// ParseTestFramework converts a user supplied test framework name. Empty stays empty.
func ParseTestFramework(name string) (TestFramework, error) {
	switch f := TestFramework(strings.ToLower(strings.TrimSpace(name))); f {
	case "", TestFrameworkJUnit, TestFrameworkSpock, TestFrameworkKotest:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unsupported test framework %q", ErrInvalidArgument, name)
	}
}

// ParseJdkVersion converts a Java release number. Zero stays zero.
func ParseJdkVersion(version int) (JdkVersion, error) {
	switch v := JdkVersion(version); v {
	case 0, JdkVersion17, JdkVersion21:
		return v, nil
	default:
		return 0, fmt.Errorf("%w: unsupported JDK version %d (expected 17 or 21)", ErrInvalidArgument, version)
	}
}
