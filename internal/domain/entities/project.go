package entities

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	packageAndNamePattern = regexp.MustCompile(`^[\w\-.]+$`)
	packageSegmentPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	projectNamePattern    = regexp.MustCompile(`^[A-Za-z][\w\-]*$`)

	titleCaser = cases.Title(language.English, cases.NoLower)
)

// Project is the identity of a generated application.
type Project struct {
	PackageName  string // e.g. "com.example"
	Name         string // e.g. "hello-world"
	ClassName    string // e.g. "HelloWorld"
	PropertyName string // e.g. "helloWorld"
	NaturalName  string // e.g. "Hello World"
}

// PackagePath returns the package as a slash separated directory path.
func (p Project) PackagePath() string {
	return strings.ReplaceAll(p.PackageName, ".", "/")
}

// ParseProject splits a combined "package.name" identifier. A bare name is
// used as its own package.
func ParseProject(packageAndName string) (Project, error) {
	if !packageAndNamePattern.MatchString(packageAndName) {
		return Project{}, fmt.Errorf("%q must match the pattern [\\w\\-.]+", packageAndName)
	}
	if strings.HasPrefix(packageAndName, ".") || strings.HasSuffix(packageAndName, ".") ||
		strings.Contains(packageAndName, "..") {
		return Project{}, fmt.Errorf("%q contains an empty package segment", packageAndName)
	}

	var pkg, name string
	if idx := strings.LastIndex(packageAndName, "."); idx >= 0 {
		pkg = packageAndName[:idx]
		name = packageAndName[idx+1:]
	} else {
		name = packageAndName
		pkg = packageFromName(name)
	}

	if !projectNamePattern.MatchString(name) {
		return Project{}, fmt.Errorf("application name %q must start with a letter", name)
	}
	for _, segment := range strings.Split(pkg, ".") {
		if !packageSegmentPattern.MatchString(segment) {
			return Project{}, fmt.Errorf("invalid package segment %q", segment)
		}
	}

	words := splitWords(name)
	className := strings.Join(words, "")
	return Project{
		PackageName:  pkg,
		Name:         name,
		ClassName:    className,
		PropertyName: lowerFirst(className),
		NaturalName:  strings.Join(words, " "),
	}, nil
}

// NewBadProjectNameError wraps a ParseProject failure for the caller.
func NewBadProjectNameError(err error) *BadRequestError {
	return &BadRequestError{Message: "Invalid project name", Err: err}
}

// IsBadRequest reports whether err carries a BadRequestError.
func IsBadRequest(err error) bool {
	var target *BadRequestError
	return errors.As(err, &target)
}

func packageFromName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func splitWords(name string) []string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		words = append(words, titleCaser.String(field))
	}
	return words
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
