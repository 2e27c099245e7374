package entities

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed schema/settings.schema.json
var settingsSchemaBytes []byte

var (
	compiledSettingsSchema *jsonschema.Schema
	compileSchemaOnce      sync.Once
	compileSchemaErr       error
	printer                = message.NewPrinter(language.English)
)

// SchemaValidationResult contains the outcome of a schema validation.
type SchemaValidationResult struct {
	Valid  bool
	Issues []SchemaValidationIssue
}

// SchemaValidationIssue is a single leaf error reported by the validator.
type SchemaValidationIssue struct {
	Path    string // e.g. "/defaults/build_tool"
	Message string
	Keyword string
}

func (r *SchemaValidationResult) String() string {
	msgs := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		if issue.Path != "" {
			msgs = append(msgs, issue.Path+": "+issue.Message)
			continue
		}
		msgs = append(msgs, issue.Message)
	}
	return strings.Join(msgs, "; ")
}

// settingsSchema compiles the embedded JSON schema once and returns it.
func settingsSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(settingsSchemaBytes))
		if err != nil {
			compileSchemaErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("settings.schema.json", doc); err != nil {
			compileSchemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSettingsSchema, compileSchemaErr = c.Compile("settings.schema.json")
		if compileSchemaErr != nil {
			compileSchemaErr = fmt.Errorf("compiling schema: %w", compileSchemaErr)
		}
	})
	return compiledSettingsSchema, compileSchemaErr
}

// ValidateSettingsDocument validates raw YAML bytes against the settings
// schema. The error return is for parse or schema compilation failures;
// schema violations are reported in the result.
func ValidateSettingsDocument(data []byte) (*SchemaValidationResult, error) {
	schema, err := settingsSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &SchemaValidationResult{Valid: true}, nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &SchemaValidationResult{
		Valid:  false,
		Issues: schemaIssues(validationErr),
	}, nil
}

// schemaIssues walks the error tree and returns the leaf errors.
func schemaIssues(ve *jsonschema.ValidationError) []SchemaValidationIssue {
	var issues []SchemaValidationIssue
	collectSchemaIssues(ve, &issues)
	if len(issues) == 0 {
		return []SchemaValidationIssue{{Message: ve.Error()}}
	}
	return issues
}

func collectSchemaIssues(ve *jsonschema.ValidationError, issues *[]SchemaValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectSchemaIssues(cause, issues)
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	keyword := ""
	msg := ""
	if ve.ErrorKind != nil {
		if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
			keyword = kwPath[len(kwPath)-1]
		}
		msg = ve.ErrorKind.LocalizedString(printer)
	}
	if keyword == "" || keyword == "$ref" || keyword == "allOf" {
		return
	}

	*issues = append(*issues, SchemaValidationIssue{
		Path:    path,
		Message: msg,
		Keyword: keyword,
	})
}
