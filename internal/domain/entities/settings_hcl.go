package entities

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// decodeHCLSettings parses the HCL flavour of the settings file:
//
//	defaults {
//	  build_tool = "maven"
//	  features   = ["crac"]
//	}
//	versions = {
//	  "micronaut-crac" = "2.5.0-SNAPSHOT"
//	}
//
// Expressions may reference environment variables as env.NAME.
func decodeHCLSettings(data []byte, path string) (*Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL config file %s: %w", path, diags)
	}

	var settings Settings
	diags = gohcl.DecodeBody(file.Body, hclEvalContext(), &settings)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL config file %s: %w", path, diags)
	}
	return &settings, nil
}

// hclEvalContext exposes the process environment as the "env" object.
func hclEvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}
