package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache caches compiled list schemas by collection name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

var (
	str         = map[string]any{"type": "string"}
	nullableStr = map[string]any{"type": []any{"string", "null"}}
)

// listSchemas describe the items of each list endpoint. Only the fields the
// client depends on are constrained.
var listSchemas = map[string]map[string]any{
	"competencies": itemSchema(map[string]any{"name": str}, "name"),
	"questions": itemSchema(map[string]any{
		"competency_id": str,
		"text":          str,
		"kind":          map[string]any{"enum": []any{"multiple_choice", "true_false", "essay"}},
	}, "competency_id", "text", "kind"),
	"assessments": itemSchema(map[string]any{"employee_id": str, "status": str}, "employee_id"),
	"assessors":   itemSchema(map[string]any{"name": str, "competency_ids": map[string]any{"type": []any{"array", "null"}}}, "name"),
	"employees":   itemSchema(map[string]any{"name": str}, "name"),
	"jobs":        itemSchema(map[string]any{"title": str}, "title"),
	"reviews": itemSchema(map[string]any{
		"employee_id": str,
		"status":      map[string]any{"enum": []any{"requested", "in_progress", "completed"}},
	}, "employee_id", "status"),
	"paths": itemSchema(map[string]any{
		"title":      str,
		"start_date": nullableStr,
		"end_date":   nullableStr,
	}, "title"),
	"interventions": itemSchema(map[string]any{
		"path_id":    str,
		"title":      str,
		"start_date": nullableStr,
		"end_date":   nullableStr,
	}, "title"),
}

func itemSchema(props map[string]any, required ...string) map[string]any {
	all := map[string]any{"id": str}
	for k, v := range props {
		all[k] = v
	}
	req := []any{"id"}
	for _, r := range required {
		req = append(req, r)
	}
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":       "object",
			"properties": all,
			"required":   req,
		},
	}
}

// validateList checks a list payload against the named collection schema.
// Unknown names are not validated.
func validateList(name, endpoint string, raw json.RawMessage) error {
	def, ok := listSchemas[name]
	if !ok {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &InvalidResponseError{Endpoint: endpoint, Body: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSchema(name, def)
	if err != nil {
		return &InvalidResponseError{Endpoint: endpoint, Body: raw, Err: fmt.Errorf("compile schema %q: %w", name, err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &InvalidResponseError{Endpoint: endpoint, Body: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a plain decoded JSON value.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
