package api

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidateList_Valid(t *testing.T) {
	raw := json.RawMessage(`[{"id":"c1","name":"Go"},{"id":"c2","name":"SQL","category":"Data"}]`)
	if err := validateList("competencies", "/competencies", raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateList_Empty(t *testing.T) {
	if err := validateList("questions", "/questions", json.RawMessage(`[]`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateList_Invalid(t *testing.T) {
	tests := []struct {
		name string
		coll string
		raw  string
	}{
		{"missing id", "competencies", `[{"name":"Go"}]`},
		{"numeric id", "employees", `[{"id":7,"name":"Ann"}]`},
		{"unknown kind", "questions", `[{"id":"q1","competency_id":"c1","text":"?","kind":"poll"}]`},
		{"bad review status", "reviews", `[{"id":"r1","employee_id":"e1","status":"lost"}]`},
		{"date not string", "paths", `[{"id":"p1","title":"Lead","start_date":20240101}]`},
		{"not an array", "jobs", `{"id":"j1"}`},
		{"not json", "jobs", `[{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateList(tt.coll, "/"+tt.coll, json.RawMessage(tt.raw))
			var invErr *InvalidResponseError
			if !errors.As(err, &invErr) {
				t.Fatalf("expected InvalidResponseError, got: %v", err)
			}
			if invErr.Endpoint != "/"+tt.coll {
				t.Errorf("endpoint = %q", invErr.Endpoint)
			}
		})
	}
}

func TestValidateList_NullDatesAllowed(t *testing.T) {
	raw := json.RawMessage(`[{"id":"i1","path_id":"p1","title":"Course","start_date":null,"end_date":"2024-03-01"}]`)
	if err := validateList("interventions", "/interventions", raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateList_UnknownCollection(t *testing.T) {
	if err := validateList("widgets", "/widgets", json.RawMessage(`{"anything":1}`)); err != nil {
		t.Fatalf("expected no validation for unknown collection, got: %v", err)
	}
}

func TestCompiledSchemaIsCached(t *testing.T) {
	a, err := compiledSchema("jobs", listSchemas["jobs"])
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	b, err := compiledSchema("jobs", listSchemas["jobs"])
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if a != b {
		t.Error("expected cached schema to be reused")
	}
}
