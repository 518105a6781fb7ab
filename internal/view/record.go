package view

import "fmt"

// Record is an untyped row, as decoded from a JSON object. Its ID is the
// "id" field rendered as text.
type Record map[string]any

func (r Record) EntityID() string {
	switch id := r["id"].(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return fmt.Sprintf("%g", id)
	default:
		return fmt.Sprint(id)
	}
}

func (r Record) Field(name string) (any, bool) {
	v, ok := r[name]
	return v, ok
}
