// Package view derives the visible rows of a fetched collection: free-text
// search, exact-match filters and an optional stable sort.
//
// Derivation is pure. Inputs are never modified and every call returns a
// fresh slice, so callers may memoise on (snapshot version, predicates).
package view

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Entity is a row that exposes its fields by name. Field reports ok=false
// for names the entity type does not have.
type Entity interface {
	EntityID() string
	Field(name string) (any, bool)
}

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Config is the per-view configuration: which fields free-text search looks
// at, and an optional sort.
type Config struct {
	SearchableFields []string
	SortKey          string
	SortDirection    Direction
}

// Predicates is the active search text and exact-match filters. A filter
// whose value is nil or "" imposes no constraint.
type Predicates struct {
	SearchText      string
	EqualityFilters map[string]any
}

// IsEmpty reports whether p constrains nothing.
func (p Predicates) IsEmpty() bool {
	if strings.TrimSpace(p.SearchText) != "" {
		return false
	}
	for _, v := range p.EqualityFilters {
		if active(v) {
			return false
		}
	}
	return true
}

// Derive returns the items matching p, in source order unless cfg names a
// sort key. Search is applied before equality filters.
func Derive[T Entity](items []T, p Predicates, cfg Config) []T {
	out := make([]T, 0, len(items))

	// A Caser is stateful; one per call keeps Derive safe for concurrent use.
	folder := cases.Fold()
	needle := strings.TrimSpace(p.SearchText)
	if needle != "" {
		needle = folder.String(needle)
	}
	filters := knownFilters(items, p.EqualityFilters)

	for _, it := range items {
		if needle != "" && !matchesSearch(it, cfg.SearchableFields, needle, folder) {
			continue
		}
		if !matchesFilters(it, filters) {
			continue
		}
		out = append(out, it)
	}

	if cfg.SortKey != "" {
		sortStable(out, cfg.SortKey, cfg.SortDirection)
	}
	return out
}

type filter struct {
	field string
	value any
}

// knownFilters drops inactive filters and filters on fields no item has.
// Field names are visited in sorted order so filtering is deterministic.
func knownFilters[T Entity](items []T, eq map[string]any) []filter {
	if len(eq) == 0 {
		return nil
	}
	names := make([]string, 0, len(eq))
	for name, v := range eq {
		if active(v) {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	var out []filter
	for _, name := range names {
		for _, it := range items {
			if _, ok := it.Field(name); ok {
				out = append(out, filter{field: name, value: eq[name]})
				break
			}
		}
	}
	return out
}

func active(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	return true
}

func matchesSearch(it Entity, fields []string, needle string, folder cases.Caser) bool {
	for _, name := range fields {
		v, _ := it.Field(name)
		if strings.Contains(folder.String(text(v)), needle) {
			return true
		}
	}
	return false
}

func matchesFilters(it Entity, filters []filter) bool {
	for _, f := range filters {
		v, _ := it.Field(f.field)
		if !strictEqual(v, f.value) {
			return false
		}
	}
	return true
}

// text renders a field value for search. Nil becomes "".
func text(v any) string {
	if v == nil || isNil(v) {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// strictEqual is identity of dynamic type and value; no coercion and no
// case folding.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
