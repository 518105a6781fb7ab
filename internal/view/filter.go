package view

import (
	"fmt"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
)

// ParseFilters turns "field=value" arguments into equality filters. Each
// value is converted to the type the field has on the first item that
// reports it, so "active=true" matches a bool field and "points=5" an int
// field. Fields no item reports keep the raw string.
func ParseFilters[T Entity](items []T, args []string) (map[string]any, error) {
	out := make(map[string]any, len(args))
	for _, arg := range args {
		field, raw, ok := strings.Cut(arg, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" {
			return nil, fmt.Errorf("filter %q: want field=value", arg)
		}
		v, err := coerce(sample(items, field), raw)
		if err != nil {
			return nil, fmt.Errorf("filter %s: %w", field, err)
		}
		out[field] = v
	}
	return out, nil
}

func sample[T Entity](items []T, field string) any {
	for _, it := range items {
		if v, ok := it.Field(field); ok && !isNil(v) {
			return v
		}
	}
	return nil
}

func coerce(like any, raw string) (any, error) {
	switch like.(type) {
	case bool:
		return strconv.ParseBool(raw)
	case int:
		return strconv.Atoi(raw)
	case int64:
		return strconv.ParseInt(raw, 10, 64)
	case float64:
		return strconv.ParseFloat(raw, 64)
	case civil.Date:
		return civil.ParseDate(raw)
	}
	return raw, nil
}
