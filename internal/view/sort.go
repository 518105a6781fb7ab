package view

import (
	"cmp"
	"reflect"
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// sortStable orders items by key in place. Ties keep their relative order in
// both directions. Missing values sort first ascending, last descending.
func sortStable[T Entity](items []T, key string, dir Direction) {
	slices.SortStableFunc(items, func(a, b T) int {
		va, _ := a.Field(key)
		vb, _ := b.Field(key)
		c := Compare(va, vb)
		if dir == Desc {
			return -c
		}
		return c
	})
}

// Compare orders two field values by their semantic type: strings
// lexicographically (case-sensitive), dates and times chronologically,
// numbers numerically, false before true. Values of unrelated types fall
// back to comparing their text.
func Compare(a, b any) int {
	am, bm := missing(a), missing(b)
	switch {
	case am && bm:
		return 0
	case am:
		return -1
	case bm:
		return 1
	}

	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case civil.Date:
		if y, ok := b.(civil.Date); ok {
			return compareDates(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	}

	if fa, ok := number(a); ok {
		if fb, ok := number(b); ok {
			return cmp.Compare(fa, fb)
		}
	}
	return strings.Compare(text(a), text(b))
}

func compareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

func missing(v any) bool {
	if v == nil || isNil(v) {
		return true
	}
	switch x := v.(type) {
	case civil.Date:
		return x.IsZero()
	case time.Time:
		return x.IsZero()
	}
	return false
}

func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
