package view

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids[T Entity](items []T) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.EntityID())
	}
	return out
}

func competencies() []Record {
	return []Record{
		{"id": "1", "name": "Alpha", "level": "BASIC"},
		{"id": "2", "name": "Beta", "level": "ADVANCED"},
	}
}

var nameSearch = Config{SearchableFields: []string{"name"}}

func TestDeriveScenario(t *testing.T) {
	got := Derive(competencies(), Predicates{
		SearchText:      "a",
		EqualityFilters: map[string]any{"level": "BASIC"},
	}, nameSearch)

	assert.Equal(t, []string{"1"}, ids(got))
}

func TestDeriveIsIdempotent(t *testing.T) {
	items := competencies()
	p := Predicates{SearchText: "e", EqualityFilters: map[string]any{"level": "ADVANCED"}}

	first := Derive(items, p, nameSearch)
	second := Derive(items, p, nameSearch)
	assert.Equal(t, first, second)
}

func TestDeriveEmptyPredicatesIsIdentity(t *testing.T) {
	items := []Record{
		{"id": "c", "name": "Gamma"},
		{"id": "a", "name": "Alpha"},
		{"id": "b", "name": "Beta"},
	}
	got := Derive(items, Predicates{EqualityFilters: map[string]any{}}, nameSearch)
	assert.Equal(t, []string{"c", "a", "b"}, ids(got))

	got[0] = Record{"id": "x"}
	assert.Equal(t, "c", items[0].EntityID(), "derivation must not alias its input")
}

func TestDeriveSearchIsCaseInsensitive(t *testing.T) {
	items := []Record{{"id": "1", "text": "Hello World"}}
	cfg := Config{SearchableFields: []string{"text"}}

	assert.Len(t, Derive(items, Predicates{SearchText: "hello"}, cfg), 1)
	assert.Len(t, Derive(items, Predicates{SearchText: "WORLD"}, cfg), 1)
	assert.Empty(t, Derive(items, Predicates{SearchText: "xyz"}, cfg))
}

func TestDeriveSearchFoldsUnicode(t *testing.T) {
	items := []Record{{"id": "1", "name": "ÉCOLE Évaluation"}}
	got := Derive(items, Predicates{SearchText: "école"}, nameSearch)
	assert.Len(t, got, 1)
}

func TestDeriveWhitespaceSearchIsNoSearch(t *testing.T) {
	got := Derive(competencies(), Predicates{SearchText: "   \t"}, nameSearch)
	assert.Len(t, got, 2)
}

func TestDeriveSearchAnyField(t *testing.T) {
	items := []Record{
		{"id": "1", "name": "Negotiation", "category": "Leadership"},
		{"id": "2", "name": "Go", "category": nil},
		{"id": "3", "name": nil, "category": "Engineering"},
	}
	cfg := Config{SearchableFields: []string{"name", "category"}}

	assert.Equal(t, []string{"1"}, ids(Derive(items, Predicates{SearchText: "lead"}, cfg)))
	assert.Equal(t, []string{"3"}, ids(Derive(items, Predicates{SearchText: "engin"}, cfg)))
	assert.Equal(t, []string{"1", "2"}, ids(Derive(items, Predicates{SearchText: "go"}, cfg)), "NeGOtiation matches too")
}

func TestDeriveAndComposition(t *testing.T) {
	items := []Record{
		{"id": "1", "name": "Alpha", "level": "BASIC", "status": "active"},
		{"id": "2", "name": "Alpine", "level": "BASIC", "status": "archived"},
	}
	got := Derive(items, Predicates{
		SearchText:      "alp",
		EqualityFilters: map[string]any{"level": "BASIC", "status": "active"},
	}, nameSearch)
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestDeriveEqualityIsExact(t *testing.T) {
	items := competencies()
	got := Derive(items, Predicates{EqualityFilters: map[string]any{"level": "basic"}}, nameSearch)
	assert.Empty(t, got, "equality filters do not fold case")

	numeric := []Record{{"id": "1", "points": float64(5)}}
	got = Derive(numeric, Predicates{EqualityFilters: map[string]any{"points": 5}}, Config{})
	assert.Empty(t, got, "int 5 is not float64 5")
}

func TestDeriveIgnoresInactiveAndUnknownFilters(t *testing.T) {
	items := competencies()
	p := Predicates{EqualityFilters: map[string]any{
		"level":      "",
		"department": "HR",
		"status":     nil,
	}}
	got := Derive(items, p, nameSearch)
	assert.Len(t, got, 2)
	assert.False(t, p.IsEmpty(), "department filter is active even though no item has the field")
}

func TestDeriveEmptyItems(t *testing.T) {
	got := Derive([]Record{}, Predicates{SearchText: "x"}, nameSearch)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDeriveSortStable(t *testing.T) {
	items := []Record{
		{"id": "1", "level": "B"},
		{"id": "2", "level": "A"},
		{"id": "3", "level": "B"},
		{"id": "4", "level": "A"},
	}

	asc := Derive(items, Predicates{}, Config{SortKey: "level", SortDirection: Asc})
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids(asc))

	desc := Derive(items, Predicates{}, Config{SortKey: "level", SortDirection: Desc})
	assert.Equal(t, []string{"1", "3", "2", "4"}, ids(desc))

	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(items), "source order untouched")
}

func TestDeriveSortSemanticTypes(t *testing.T) {
	t.Run("strings are case-sensitive", func(t *testing.T) {
		items := []Record{{"id": "1", "n": "beta"}, {"id": "2", "n": "Zeta"}, {"id": "3", "n": "alpha"}}
		got := Derive(items, Predicates{}, Config{SortKey: "n"})
		assert.Equal(t, []string{"2", "3", "1"}, ids(got))
	})

	t.Run("numbers are numeric", func(t *testing.T) {
		items := []Record{{"id": "1", "n": 10}, {"id": "2", "n": 9}, {"id": "3", "n": 100}}
		got := Derive(items, Predicates{}, Config{SortKey: "n"})
		assert.Equal(t, []string{"2", "1", "3"}, ids(got))
	})

	t.Run("dates are chronological", func(t *testing.T) {
		items := []Record{
			{"id": "1", "d": civil.Date{Year: 2024, Month: time.March, Day: 1}},
			{"id": "2", "d": civil.Date{Year: 2023, Month: time.December, Day: 31}},
			{"id": "3", "d": civil.Date{}},
		}
		got := Derive(items, Predicates{}, Config{SortKey: "d"})
		assert.Equal(t, []string{"3", "2", "1"}, ids(got))

		got = Derive(items, Predicates{}, Config{SortKey: "d", SortDirection: Desc})
		assert.Equal(t, []string{"1", "2", "3"}, ids(got))
	})
}

func TestGroupByAndCountBy(t *testing.T) {
	items := []Record{
		{"id": "1", "competency": "Go"},
		{"id": "2", "competency": "SQL"},
		{"id": "3", "competency": "Go"},
		{"id": "4"},
	}
	groups := GroupBy(items, "competency")
	require.Len(t, groups, 3)
	assert.Equal(t, "Go", groups[0].Key)
	assert.Equal(t, []string{"1", "3"}, ids(groups[0].Items))
	assert.Equal(t, "SQL", groups[1].Key)
	assert.Equal(t, "", groups[2].Key)

	assert.Equal(t, map[string]int{"Go": 2, "SQL": 1, "": 1}, CountBy(items, "competency"))
}

func TestMemo(t *testing.T) {
	items := competencies()
	m := NewMemo[Record](nameSearch)

	first := m.Derive(1, items, Predicates{SearchText: "alp"})
	require.Len(t, first, 1)

	again := m.Derive(1, items, Predicates{SearchText: "alp"})
	assert.Same(t, &first[0], &again[0], "same version and predicates reuse the result")

	items = append(items, Record{"id": "3", "name": "Alpaca"})
	refreshed := m.Derive(2, items, Predicates{SearchText: "alp"})
	assert.Equal(t, []string{"1", "3"}, ids(refreshed))

	other := m.Derive(2, items, Predicates{SearchText: "bet"})
	assert.Equal(t, []string{"2"}, ids(other))
}
