package list

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrcore/competency/internal/collection"
	"github.com/hrcore/competency/internal/competency"
	"github.com/hrcore/competency/internal/router"
	"github.com/hrcore/competency/internal/screen"
	"github.com/hrcore/competency/internal/view"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func records() []view.Record {
	return []view.Record{
		{"id": "1", "name": "Negotiation", "level": "BASIC"},
		{"id": "2", "name": "Go", "level": "ADVANCED"},
		{"id": "3", "name": "SQL", "level": "BASIC"},
	}
}

func testScreen(t *testing.T, items []view.Record, onSelect func(view.Record) tea.Cmd) *Screen[view.Record] {
	t.Helper()
	cache := collection.NewClient(collection.Options{})
	t.Cleanup(cache.Close)

	key := collection.KeyOf("competencies")
	s := New(Options[view.Record]{
		Title: "Competencies",
		Source: competency.Source[view.Record]{
			Name: "Competencies",
			Key:  key,
			Fetch: func(context.Context) ([]view.Record, error) {
				return items, nil
			},
			View: view.Config{SearchableFields: []string{"name"}},
			Layout: view.Layout{
				Columns: []view.Column{
					{Title: "Name", Field: "name", Width: 20},
					{Title: "Level", Field: "level", Width: 10},
				},
				Filters: []string{"level"},
				Sorts:   []string{"name"},
			},
		},
		Cache:    cache,
		OnSelect: onSelect,
	})
	t.Cleanup(s.Close)

	require.NotNil(t, s.Init())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := collection.Await[view.Record](ctx, cache, key)
	require.NoError(t, err)

	s.Update(screen.ChangedMsg{Source: s.feed})
	return s
}

func rowIDs(s *Screen[view.Record]) []string {
	out := make([]string, 0, len(s.Rows()))
	for _, r := range s.Rows() {
		out = append(out, r.EntityID())
	}
	return out
}

func TestListLoadsRows(t *testing.T) {
	s := testScreen(t, records(), nil)

	assert.Equal(t, []string{"1", "2", "3"}, rowIDs(s))
	out := s.View(100, 30)
	assert.Contains(t, out, "Negotiation")
	assert.Contains(t, out, "3 of 3")
}

func TestListIgnoresOtherFeeds(t *testing.T) {
	s := testScreen(t, records(), nil)

	_, cmd := s.Update(screen.ChangedMsg{Source: "other"})
	assert.Nil(t, cmd)
}

func TestListSearch(t *testing.T) {
	s := testScreen(t, records(), nil)

	s.Update(keyPress('/'))
	require.True(t, s.CapturingInput())

	for _, r := range "sq" {
		s.Update(keyPress(r))
	}
	assert.Equal(t, []string{"3"}, rowIDs(s))

	s.Update(specialKey(tea.KeyEnter))
	assert.False(t, s.CapturingInput())
	assert.Equal(t, []string{"3"}, rowIDs(s), "search text survives blur")
}

func TestListFilterCycles(t *testing.T) {
	s := testScreen(t, records(), nil)

	s.Update(keyPress('f'))
	assert.Equal(t, []string{"1", "3"}, rowIDs(s), "first value is BASIC")

	s.Update(keyPress('f'))
	assert.Equal(t, []string{"2"}, rowIDs(s))

	s.Update(keyPress('f'))
	assert.Equal(t, []string{"1", "2", "3"}, rowIDs(s), "cycles back to all")
}

func TestListStatusCountsFilterValues(t *testing.T) {
	s := testScreen(t, records(), nil)
	assert.Equal(t, "BASIC 2 · ADVANCED 1", s.breakdown())
	assert.Contains(t, s.View(100, 30), "BASIC 2 · ADVANCED 1")

	s.Update(keyPress('f'))
	assert.Equal(t, "BASIC 2", s.breakdown(), "counts follow the shown rows")
}

func TestListSort(t *testing.T) {
	s := testScreen(t, records(), nil)

	s.Update(keyPress('s'))
	assert.Equal(t, []string{"2", "1", "3"}, rowIDs(s))

	s.Update(keyPress('d'))
	assert.Equal(t, []string{"3", "1", "2"}, rowIDs(s))

	s.Update(keyPress('s'))
	assert.Equal(t, []string{"1", "2", "3"}, rowIDs(s), "back to source order")
}

func TestListSelect(t *testing.T) {
	var picked string
	s := testScreen(t, records(), func(r view.Record) tea.Cmd {
		picked = r.EntityID()
		return func() tea.Msg { return router.PopScreenMsg{} }
	})

	s.Update(keyPress('j'))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, "2", picked)
}

func TestListEmptyAndNoMatches(t *testing.T) {
	s := testScreen(t, []view.Record{}, nil)
	assert.Contains(t, s.View(100, 30), "Nothing here yet.")

	s = testScreen(t, records(), nil)
	s.Update(keyPress('/'))
	s.Update(keyPress('z'))
	assert.Contains(t, s.View(100, 30), "No matches.")
}

func TestAgo(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{time.Second, "just now"},
		{30 * time.Second, "30s ago"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{50 * time.Hour, "2d ago"},
	}
	for _, tt := range tests {
		if got := Ago(tt.d); got != tt.want {
			t.Errorf("Ago(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestListKeyHints(t *testing.T) {
	s := testScreen(t, records(), nil)

	var keys []string
	for _, h := range s.KeyHints() {
		keys = append(keys, h.Key)
	}
	assert.Equal(t, "↑↓ / f s/d r Esc", strings.Join(keys, " "))
}
