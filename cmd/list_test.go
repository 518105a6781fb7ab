package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrcore/competency/internal/competency"
	"github.com/hrcore/competency/internal/domain"
	"github.com/hrcore/competency/internal/schedule"
	"github.com/hrcore/competency/internal/view"
)

func listSource() competency.Source[view.Record] {
	return competency.Source[view.Record]{
		Name: "competencies",
		View: view.Config{SearchableFields: []string{"name"}},
		Layout: view.Layout{
			Columns: []view.Column{
				{Title: "Name", Field: "name", Width: 12},
				{Title: "Level", Field: "level", Width: 8},
			},
		},
	}
}

func listItems() []view.Record {
	return []view.Record{
		{"id": "1", "name": "Negotiation", "level": "BASIC", "weight": 3},
		{"id": "2", "name": "Go", "level": "ADVANCED", "weight": 1},
		{"id": "3", "name": "SQL", "level": "BASIC", "weight": 2},
	}
}

func flagged(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "list"}
	addListFlags(c)
	require.NoError(t, c.ParseFlags(args))
	return c
}

func ids(rows []view.Record) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.EntityID())
	}
	return out
}

func TestDeriveRows(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no flags keeps source order", nil, []string{"1", "2", "3"}},
		{"search", []string{"--search", "sq"}, []string{"3"}},
		{"filter", []string{"--filter", "level=BASIC"}, []string{"1", "3"}},
		{"typed filter", []string{"--filter", "weight=2"}, []string{"3"}},
		{"sort", []string{"--sort", "weight"}, []string{"2", "3", "1"}},
		{"sort desc", []string{"--sort", "weight", "--desc"}, []string{"1", "3", "2"}},
		{"limit", []string{"--sort", "name", "--limit", "2"}, []string{"2", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := deriveRows(flagged(t, tt.args...), listSource(), listItems())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(rows))
		})
	}
}

func TestDeriveRowsErrors(t *testing.T) {
	_, err := deriveRows(flagged(t, "--filter", "level"), listSource(), listItems())
	assert.Error(t, err)

	_, err = deriveRows(flagged(t, "--desc"), listSource(), listItems())
	assert.Error(t, err, "--desc without a sort field")
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	printTable(&buf, listSource().Layout, listItems()[:2])

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[0], "Level")
	assert.True(t, strings.HasPrefix(lines[1], "─"))
	assert.Equal(t, "Negotiation   BASIC", lines[2])
	assert.Equal(t, "Go            ADVANCED", lines[3])
}

func TestApplyPathFlags(t *testing.T) {
	c := &cobra.Command{Use: "update"}
	addPathFlags(c.Flags())
	require.NoError(t, c.ParseFlags([]string{"--title", "Lead", "--start", "2024-02-01", "--end", ""}))

	u := domain.PathUpdate{
		Title:     "Old",
		Status:    domain.PathActive,
		StartDate: schedule.NewDay(civil.Date{Year: 2024, Month: time.January, Day: 1}),
		EndDate:   schedule.NewDay(civil.Date{Year: 2024, Month: time.June, Day: 30}),
	}
	require.NoError(t, applyPathFlags(c.Flags(), time.UTC, &u))

	assert.Equal(t, "Lead", u.Title)
	assert.Equal(t, domain.PathActive, u.Status, "unset flags keep their value")
	assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 1}, u.StartDate.Date)
	assert.True(t, u.EndDate.IsZero(), "empty --end clears the date")
}

func TestApplyInterventionFlagsRejectsBadDate(t *testing.T) {
	c := &cobra.Command{Use: "add"}
	addInterventionFlags(c.Flags())
	require.NoError(t, c.ParseFlags([]string{"--start", "01/02/2024"}))

	var d domain.InterventionDraft
	err := applyInterventionFlags(c.Flags(), time.UTC, &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--start")
}

func TestApplyInterventionFlagsUsesGivenLocation(t *testing.T) {
	c := &cobra.Command{Use: "add"}
	addInterventionFlags(c.Flags())
	require.NoError(t, c.ParseFlags([]string{"--start", "2024-02-01T23:30:00Z", "--end", "2024-02-01T23:30:00Z"}))

	var d domain.InterventionDraft
	require.NoError(t, applyInterventionFlags(c.Flags(), time.FixedZone("UTC+9", 9*60*60), &d))

	want := civil.Date{Year: 2024, Month: time.February, Day: 2}
	assert.Equal(t, want, d.StartDate.Date)
	assert.Equal(t, want, d.EndDate.Date)
}
