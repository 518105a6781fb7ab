// Package list is a generic table screen over one cached collection, with
// free-text search, cyclable equality filters and sorting.
package list

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hrcore/competency/internal/collection"
	"github.com/hrcore/competency/internal/competency"
	"github.com/hrcore/competency/internal/screen"
	"github.com/hrcore/competency/internal/ui/components"
	"github.com/hrcore/competency/internal/ui/layout"
	"github.com/hrcore/competency/internal/ui/theme"
	"github.com/hrcore/competency/internal/view"
)

// Options configures a list screen. Columns, filter fields and sort fields
// come from the source's layout: "f" cycles values of a filter field, tab
// switches field, "s" cycles sort fields after the source's default.
type Options[T view.Entity] struct {
	Title  string
	Source competency.Source[T]
	Cache  *collection.Client

	// OnSelect, when set, runs for the highlighted row on enter.
	OnSelect func(T) tea.Cmd

	// Now is the clock for freshness labels.
	Now func() time.Time
}

// Screen lists one collection.
type Screen[T view.Entity] struct {
	opts   Options[T]
	feed   *screen.Feed[T]
	snap   collection.Snapshot[T]
	memo   *view.Memo[T]
	search components.SearchInput

	filterField int
	filterValue int // -1 when no value is selected
	sortField   int // -1 for the source's default
	dir         view.Direction

	rows     []T
	selected int
	offset   int
}

var _ screen.Screen = (*Screen[view.Record])(nil)
var _ screen.KeyHintProvider = (*Screen[view.Record])(nil)
var _ screen.InputCapturer = (*Screen[view.Record])(nil)
var _ screen.Closer = (*Screen[view.Record])(nil)

// New creates a list screen. The subscription starts in Init.
func New[T view.Entity](opts Options[T]) *Screen[T] {
	if opts.Title == "" {
		opts.Title = titleCase(opts.Source.Name)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	dir := opts.Source.View.SortDirection
	if dir == "" {
		dir = view.Asc
	}
	return &Screen[T]{
		opts:        opts,
		memo:        view.NewMemo[T](opts.Source.View),
		search:      components.NewSearchInput("search "+strings.ToLower(opts.Title), 64),
		filterValue: -1,
		sortField:   -1,
		dir:         dir,
	}
}

func (s *Screen[T]) Init() tea.Cmd {
	s.feed, s.snap = screen.Watch(s.opts.Cache, s.opts.Source.Key, s.opts.Source.Fetch)
	s.derive()
	return s.feed.Wait()
}

func (s *Screen[T]) layout() view.Layout {
	return s.opts.Source.Layout
}

func (s *Screen[T]) Title() string {
	return s.opts.Title
}

// Close ends the subscription.
func (s *Screen[T]) Close() {
	if s.feed != nil {
		s.feed.Close()
	}
}

// CapturingInput reports whether the search box has focus.
func (s *Screen[T]) CapturingInput() bool {
	return s.search.Focused()
}

func (s *Screen[T]) KeyHints() []layout.KeyHint {
	if s.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Done"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "/", Description: "Search"},
	}
	if len(s.layout().Filters) > 0 {
		hints = append(hints, layout.KeyHint{Key: "f", Description: "Filter"})
	}
	if len(s.layout().Sorts) > 0 {
		hints = append(hints, layout.KeyHint{Key: "s/d", Description: "Sort"})
	}
	hints = append(hints, layout.KeyHint{Key: "r", Description: "Refresh"})
	if s.opts.OnSelect != nil {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Open"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Rows returns the rows currently shown.
func (s *Screen[T]) Rows() []T {
	return s.rows
}

// Predicates returns the active search and filters.
func (s *Screen[T]) Predicates() view.Predicates {
	p := view.Predicates{SearchText: s.search.Value()}
	if field, value, ok := s.activeFilter(); ok {
		p.EqualityFilters = map[string]any{field: value}
	}
	return p
}

func (s *Screen[T]) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ChangedMsg:
		if msg.Source != s.feed {
			return s, nil
		}
		s.snap = s.feed.Snapshot()
		s.derive()
		return s, s.feed.Wait()

	case tea.KeyMsg:
		if s.search.Focused() {
			return s.updateSearch(msg)
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen[T]) updateSearch(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		s.search.Blur()
		return s, nil
	}
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.derive()
	return s, cmd
}

func (s *Screen[T]) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.rows)-1 {
			s.selected++
		}
	case "/":
		return s, s.search.Focus()
	case "ctrl+u":
		s.search.Reset()
		s.derive()
	case "f":
		s.cycleFilterValue()
		s.derive()
	case "tab":
		if len(s.layout().Filters) > 0 {
			s.filterField = (s.filterField + 1) % len(s.layout().Filters)
			s.filterValue = -1
			s.derive()
		}
	case "s":
		if len(s.layout().Sorts) > 0 {
			s.sortField++
			if s.sortField >= len(s.layout().Sorts) {
				s.sortField = -1
			}
			s.applySort()
		}
	case "d":
		if s.dir == view.Desc {
			s.dir = view.Asc
		} else {
			s.dir = view.Desc
		}
		s.applySort()
	case "r":
		s.feed.Refresh()
	case "enter":
		if s.opts.OnSelect != nil && s.selected < len(s.rows) {
			return s, s.opts.OnSelect(s.rows[s.selected])
		}
	}
	return s, nil
}

// filterOptions returns the distinct values of the current filter field,
// taken from the loaded items in order of first appearance.
func (s *Screen[T]) filterOptions() []any {
	if len(s.layout().Filters) == 0 {
		return nil
	}
	field := s.layout().Filters[s.filterField]
	var out []any
	for _, g := range view.GroupBy(s.snap.Items, field) {
		if v, ok := g.Items[0].Field(field); ok && g.Key != "" {
			out = append(out, v)
		}
	}
	return out
}

func (s *Screen[T]) cycleFilterValue() {
	n := len(s.filterOptions())
	if n == 0 {
		s.filterValue = -1
		return
	}
	s.filterValue++
	if s.filterValue >= n {
		s.filterValue = -1
	}
}

func (s *Screen[T]) activeFilter() (string, any, bool) {
	if s.filterValue < 0 {
		return "", nil, false
	}
	values := s.filterOptions()
	if s.filterValue >= len(values) {
		return "", nil, false
	}
	return s.layout().Filters[s.filterField], values[s.filterValue], true
}

func (s *Screen[T]) applySort() {
	cfg := s.opts.Source.View
	if s.sortField >= 0 {
		cfg.SortKey = s.layout().Sorts[s.sortField]
	}
	if cfg.SortKey != "" {
		cfg.SortDirection = s.dir
	}
	s.memo.SetConfig(cfg)
	s.derive()
}

func (s *Screen[T]) sortLabel() string {
	key := s.opts.Source.View.SortKey
	if s.sortField >= 0 {
		key = s.layout().Sorts[s.sortField]
	}
	if key == "" {
		return ""
	}
	arrow := "↑"
	if s.dir == view.Desc {
		arrow = "↓"
	}
	return key + " " + arrow
}

func (s *Screen[T]) derive() {
	s.rows = s.memo.Derive(s.snap.Version, s.snap.Items, s.Predicates())
	if s.selected >= len(s.rows) {
		s.selected = max(len(s.rows)-1, 0)
	}
}

func (s *Screen[T]) View(width, height int) string {
	if !s.snap.HasData() {
		if s.snap.Err != nil {
			return lipgloss.NewStyle().
				Width(width).Align(lipgloss.Center).Foreground(theme.Error).
				Render(fmt.Sprintf("\n\nError: %s\n\nPress r to retry.", s.snap.Err))
		}
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("\n\n  Loading %s...", strings.ToLower(s.opts.Title)))
	}

	var b strings.Builder
	b.WriteString(" " + s.toolbar() + "\n")
	b.WriteString(" " + s.statusLine() + "\n\n")

	if len(s.rows) == 0 {
		msg := "Nothing here yet."
		if !s.Predicates().IsEmpty() {
			msg = "No matches."
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render(msg))
		return b.String()
	}

	b.WriteString("   " + theme.ColumnHeader.Render(s.renderRow(s.layout().Header())) + "\n")

	visible := height - 5
	if visible < 1 {
		visible = 1
	}
	s.scroll(visible)

	end := min(s.offset+visible, len(s.rows))
	for i := s.offset; i < end; i++ {
		row := s.rows[i]
		line := s.renderRow(s.layout().Cells(row))
		if i == s.selected {
			b.WriteString(theme.Selected.Render(" ▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("   " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Screen[T]) scroll(visible int) {
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+visible {
		s.offset = s.selected - visible + 1
	}
	if s.offset > len(s.rows)-visible {
		s.offset = max(len(s.rows)-visible, 0)
	}
}

func (s *Screen[T]) renderRow(cells []string) string {
	return layout.Row(cells, s.layout().Widths())
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (s *Screen[T]) toolbar() string {
	parts := []string{s.search.View()}
	if len(s.layout().Filters) > 0 {
		field := s.layout().Filters[s.filterField]
		label := field + ": all"
		if _, v, ok := s.activeFilter(); ok {
			label = field + ": " + view.Text(v)
		}
		parts = append(parts, theme.Chip.Render("["+label+"]"))
	}
	if l := s.sortLabel(); l != "" {
		parts = append(parts, theme.Chip.Render("[sort "+l+"]"))
	}
	return strings.Join(parts, "  ")
}

// breakdown counts the shown rows per value of the current filter field,
// e.g. "BASIC 2 · ADVANCED 1". Values appear in filter order.
func (s *Screen[T]) breakdown() string {
	if len(s.layout().Filters) == 0 || len(s.rows) == 0 {
		return ""
	}
	field := s.layout().Filters[s.filterField]
	counts := view.CountBy(s.rows, field)
	var parts []string
	for _, v := range s.filterOptions() {
		k := fmt.Sprint(v)
		if n := counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", k, n))
		}
	}
	return strings.Join(parts, " · ")
}

func (s *Screen[T]) statusLine() string {
	status := theme.Hint.Render(fmt.Sprintf("%d of %d", len(s.rows), len(s.snap.Items)))
	if b := s.breakdown(); b != "" {
		status += theme.Hint.Render("  (" + b + ")")
	}
	if !s.snap.FetchedAt.IsZero() {
		status += theme.Hint.Render("  updated " + Ago(s.opts.Now().Sub(s.snap.FetchedAt)))
	}
	switch {
	case s.snap.IsLoading:
		status += "  " + theme.Stale.Render("refreshing…")
	case s.snap.IsStale:
		status += "  " + theme.Stale.Render("stale")
	}
	if s.snap.Err != nil {
		status += "  " + theme.Problem.Render("refresh failed: "+s.snap.Err.Error())
	}
	return status
}

// Ago renders a duration as a coarse age such as "just now" or "5m ago".
func Ago(d time.Duration) string {
	switch {
	case d < 10*time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
	return fmt.Sprintf("%dd ago", int(d.Hours()/24))
}
