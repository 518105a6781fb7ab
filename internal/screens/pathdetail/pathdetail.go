// Package pathdetail shows one development path with its interventions,
// its timeline, and any interventions scheduled outside the path's dates.
package pathdetail

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"cloud.google.com/go/civil"

	"github.com/hrcore/competency/internal/collection"
	"github.com/hrcore/competency/internal/competency"
	"github.com/hrcore/competency/internal/domain"
	"github.com/hrcore/competency/internal/screen"
	"github.com/hrcore/competency/internal/ui/components"
	"github.com/hrcore/competency/internal/ui/layout"
	"github.com/hrcore/competency/internal/ui/theme"
	"github.com/hrcore/competency/internal/view"
)

type mutationMsg struct {
	Action string
	Err    error
}

// Screen is the detail view of one path.
type Screen struct {
	svc *competency.Service
	id  string

	pathFeed *screen.Feed[domain.DevelopmentPath]
	ivFeed   *screen.Feed[domain.Intervention]
	pathSnap collection.Snapshot[domain.DevelopmentPath]
	ivSnap   collection.Snapshot[domain.Intervention]

	rows      []domain.Intervention
	conflicts map[string]error
	selected  int

	confirmDelete bool
	busy          bool
	notice        string
	noticeErr     bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.Closer = (*Screen)(nil)

// New creates the detail screen for path id.
func New(svc *competency.Service, id string) *Screen {
	return &Screen{svc: svc, id: id}
}

func (s *Screen) Init() tea.Cmd {
	cache := s.svc.Cache()
	pathSrc := s.svc.PathSource(s.id)
	ivSrc := s.svc.InterventionsSource(s.id)
	s.pathFeed, s.pathSnap = screen.Watch(cache, pathSrc.Key, pathSrc.Fetch)
	s.ivFeed, s.ivSnap = screen.Watch(cache, ivSrc.Key, ivSrc.Fetch)
	s.derive()
	return tea.Batch(s.pathFeed.Wait(), s.ivFeed.Wait())
}

func (s *Screen) Title() string {
	if p, ok := s.path(); ok {
		return p.Title
	}
	return "Development Path"
}

// Close ends both subscriptions.
func (s *Screen) Close() {
	if s.pathFeed != nil {
		s.pathFeed.Close()
	}
	if s.ivFeed != nil {
		s.ivFeed.Close()
	}
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirmDelete {
		return []layout.KeyHint{
			{Key: "y", Description: "Confirm delete"},
			{Key: "any", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "c", Description: "Complete"},
		{Key: "x", Description: "Delete"},
		{Key: "r", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) path() (domain.DevelopmentPath, bool) {
	if len(s.pathSnap.Items) == 0 {
		return domain.DevelopmentPath{}, false
	}
	return s.pathSnap.Items[0], true
}

func (s *Screen) derive() {
	src := s.svc.InterventionsSource(s.id)
	s.rows = view.Derive(s.ivSnap.Items, view.Predicates{}, src.View)
	if s.selected >= len(s.rows) {
		s.selected = max(len(s.rows)-1, 0)
	}

	s.conflicts = make(map[string]error)
	p, ok := s.path()
	if !ok {
		return
	}
	details := domain.PathDetails{Path: p, Interventions: s.ivSnap.Items}
	for _, c := range details.Conflicts() {
		s.conflicts[c.Intervention.ID] = c.Err
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ChangedMsg:
		switch msg.Source {
		case s.pathFeed:
			s.pathSnap = s.pathFeed.Snapshot()
			s.derive()
			return s, s.pathFeed.Wait()
		case s.ivFeed:
			s.ivSnap = s.ivFeed.Snapshot()
			s.derive()
			return s, s.ivFeed.Wait()
		}
		return s, nil

	case mutationMsg:
		s.busy = false
		if msg.Err != nil {
			s.notice = fmt.Sprintf("%s failed: %s", msg.Action, msg.Err)
			s.noticeErr = true
		} else {
			s.notice = msg.Action + " done"
			s.noticeErr = false
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	if s.confirmDelete {
		s.confirmDelete = false
		if key == "y" {
			return s, s.deleteSelected()
		}
		s.notice = ""
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.rows)-1 {
			s.selected++
		}
	case "r":
		s.pathFeed.Refresh()
		s.ivFeed.Refresh()
	case "c":
		return s, s.completeSelected()
	case "x":
		if _, ok := s.current(); ok && !s.busy {
			s.confirmDelete = true
		}
	}
	return s, nil
}

func (s *Screen) current() (domain.Intervention, bool) {
	if s.selected < 0 || s.selected >= len(s.rows) {
		return domain.Intervention{}, false
	}
	return s.rows[s.selected], true
}

func (s *Screen) completeSelected() tea.Cmd {
	iv, ok := s.current()
	if !ok || s.busy || iv.Status == domain.InterventionDone {
		return nil
	}
	s.busy = true
	svc := s.svc
	return func() tea.Msg {
		d := domain.DraftOf(iv)
		d.Status = domain.InterventionDone
		_, err := svc.UpdateIntervention(context.Background(), iv.ID, d)
		return mutationMsg{Action: "complete " + iv.Title, Err: err}
	}
}

func (s *Screen) deleteSelected() tea.Cmd {
	iv, ok := s.current()
	if !ok || s.busy {
		return nil
	}
	s.busy = true
	svc, pathID := s.svc, s.id
	return func() tea.Msg {
		err := svc.DeleteIntervention(context.Background(), pathID, iv.ID)
		return mutationMsg{Action: "delete " + iv.Title, Err: err}
	}
}

func (s *Screen) View(width, height int) string {
	p, ok := s.path()
	if !ok {
		if s.pathSnap.Err != nil {
			return lipgloss.NewStyle().
				Width(width).Align(lipgloss.Center).Foreground(theme.Error).
				Render(fmt.Sprintf("\n\nError: %s\n\nPress r to retry.", s.pathSnap.Err))
		}
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading path...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(" " + theme.Selected.Render(p.Title) + "  " + theme.Chip.Render("["+string(p.Status)+"]") + "\n")
	b.WriteString(" " + theme.Hint.Render(fmt.Sprintf("%s  ·  %s", p.EmployeeName, p.Interval())) + "\n")
	if p.Description != "" {
		b.WriteString(" " + theme.Body.Render(layout.Truncate(p.Description, width-2)) + "\n")
	}
	b.WriteString("\n " + s.timeline(p, min(width-2, 70)) + "\n\n")

	switch {
	case !s.ivSnap.HasData() && s.ivSnap.Err != nil:
		b.WriteString(" " + theme.Problem.Render("Interventions unavailable: "+s.ivSnap.Err.Error()) + "\n")
	case !s.ivSnap.HasData():
		b.WriteString(" " + theme.Hint.Render("Loading interventions...") + "\n")
	case len(s.rows) == 0:
		b.WriteString(" " + theme.Hint.Render("No interventions planned.") + "\n")
	default:
		b.WriteString(s.renderInterventions(width))
	}

	if s.ivSnap.IsLoading || s.pathSnap.IsLoading {
		b.WriteString("\n " + theme.Stale.Render("refreshing…"))
	}
	if s.confirmDelete {
		if iv, ok := s.current(); ok {
			b.WriteString("\n " + theme.Problem.Render(fmt.Sprintf("Delete %q? y to confirm", iv.Title)))
		}
	} else if s.notice != "" {
		style := theme.Ok
		if s.noticeErr {
			style = theme.Problem
		}
		b.WriteString("\n " + style.Render(s.notice))
	}
	return b.String()
}

// timeline renders how far today is through the path's dates. Open-ended
// paths render as their dates only.
func (s *Screen) timeline(p domain.DevelopmentPath, width int) string {
	return components.Timeline{Interval: p.Interval(), Today: s.svc.Today().Date, Width: width}.View()
}

// runningOn reports whether a scheduled intervention spans day.
func runningOn(iv domain.Intervention, day civil.Date) bool {
	r := iv.Interval()
	return r.HasStart() && r.Contains(day)
}

func (s *Screen) renderInterventions(width int) string {
	src := s.svc.InterventionsSource(s.id)
	widths := src.Layout.Widths()
	row := func(cells []string) string { return layout.Row(cells, widths) }

	today := s.svc.Today().Date
	var b strings.Builder
	b.WriteString("   " + theme.ColumnHeader.Render(row(src.Layout.Header())) + "\n")
	for i, iv := range s.rows {
		line := row(src.Layout.Cells(iv))
		_, conflict := s.conflicts[iv.ID]
		marker := "  "
		if i == s.selected {
			marker = " ▸"
		}
		switch {
		case conflict:
			marker += "!"
		case runningOn(iv, today):
			marker += "•"
		default:
			marker += " "
		}
		switch {
		case conflict:
			b.WriteString(theme.Problem.Render(marker + line))
		case i == s.selected:
			b.WriteString(theme.Selected.Render(marker + line))
		default:
			b.WriteString(theme.Unselected.Render(marker + line))
		}
		b.WriteString("\n")
	}

	if len(s.conflicts) > 0 {
		b.WriteString("\n " + theme.Problem.Render(fmt.Sprintf("%d intervention(s) fall outside the path dates", len(s.conflicts))) + "\n")
		if iv, ok := s.current(); ok {
			if err := s.conflicts[iv.ID]; err != nil {
				b.WriteString(" " + theme.Hint.Render(layout.Truncate(err.Error(), width-2)) + "\n")
			}
		}
	}
	return b.String()
}
