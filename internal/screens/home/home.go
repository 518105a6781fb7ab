// Package home is the landing screen: a menu over every collection and a
// short dashboard of what needs attention.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hrcore/competency/internal/competency"
	"github.com/hrcore/competency/internal/router"
	"github.com/hrcore/competency/internal/screen"
	"github.com/hrcore/competency/internal/ui/components"
	"github.com/hrcore/competency/internal/ui/theme"
)

type dashboardLoadedMsg struct {
	Overdue int
	Err     error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	svc     *competency.Service
	menu    components.Menu
	overdue int
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *competency.Service) *HomeScreen {
	var items []components.MenuItem
	for _, e := range entries(svc) {
		open := e.Open
		items = append(items, components.MenuItem{
			Label:  e.Label,
			Detail: e.Detail,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: open()}
				}
			},
		})
	}
	items = append(items, components.MenuItem{Label: "Quit", Action: func() tea.Cmd {
		return tea.Quit
	}})

	return &HomeScreen{
		svc:  svc,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	svc := h.svc
	return func() tea.Msg {
		overdue, err := svc.OverdueReviews(context.Background())
		return dashboardLoadedMsg{Overdue: len(overdue), Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(dashboardLoadedMsg); ok {
		h.loaded = true
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
		} else {
			h.errMsg = ""
			h.overdue = msg.Overdue
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(max(width-6, 20), 60)

	title := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Title.Render("Competency") + "\n" + theme.Subtitle.Render(h.userLine()))

	card := theme.Card.Width(cw).Render(h.dashboard())
	menu := theme.Card.Width(cw).Render(strings.TrimRight(h.menu.View(), "\n"))

	content := strings.Join([]string{title, card, menu}, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) userLine() string {
	u := h.svc.User()
	if u.ID == "" {
		return string(u.Role)
	}
	return fmt.Sprintf("%s · %s", u.ID, u.Role)
}

func (h *HomeScreen) dashboard() string {
	today := "Today " + h.svc.Today().String()
	switch {
	case !h.loaded:
		return today + "\n" + theme.Hint.Render("Checking reviews...")
	case h.errMsg != "":
		return today + "\n" + theme.Problem.Render("Reviews unavailable: "+h.errMsg)
	case h.overdue == 0:
		return today + "\n" + theme.Ok.Render("No overdue reviews")
	}
	return today + "\n" + theme.Problem.Render(fmt.Sprintf("%d overdue review(s)", h.overdue))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
