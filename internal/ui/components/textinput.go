package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hrcore/competency/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput as the free-text search box of a
// list screen. It starts blurred.
type SearchInput struct {
	Model    textinput.Model
	MaxWidth int
}

// NewSearchInput creates a new styled search input.
func NewSearchInput(placeholder string, maxWidth int) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return SearchInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Focus starts capturing keys.
func (t *SearchInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur stops capturing keys. The text is kept.
func (t *SearchInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input captures keys.
func (t SearchInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the search input. An empty blurred input renders as a hint.
func (t SearchInput) View() string {
	if !t.Focused() && t.Value() == "" {
		return theme.Hint.Render("/ to search")
	}
	view := t.Model.View()
	if !t.Focused() {
		view = lipgloss.NewStyle().Foreground(theme.Secondary).Render("/ " + t.Value())
	}
	return view
}

// Value returns the current input value.
func (t SearchInput) Value() string {
	return t.Model.Value()
}

// Reset clears the text.
func (t *SearchInput) Reset() {
	t.Model.Reset()
}
