package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/hrcore/competency/internal/ui/theme"
)

// Smallest terminal the tables fit in.
const (
	MinWidth  = 80
	MinHeight = 20
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a bigger terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf("Resize the terminal to at least %d x %d\n(now %d x %d)",
			MinWidth, MinHeight, width, height))
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// RenderHeader renders the breadcrumb of open screens on the left and
// status on the right. Older crumbs are dropped first when the line is too
// narrow.
func RenderHeader(crumbs []string, status string, width int) string {
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)
	inner := max(width-4, 0)
	room := inner - lipgloss.Width(right) - 1

	sep := lipgloss.NewStyle().Foreground(theme.TextDim).Render(" › ")
	render := func(cs []string) string {
		parts := make([]string, 0, len(cs)+1)
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Competency"))
		for i, c := range cs {
			style := lipgloss.NewStyle().Foreground(theme.TextDim)
			if i == len(cs)-1 {
				style = lipgloss.NewStyle().Foreground(theme.Text)
			}
			parts = append(parts, style.Render(c))
		}
		return " " + strings.Join(parts, sep)
	}

	left := render(crumbs)
	for len(crumbs) > 1 && lipgloss.Width(left) > room {
		crumbs = crumbs[1:]
		left = render(append([]string{"…"}, crumbs...))
	}

	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return bar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, key.Render(h.Key)+" "+desc.Render(h.Description))
	}
	return bar.Width(width).Render("  " + strings.Join(parts, "   "))
}

// ContentHeight is what is left of height between header and footer.
func ContentHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(ContentHeight(header, footer, height)).
		Render(content)
	return header + "\n" + body + "\n" + footer
}

// Truncate shortens s to at most n display cells, marking the cut with an
// ellipsis.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// Pad right-pads s with spaces to n cells, truncating when longer.
func Pad(s string, n int) string {
	s = Truncate(s, n)
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

// Row pads each cell to its width and joins them with two spaces. Trailing
// blanks are trimmed.
func Row(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		if i < len(widths) {
			c = Pad(c, widths[i])
		}
		parts[i] = c
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
