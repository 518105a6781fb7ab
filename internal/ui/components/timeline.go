package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"cloud.google.com/go/civil"

	"github.com/hrcore/competency/internal/schedule"
	"github.com/hrcore/competency/internal/ui/theme"
)

// Timeline renders a bounded date range as a bar filled up to today.
type Timeline struct {
	Interval schedule.Interval
	Today    civil.Date
	Width    int
}

// Progress returns the elapsed share of the interval, clamped to [0, 1].
// Open-ended intervals report 0.
func (t Timeline) Progress() float64 {
	total := t.Interval.Days()
	if total == 0 {
		return 0
	}
	p := float64(t.Today.DaysSince(t.Interval.Start)+1) / float64(total)
	return min(max(p, 0), 1)
}

// View renders "start ▕bar▏ end  pct%", or the interval text when it has no
// end.
func (t Timeline) View() string {
	if t.Interval.Days() == 0 {
		return theme.Hint.Render("Timeline: " + t.Interval.String())
	}
	start := schedule.FormatDate(t.Interval.Start)
	end := schedule.FormatDate(t.Interval.End)
	pct := t.Progress()

	barWidth := max(t.Width-len(start)-len(end)-10, 4)
	filled := int(float64(barWidth) * pct)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(start))
	b.WriteString(" ▕")
	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)))
	b.WriteString("▏ ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(end))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("  %d%%", int(pct*100))))
	return b.String()
}
