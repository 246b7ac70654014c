package components

import (
	"github.com/theirongolddev/bplan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// RateColor picks the color for a savings rate in percent.
func RateColor(rate float64) lipgloss.Color {
	t := theme.Active
	switch {
	case rate < 0:
		return t.Red
	case rate < 10:
		return t.Orange
	case rate < 20:
		return t.Yellow
	default:
		return t.Green
	}
}

// SavingsBar renders the savings rate (percent) as a progress bar followed
// by the rate text. The bar is clamped to 0-100%; the text is not.
func SavingsBar(rate float64, label string, width int) string {
	t := theme.Active
	color := RateColor(rate)

	barWidth := max(width-lipgloss.Width(label)-1, 10)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)
	bar.EmptyColor = string(t.TextDim)

	pct := rate / 100
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	text := lipgloss.NewStyle().Foreground(color).Bold(true).Render(label)
	return bar.ViewAs(pct) + " " + text
}
