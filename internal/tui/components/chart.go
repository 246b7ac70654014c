package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/bplan/internal/cli"
	"github.com/theirongolddev/bplan/internal/model"
	"github.com/theirongolddev/bplan/internal/pipeline"
	"github.com/theirongolddev/bplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// SliceColor returns the theme color for a chart label.
func SliceColor(label string) lipgloss.Color {
	t := theme.Active
	switch label {
	case pipeline.LabelFixed:
		return t.FixedColor()
	case pipeline.LabelVariable:
		return t.VariableColor()
	case pipeline.LabelLeftover:
		return t.LeftoverColor()
	}
	return t.TextMuted
}

// ProportionChart renders slices as a stacked bar followed by a legend.
// It is stateless: every call draws the chart from scratch.
func ProportionChart(slices []model.Slice, width int) string {
	t := theme.Active
	if width < 10 {
		width = 10
	}

	shares := pipeline.Shares(slices)
	cells := cli.SegmentWidths(shares, width)

	var bar strings.Builder
	drawn := 0
	for i, sl := range slices {
		if cells[i] == 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(SliceColor(sl.Label))
		bar.WriteString(style.Render(strings.Repeat("█", cells[i])))
		drawn += cells[i]
	}
	if drawn < width {
		bar.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render(strings.Repeat("░", width-drawn)))
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	shareStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	lines := []string{bar.String(), ""}
	for i, sl := range slices {
		swatch := lipgloss.NewStyle().Foreground(SliceColor(sl.Label)).Render("■")
		lines = append(lines, fmt.Sprintf("%s %s %s",
			swatch,
			labelStyle.Render(sl.Label+": "+cli.FormatCurrency(sl.Value)),
			shareStyle.Render("("+cli.FormatShare(shares[i])+")"),
		))
	}
	return strings.Join(lines, "\n")
}
