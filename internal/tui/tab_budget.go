package tui

import (
	"strings"

	"github.com/theirongolddev/bplan/internal/cli"
	"github.com/theirongolddev/bplan/internal/model"
	"github.com/theirongolddev/bplan/internal/pipeline"
	"github.com/theirongolddev/bplan/internal/tui/components"
	"github.com/theirongolddev/bplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	state := a.book.State()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	income := "  " + labelStyle.Render("Monthly income  ") + valueStyle.Render(cli.FormatCurrency(state.Income))

	widths := components.LayoutRow(cw, 2)
	cards := []string{
		a.renderEntryCard(model.Fixed, state.Fixed, widths[0]),
		a.renderEntryCard(model.Variable, state.Variable, widths[1]),
	}

	return income + "\n\n" + components.CardRow(cards)
}

func (a App) renderEntryCard(kind model.ListKind, entries []model.Entry, outerWidth int) string {
	t := theme.Active
	focused := a.list == kind
	inner := components.CardInnerWidth(outerWidth)

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	totalStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var lines []string
	if len(entries) == 0 {
		lines = append(lines, mutedStyle.Render("No entries yet. Press a to add."))
	}

	for i, e := range entries {
		amount := cli.FormatCurrency(e.Amount)
		name := truncStr(e.Name, inner-lipgloss.Width(amount)-3)
		gap := max(inner-2-lipgloss.Width(name)-lipgloss.Width(amount), 1)
		row := name + strings.Repeat(" ", gap) + amount

		if focused && i == a.cursor[kind] {
			lines = append(lines, selStyle.Width(inner).Render("▸ "+row))
			continue
		}
		lines = append(lines, "  "+nameStyle.Render(name)+strings.Repeat(" ", gap)+amountStyle.Render(amount))
	}

	total := cli.FormatCurrency(pipeline.SumEntries(entries))
	lines = append(lines,
		mutedStyle.Render(strings.Repeat("─", inner)),
		mutedStyle.Render("  Total")+strings.Repeat(" ", max(inner-7-lipgloss.Width(total), 1))+totalStyle.Render(total),
	)

	return components.ContentCard(kind.Title()+" expenses", strings.Join(lines, "\n"), outerWidth, focused)
}
