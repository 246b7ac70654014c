package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/bplan/internal/model"
	"github.com/theirongolddev/bplan/internal/tui/components"
	"github.com/theirongolddev/bplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

func (a App) renderDataTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(14)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	warnStyle := lipgloss.NewStyle().Foreground(t.Red)

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	saved := "not this session"
	if !a.lastSaved.IsZero() {
		saved = humanize.Time(a.lastSaved)
	}

	storage := strings.Join([]string{
		row("Storage", a.opts.Location),
		row("Export file", a.opts.ExportPath),
		row("Entries", fmt.Sprintf("%d fixed, %d variable", a.book.Len(model.Fixed), a.book.Len(model.Variable))),
		row("Last saved", saved),
	}, "\n")

	importLine := keyStyle.Render("m") + valueStyle.Render("  Import from a JSON file (replaces everything)")
	if a.importing {
		importLine = keyStyle.Render("m") + valueStyle.Render("  Importing...")
	}
	actions := strings.Join([]string{
		keyStyle.Render("x") + valueStyle.Render("  Export to "+a.opts.ExportPath),
		importLine,
		keyStyle.Render("R") + warnStyle.Render("  Reset all budget data"),
	}, "\n")

	return lipgloss.JoinVertical(lipgloss.Left,
		components.ContentCard("Storage", storage, cw, false),
		components.ContentCard("Actions", actions, cw, false),
	)
}
