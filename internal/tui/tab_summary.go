package tui

import (
	"github.com/theirongolddev/bplan/internal/cli"
	"github.com/theirongolddev/bplan/internal/pipeline"
	"github.com/theirongolddev/bplan/internal/tui/components"
	"github.com/theirongolddev/bplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSummaryTab(cw int) string {
	t := theme.Active
	sum := a.book.Summary()

	leftoverColor := t.Green
	if sum.Leftover < 0 {
		leftoverColor = t.Red
	}

	top := components.MetricCardRow([]components.Metric{
		{Label: "Income", Value: cli.FormatCurrency(sum.Income)},
		{Label: "Fixed", Value: cli.FormatCurrency(sum.SumFixed), Color: t.FixedColor()},
		{Label: "Variable", Value: cli.FormatCurrency(sum.SumVariable), Color: t.VariableColor()},
	}, cw)
	bottom := components.MetricCardRow([]components.Metric{
		{Label: "Total expenses", Value: cli.FormatCurrency(sum.Total)},
		{Label: "Leftover", Value: cli.FormatCurrency(sum.Leftover), Color: leftoverColor},
		{Label: "Savings rate", Value: sum.SavingsRateText(), Color: components.RateColor(sum.SavingsRate)},
	}, cw)

	inner := components.CardInnerWidth(cw)
	savings := components.ContentCard("Savings rate",
		components.SavingsBar(sum.SavingsRate, sum.SavingsRateText(), inner), cw, false)
	chart := components.ContentCard("Where the money goes",
		components.ProportionChart(pipeline.ChartSlices(sum), inner), cw, false)

	return lipgloss.JoinVertical(lipgloss.Left, top, bottom, savings, chart)
}
