package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/bplan/internal/model"
	"github.com/theirongolddev/bplan/internal/pipeline"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
)

// SliceColors maps chart labels to their segment color.
var SliceColors = map[string]lipgloss.Color{
	pipeline.LabelFixed:    ColorBlue,
	pipeline.LabelVariable: ColorOrange,
	pipeline.LabelLeftover: ColorGreen,
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	goodStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	badStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// Separator is a row value that renders as a horizontal rule.
const Separator = "---"

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

func columnWidths(t Table, numCols int) []int {
	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
		return widths
	}
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	return widths
}

func rule(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(dimStyle.Render(left))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < len(widths)-1 {
			b.WriteString(dimStyle.Render(mid))
		}
	}
	b.WriteString(dimStyle.Render(right))
	b.WriteString("\n")
}

func pad(cell string, w int, right bool) string {
	gap := strings.Repeat(" ", max(w-lipgloss.Width(cell), 0))
	if right {
		return " " + gap + cell + " "
	}
	return " " + cell + gap + " "
}

// RenderTable renders a bordered table with headers and rows.
// The first column is left-aligned, the rest right-aligned.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 {
		numCols = len(t.Rows[0])
	}
	widths := columnWidths(t, numCols)

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule(&b, widths, "╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(pad(h, widths[i], i > 0)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule(&b, widths, "├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == Separator {
			rule(&b, widths, "├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(valueStyle.Render(pad(cell, widths[i], i > 0)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule(&b, widths, "╰", "┴", "╯")
	return b.String()
}

// EntryTable builds the table for one expense list. Indices are 1-based.
func EntryTable(kind model.ListKind, entries []model.Entry) Table {
	t := Table{
		Title:   kind.Title() + " expenses",
		Headers: []string{"#", "Name", "Amount"},
	}
	for i, e := range entries {
		t.Rows = append(t.Rows, []string{fmt.Sprintf("%d", i+1), e.Name, FormatCurrency(e.Amount)})
	}
	if len(entries) == 0 {
		t.Rows = append(t.Rows, []string{"", "(none)", ""})
		return t
	}
	t.Rows = append(t.Rows, []string{Separator}, []string{"", "Total", FormatCurrency(pipeline.SumEntries(entries))})
	return t
}

// SummaryTable builds the summary figures table.
func SummaryTable(s model.Summary) Table {
	return Table{
		Headers: []string{"Summary", "Value"},
		Rows: [][]string{
			{"Income", FormatCurrency(s.Income)},
			{"Fixed", FormatCurrency(s.SumFixed)},
			{"Variable", FormatCurrency(s.SumVariable)},
			{Separator},
			{"Total expenses", FormatCurrency(s.Total)},
			{"Leftover", FormatCurrency(s.Leftover)},
			{"Savings rate", s.SavingsRateText()},
		},
	}
}

// RenderLeftover colors the leftover figure by sign.
func RenderLeftover(v float64) string {
	if v < 0 {
		return badStyle.Render(FormatCurrency(v))
	}
	return goodStyle.Render(FormatCurrency(v))
}

// SegmentWidths splits width cells across shares, largest remainder first.
func SegmentWidths(shares []float64, width int) []int {
	out := make([]int, len(shares))
	var sum float64
	for _, s := range shares {
		sum += s
	}
	if sum == 0 || width <= 0 {
		return out
	}

	used := 0
	rem := make([]float64, len(shares))
	for i, s := range shares {
		exact := s / sum * float64(width)
		out[i] = int(math.Floor(exact))
		rem[i] = exact - float64(out[i])
		used += out[i]
	}
	for ; used < width; used++ {
		best := 0
		for i := range rem {
			if rem[i] > rem[best] {
				best = i
			}
		}
		out[best]++
		rem[best] = -1
	}
	return out
}

// RenderChart renders the fixed/variable/leftover proportions as a
// stacked bar with a legend. An all-zero chart renders an empty track.
func RenderChart(slices []model.Slice, width int) string {
	shares := pipeline.Shares(slices)
	cells := SegmentWidths(shares, width)

	var b strings.Builder
	b.WriteString("  ")
	drawn := 0
	for i, sl := range slices {
		if cells[i] == 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(SliceColors[sl.Label])
		b.WriteString(style.Render(strings.Repeat("█", cells[i])))
		drawn += cells[i]
	}
	if drawn < width {
		b.WriteString(dimStyle.Render(strings.Repeat("░", width-drawn)))
	}
	b.WriteString("\n")

	for i, sl := range slices {
		swatch := lipgloss.NewStyle().Foreground(SliceColors[sl.Label]).Render("■")
		fmt.Fprintf(&b, "  %s %s %s %s\n",
			swatch,
			valueStyle.Render(sl.Label+":"),
			valueStyle.Render(FormatCurrency(sl.Value)),
			mutedStyle.Render("("+FormatShare(shares[i])+")"),
		)
	}
	return b.String()
}
