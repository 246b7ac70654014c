// Package pipeline derives the budget summary and chart data from a State.
package pipeline

import (
	"github.com/theirongolddev/bplan/internal/model"

	"github.com/shopspring/decimal"
)

// Chart slice labels, in display order.
const (
	LabelFixed    = "Fixed"
	LabelVariable = "Variable"
	LabelLeftover = "Leftover"
)

// Summarize computes totals, leftover and savings rate for a state.
// Leftover is not clamped and may be negative.
func Summarize(s model.State) model.Summary {
	var sum model.Summary
	sum.Income = s.Income
	sum.SumFixed = SumEntries(s.Fixed)
	sum.SumVariable = SumEntries(s.Variable)
	sum.Total = sum.SumFixed + sum.SumVariable
	sum.Leftover = sum.Income - sum.Total

	if sum.Income > 0 {
		sum.SavingsRate = sum.Leftover / sum.Income * 100
	}

	return sum
}

// SumEntries adds the amounts of a list.
// Decimal accumulation keeps 0.1 + 0.2 at 0.3 so totals print the way users typed them.
func SumEntries(entries []model.Entry) float64 {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	f, _ := total.Float64()
	return f
}

// ChartSlices returns the three chart wedges: fixed, variable and leftover.
// The leftover wedge is floored at zero because a pie cannot show a deficit;
// the textual summary keeps the negative value.
func ChartSlices(sum model.Summary) []model.Slice {
	leftover := sum.Income - sum.Total
	if leftover < 0 {
		leftover = 0
	}
	return []model.Slice{
		{Label: LabelFixed, Value: sum.SumFixed},
		{Label: LabelVariable, Value: sum.SumVariable},
		{Label: LabelLeftover, Value: leftover},
	}
}

// Shares converts slice values into fractions of their total (0-1).
// All zeros when the total is zero.
func Shares(slices []model.Slice) []float64 {
	total := 0.0
	for _, s := range slices {
		total += s.Value
	}

	shares := make([]float64, len(slices))
	if total <= 0 {
		return shares
	}
	for i, s := range slices {
		shares[i] = s.Value / total
	}
	return shares
}
