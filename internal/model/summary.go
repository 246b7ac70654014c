package model

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Summary holds the values derived from a State.
type Summary struct {
	Income      float64
	SumFixed    float64
	SumVariable float64
	Total       float64
	Leftover    float64 // may be negative
	SavingsRate float64 // percent of income, 0 when income is 0
}

// SavingsRateText renders the rate with one decimal place, e.g. "50.0%".
func (s Summary) SavingsRateText() string {
	if !finite(s.SavingsRate) {
		return strconv.FormatFloat(s.SavingsRate, 'f', 1, 64) + "%"
	}
	return decimal.NewFromFloat(s.SavingsRate).StringFixed(1) + "%"
}

// Finite reports whether every derived value is a finite number.
// Amounts near the float64 limit can overflow when summed or divided.
func (s Summary) Finite() bool {
	for _, v := range []float64{s.Income, s.SumFixed, s.SumVariable, s.Total, s.Leftover, s.SavingsRate} {
		if !finite(v) {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Slice is one wedge of the proportion chart.
type Slice struct {
	Label string
	Value float64
}
