package pipeline

import (
	"math"
	"testing"

	"github.com/theirongolddev/bplan/internal/model"
)

func TestSummarize_Scenarios(t *testing.T) {
	cases := []struct {
		name         string
		state        model.State
		wantTotal    float64
		wantLeftover float64
		wantRate     string
	}{
		{
			name: "half saved",
			state: model.State{
				Income:   3000,
				Fixed:    []model.Entry{{Name: "Rent", Amount: 1200}},
				Variable: []model.Entry{{Name: "Food", Amount: 300}},
			},
			wantTotal:    1500,
			wantLeftover: 1500,
			wantRate:     "50.0%",
		},
		{
			name:         "empty budget",
			state:        model.DefaultState(),
			wantTotal:    0,
			wantLeftover: 0,
			wantRate:     "0.0%",
		},
		{
			name: "deficit",
			state: model.State{
				Income: 1000,
				Fixed:  []model.Entry{{Name: "Rent", Amount: 1200}},
			},
			wantTotal:    1200,
			wantLeftover: -200,
			wantRate:     "-20.0%",
		},
		{
			name: "expenses without income",
			state: model.State{
				Variable: []model.Entry{{Name: "Food", Amount: 50}},
			},
			wantTotal:    50,
			wantLeftover: -50,
			wantRate:     "0.0%",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sum := Summarize(tc.state)
			if sum.Total != tc.wantTotal {
				t.Errorf("Total = %v, want %v", sum.Total, tc.wantTotal)
			}
			if sum.Leftover != tc.wantLeftover {
				t.Errorf("Leftover = %v, want %v", sum.Leftover, tc.wantLeftover)
			}
			if got := sum.SavingsRateText(); got != tc.wantRate {
				t.Errorf("SavingsRateText = %q, want %q", got, tc.wantRate)
			}
			if math.IsNaN(sum.SavingsRate) || math.IsInf(sum.SavingsRate, 0) {
				t.Errorf("SavingsRate is not finite: %v", sum.SavingsRate)
			}
		})
	}
}

func TestSummarize_Invariants(t *testing.T) {
	states := []model.State{
		model.DefaultState(),
		{Income: 10, Fixed: []model.Entry{{Name: "a", Amount: 0.1}, {Name: "b", Amount: 0.2}}, Variable: []model.Entry{{Name: "c", Amount: 0.3}}},
		{Income: 0, Fixed: []model.Entry{{Name: "a", Amount: 999.99}}},
		{Income: 12345.67, Variable: []model.Entry{{Name: "x", Amount: 1}, {Name: "y", Amount: 2}, {Name: "z", Amount: 3}}},
	}
	for i, s := range states {
		sum := Summarize(s)
		if sum.SumFixed+sum.SumVariable != sum.Total {
			t.Errorf("state %d: SumFixed+SumVariable = %v, Total = %v", i, sum.SumFixed+sum.SumVariable, sum.Total)
		}
		if sum.Income-sum.Total != sum.Leftover {
			t.Errorf("state %d: Income-Total = %v, Leftover = %v", i, sum.Income-sum.Total, sum.Leftover)
		}
	}
}

func TestSumEntries_NoFloatDrift(t *testing.T) {
	got := SumEntries([]model.Entry{{Name: "a", Amount: 0.1}, {Name: "b", Amount: 0.2}})
	if got != 0.3 {
		t.Fatalf("SumEntries(0.1, 0.2) = %v, want 0.3", got)
	}
}

func TestChartSlices_ClampsLeftover(t *testing.T) {
	sum := Summarize(model.State{
		Income: 1000,
		Fixed:  []model.Entry{{Name: "Rent", Amount: 1200}},
	})

	slices := ChartSlices(sum)
	if len(slices) != 3 {
		t.Fatalf("len(slices) = %d, want 3", len(slices))
	}
	if slices[0].Label != LabelFixed || slices[1].Label != LabelVariable || slices[2].Label != LabelLeftover {
		t.Fatalf("labels = %q %q %q", slices[0].Label, slices[1].Label, slices[2].Label)
	}
	if slices[2].Value != 0 {
		t.Errorf("leftover slice = %v, want 0", slices[2].Value)
	}
	if sum.Leftover != -200 {
		t.Errorf("summary leftover = %v, want -200 (unclamped)", sum.Leftover)
	}
	if slices[0].Value != 1200 {
		t.Errorf("fixed slice = %v, want 1200", slices[0].Value)
	}
}

func TestShares(t *testing.T) {
	shares := Shares([]model.Slice{{Value: 1200}, {Value: 300}, {Value: 1500}})
	want := []float64{0.4, 0.1, 0.5}
	for i := range want {
		if math.Abs(shares[i]-want[i]) > 1e-9 {
			t.Errorf("share[%d] = %v, want %v", i, shares[i], want[i])
		}
	}

	zero := Shares(ChartSlices(Summarize(model.DefaultState())))
	for i, s := range zero {
		if s != 0 {
			t.Errorf("empty budget share[%d] = %v, want 0", i, s)
		}
	}
}
