package model

import (
	"errors"
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		ok  bool
	}{
		{"0", 0, true},
		{"1200", 1200, true},
		{" 12.5 ", 12.5, true},
		{"0.01", 0.01, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"-1", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1.2.3", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.out, got, err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("%q expected ErrInvalidAmount, got %v", tc.in, err)
		}
	}
}

func TestParseListKind(t *testing.T) {
	cases := map[string]ListKind{
		"fixed":    Fixed,
		"F":        Fixed,
		"variable": Variable,
		" var ":    Variable,
		"v":        Variable,
	}
	for in, want := range cases {
		got, err := ParseListKind(in)
		if err != nil {
			t.Fatalf("ParseListKind(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseListKind(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseListKind("savings"); !errors.Is(err, ErrUnknownList) {
		t.Fatalf("ParseListKind(savings) err = %v, want ErrUnknownList", err)
	}
}

func TestStateCloneIsDeep(t *testing.T) {
	s := State{Income: 100, Fixed: []Entry{{"Rent", 50}}}
	c := s.Clone()
	c.Fixed[0].Amount = 75

	if s.Fixed[0].Amount != 50 {
		t.Fatalf("clone aliases original: Fixed[0].Amount = %v", s.Fixed[0].Amount)
	}
	if c.Variable == nil {
		t.Fatal("Clone should return a non-nil Variable list")
	}
	if !s.Equal(State{Income: 100, Fixed: []Entry{{"Rent", 50}}, Variable: []Entry{}}) {
		t.Fatal("nil and empty lists should compare equal")
	}
}

func TestStateWithList(t *testing.T) {
	s := DefaultState()
	next := s.WithList(Variable, []Entry{{"Food", 300}})

	if len(s.Variable) != 0 {
		t.Fatalf("WithList mutated receiver: %v", s.Variable)
	}
	if got := next.List(Variable); len(got) != 1 || got[0].Name != "Food" {
		t.Fatalf("List(Variable) = %v", got)
	}
}

func TestSavingsRateText(t *testing.T) {
	cases := []struct {
		rate float64
		want string
	}{
		{50, "50.0%"},
		{0, "0.0%"},
		{-20, "-20.0%"},
		{33.333333, "33.3%"},
		{math.Inf(-1), "-Inf%"},
		{math.NaN(), "NaN%"},
	}
	for _, tc := range cases {
		if got := (Summary{SavingsRate: tc.rate}).SavingsRateText(); got != tc.want {
			t.Errorf("SavingsRateText(%v) = %q, want %q", tc.rate, got, tc.want)
		}
	}
}

func TestSummaryFinite(t *testing.T) {
	if !(Summary{Income: 3000, Total: 1200, Leftover: 1800, SavingsRate: 60}).Finite() {
		t.Error("ordinary summary reported as not finite")
	}
	if (Summary{Income: 1, Leftover: -1e308, SavingsRate: math.Inf(-1)}).Finite() {
		t.Error("infinite savings rate reported as finite")
	}
	if (Summary{SumFixed: 1e308, SumVariable: 1e308, Total: math.Inf(1)}).Finite() {
		t.Error("overflowed total reported as finite")
	}
}
