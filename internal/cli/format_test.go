package cli

import "testing"

func TestMoneyFormat(t *testing.T) {
	usd := NewMoney("$", "en-US")
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1500, "$1,500.00"},
		{1234567.891, "$1,234,567.89"},
		{0.5, "$0.50"},
		{-200, "$-200.00"},
	}
	for _, tc := range cases {
		if got := usd.Format(tc.in); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMoneyFormat_Locale(t *testing.T) {
	eur := NewMoney("€", "de-DE")
	if got := eur.Format(1234.5); got != "€1.234,50" {
		t.Errorf("de-DE Format(1234.5) = %q, want €1.234,50", got)
	}
}

func TestMoneyFormat_BadLocaleFallsBack(t *testing.T) {
	m := NewMoney("$", "not a locale!!")
	if got := m.Format(1000); got != "$1,000.00" {
		t.Errorf("Format = %q, want $1,000.00", got)
	}
}

func TestFormatCurrency_UsesActive(t *testing.T) {
	defer SetCurrency("$", "en-US")

	SetCurrency("£", "en-GB")
	if got := FormatCurrency(12); got != "£12.00" {
		t.Errorf("FormatCurrency = %q, want £12.00", got)
	}
}

func TestFormatShareAndBytes(t *testing.T) {
	if got := FormatShare(0.4); got != "40.0%" {
		t.Errorf("FormatShare(0.4) = %q", got)
	}
	if got := FormatBytes(312); got != "312 B" {
		t.Errorf("FormatBytes(312) = %q", got)
	}
}
