package tui

import (
	"testing"

	"github.com/theirongolddev/bplan/internal/config"
)

func TestSetupValues_RoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	vals := SetupValuesFrom(cfg)
	if vals.CurrencySymbol != "$" || vals.Locale != "en-US" || vals.Backend != "sqlite" {
		t.Fatalf("seeded values = %+v", *vals)
	}

	vals.CurrencySymbol = " € "
	vals.Locale = " de-DE"
	vals.Backend = "file"
	vals.Theme = "tokyo-night"

	got := vals.Apply(cfg)
	if got.Display.CurrencySymbol != "€" {
		t.Errorf("CurrencySymbol = %q, want €", got.Display.CurrencySymbol)
	}
	if got.Display.Locale != "de-DE" {
		t.Errorf("Locale = %q, want de-DE", got.Display.Locale)
	}
	if got.General.Backend != "file" || got.Appearance.Theme != "tokyo-night" {
		t.Errorf("Apply = %+v", got)
	}
	if got.General.ExportFile != cfg.General.ExportFile {
		t.Errorf("ExportFile changed to %q", got.General.ExportFile)
	}
}

func TestValidateLocale(t *testing.T) {
	for _, ok := range []string{"en-US", "de-DE", "fr"} {
		if err := validateLocale(ok); err != nil {
			t.Errorf("validateLocale(%q) = %v", ok, err)
		}
	}
	if err := validateLocale("not a locale!"); err == nil {
		t.Error("validateLocale accepted garbage")
	}
}
