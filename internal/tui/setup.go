package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/bplan/internal/config"
	"github.com/theirongolddev/bplan/internal/store"
	"github.com/theirongolddev/bplan/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"golang.org/x/text/language"
)

// SetupValues holds the answers of the setup wizard.
type SetupValues struct {
	CurrencySymbol string
	Locale         string
	Backend        string
	Theme          string
}

// SetupValuesFrom seeds the wizard with the current configuration.
func SetupValuesFrom(cfg config.Config) *SetupValues {
	return &SetupValues{
		CurrencySymbol: cfg.Display.CurrencySymbol,
		Locale:         cfg.Display.Locale,
		Backend:        cfg.General.Backend,
		Theme:          cfg.Appearance.Theme,
	}
}

func validateLocale(s string) error {
	if _, err := language.Parse(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("unknown locale %q", s)
	}
	return nil
}

// NewSetupForm builds the first-run wizard bound to vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := huh.NewOptions(theme.Names()...)
	backendOpts := huh.NewOptions(store.Backends()...)

	return newForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to bplan").
				Description("A monthly budget planner.\nLet's set up a few things."),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Currency symbol").
				Value(&vals.CurrencySymbol).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("enter a symbol")
					}
					return nil
				}),
			huh.NewInput().
				Title("Number format locale").
				Description("BCP 47 tag, e.g. en-US, de-DE").
				Value(&vals.Locale).
				Validate(validateLocale),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Storage backend").
				Options(backendOpts...).
				Value(&vals.Backend),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	)
}

// Apply copies the wizard answers onto cfg.
func (v SetupValues) Apply(cfg config.Config) config.Config {
	cfg.Display.CurrencySymbol = strings.TrimSpace(v.CurrencySymbol)
	cfg.Display.Locale = strings.TrimSpace(v.Locale)
	cfg.General.Backend = v.Backend
	cfg.Appearance.Theme = v.Theme
	return cfg
}
