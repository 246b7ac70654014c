// Package cmd implements the bplan CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/bplan/internal/cli"
	"github.com/theirongolddev/bplan/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", cfg.DataDir())
	fmt.Printf("    Backend:        %s\n", cfg.General.Backend)
	fmt.Printf("    Export file:    %s\n", exportPath(cfg))
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency symbol: %s\n", cfg.Display.CurrencySymbol)
	fmt.Printf("    Locale:          %s\n", cfg.Display.Locale)
	fmt.Printf("    Example:         %s\n", cli.FormatCurrency(1234567.89))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Println()

	fmt.Printf("  Environment overrides: %s, %s, %s\n", config.EnvDataDir, config.EnvBackend, config.EnvLogLevel)
	fmt.Println("  Run `bplan setup` to reconfigure.")
	return nil
}
