package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/theirongolddev/bplan/internal/tui"
	"github.com/theirongolddev/bplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive budget dashboard",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	// Logs go to a file so they don't tear the alt screen.
	var logOut io.Writer = io.Discard
	dataDir := cfg.DataDir()
	if err := os.MkdirAll(dataDir, 0o750); err == nil {
		f, err := os.OpenFile(filepath.Join(dataDir, "bplan.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err == nil {
			defer func() { _ = f.Close() }()
			logOut = f
		}
	}
	log := newLogger(cfg, logOut)

	book, closeFn, err := openBook(cfg, log)
	if err != nil {
		return err
	}
	defer closeFn()

	app := tui.NewApp(book, tui.Options{
		ExportPath: exportPath(cfg),
		Location:   fmt.Sprintf("%s in %s", cfg.General.Backend, dataDir),
		Log:        log,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
