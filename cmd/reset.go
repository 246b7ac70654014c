package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/bplan/internal/budget"
	"github.com/theirongolddev/bplan/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear income and both lists",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	confirmed := flagResetYes
	if !confirmed {
		if err := tui.NewResetForm(&confirmed).Run(); err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("confirm: %w", err)
		}
	}

	err = s.book.ResetAll(confirmed)
	if errors.Is(err, budget.ErrNotConfirmed) {
		fmt.Println("  Reset cancelled")
		return nil
	}
	return err
}
