package cmd

import (
	"fmt"

	"github.com/theirongolddev/bplan/internal/cli"

	"github.com/spf13/cobra"
)

var incomeCmd = &cobra.Command{
	Use:   "income [AMOUNT]",
	Short: "Show or set the monthly income",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIncome,
}

func init() {
	rootCmd.AddCommand(incomeCmd)
}

func runIncome(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if len(args) == 0 {
		fmt.Printf("  Monthly income: %s\n", cli.FormatCurrency(s.book.State().Income))
		return nil
	}
	return s.book.SetIncome(args[0])
}
