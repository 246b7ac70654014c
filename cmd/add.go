package cmd

import (
	"github.com/theirongolddev/bplan/internal/model"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add LIST NAME AMOUNT",
	Short: "Add an entry to the fixed or variable list",
	Example: `  bplan add fixed Rent 1200
  bplan add var "Eating out" 150.50`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	kind, err := model.ParseListKind(args[0])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	return s.book.AddEntry(kind, args[1], args[2])
}
