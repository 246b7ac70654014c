package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/bplan/internal/budget"
	"github.com/theirongolddev/bplan/internal/model"
	"github.com/theirongolddev/bplan/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagEditName   string
	flagEditAmount string
)

var editCmd = &cobra.Command{
	Use:   "edit LIST N",
	Short: "Edit the N-th entry of a list",
	Long: `Edit the N-th entry of a list (see ` + "`bplan list`" + `).

With --name and/or --amount the entry is updated directly; omitted fields
keep their current value. Without flags a form opens prefilled with the
current values. Press Esc to cancel without changes.`,
	Args: cobra.ExactArgs(2),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagEditName, "name", "", "New name")
	editCmd.Flags().StringVar(&flagEditAmount, "amount", "", "New amount")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	kind, err := model.ParseListKind(args[0])
	if err != nil {
		return err
	}
	idx, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	cur, ok := s.book.Entry(kind, idx)
	if !ok {
		return fmt.Errorf("no %s entry at position %d", kind, idx+1)
	}

	name, amount := cur.Name, tui.FormatAmountInput(cur.Amount)
	var res budget.EditResult

	if cmd.Flags().Changed("name") || cmd.Flags().Changed("amount") {
		if cmd.Flags().Changed("name") {
			name = flagEditName
		}
		if cmd.Flags().Changed("amount") {
			amount = flagEditAmount
		}
		res = budget.Submitted(name, amount)
	} else {
		res, err = promptEdit(kind, name, amount)
		if err != nil {
			return err
		}
	}

	changed, err := s.book.EditEntry(kind, idx, res)
	if err != nil {
		return err
	}
	if !changed && !flagQuiet {
		fmt.Println("  No changes made")
	}
	return nil
}

// promptEdit runs the two-field edit form. Esc maps to a cancelled result.
func promptEdit(kind model.ListKind, name, amount string) (budget.EditResult, error) {
	form := tui.NewEntryForm("Edit "+kind.String()+" expense", &name, &amount)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return budget.Cancelled(), nil
		}
		return budget.EditResult{}, fmt.Errorf("edit form: %w", err)
	}
	return budget.Submitted(name, amount), nil
}
