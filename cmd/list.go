package cmd

import (
	"fmt"

	"github.com/theirongolddev/bplan/internal/cli"
	"github.com/theirongolddev/bplan/internal/model"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list [fixed|variable]",
	Aliases: []string{"ls"},
	Short:   "List expense entries with their positions",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, args []string) error {
	kinds := []model.ListKind{model.Fixed, model.Variable}
	if len(args) == 1 {
		kind, err := model.ParseListKind(args[0])
		if err != nil {
			return err
		}
		kinds = []model.ListKind{kind}
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	state := s.book.State()
	for _, kind := range kinds {
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.EntryTable(kind, state.List(kind))))
	}
	fmt.Println()
	return nil
}
