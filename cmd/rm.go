package cmd

import (
	"fmt"

	"github.com/theirongolddev/bplan/internal/model"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm LIST N",
	Aliases: []string{"delete"},
	Short:   "Delete the N-th entry of a list (see `bplan list`)",
	Args:    cobra.ExactArgs(2),
	RunE:    runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(_ *cobra.Command, args []string) error {
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

	e, _ := s.book.Entry(kind, idx)
	removed, err := s.book.DeleteEntry(kind, idx)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("no %s entry at position %d", kind, idx+1)
	}
	if !flagQuiet {
		fmt.Printf("  Deleted %s\n", e.Name)
	}
	return nil
}
