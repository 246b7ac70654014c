package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace the whole budget with a JSON export (- for stdin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	var r io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening import: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.book.Import(r); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("  Imported %s\n", args[0])
	}
	return nil
}
