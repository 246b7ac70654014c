package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/theirongolddev/bplan/internal/cli"
	"github.com/theirongolddev/bplan/internal/store"

	"github.com/spf13/cobra"
)

var flagExportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the budget as JSON (default budget-data.json)",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Output path, - for stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if flagExportOutput == "-" {
		_, err := s.book.Export(os.Stdout)
		return err
	}

	path := flagExportOutput
	if path == "" {
		path = exportPath(s.cfg)
	}

	var buf bytes.Buffer
	n, err := s.book.Export(&buf)
	if err != nil {
		return err
	}
	if err := store.WriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}

	s.log.WithField("path", path).WithField("bytes", n).Info("exported")
	if !flagQuiet {
		fmt.Printf("  Exported %s to %s\n", cli.FormatBytes(n), path)
	}
	return nil
}
