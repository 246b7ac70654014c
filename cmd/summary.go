package cmd

import (
	"fmt"

	"github.com/theirongolddev/bplan/internal/cli"
	"github.com/theirongolddev/bplan/internal/model"
	"github.com/theirongolddev/bplan/internal/pipeline"

	"github.com/spf13/cobra"
)

const chartWidth = 50

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show both lists, the totals and the spending chart",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	state := s.book.State()
	sum := s.book.Summary()

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY BUDGET"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.EntryTable(model.Fixed, state.Fixed)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.EntryTable(model.Variable, state.Variable)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.SummaryTable(sum)))
	fmt.Println()
	fmt.Print(cli.RenderChart(pipeline.ChartSlices(sum), chartWidth))
	fmt.Println()

	if sum.Leftover < 0 {
		fmt.Printf("  Over budget by %s\n\n", cli.FormatCurrency(-sum.Leftover))
	}
	return nil
}
