package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/theirongolddev/bplan/internal/budget"
	"github.com/theirongolddev/bplan/internal/cli"
	"github.com/theirongolddev/bplan/internal/config"
	"github.com/theirongolddev/bplan/internal/model"
	"github.com/theirongolddev/bplan/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagBackend string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:          "bplan",
	Short:        "Monthly budget planner",
	Long:         "Track monthly income, fixed and variable expenses, and see what is left over.",
	RunE:         runSummary,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default $XDG_DATA_HOME/bplan)")
	rootCmd.PersistentFlags().StringVarP(&flagBackend, "backend", "b", "", "Storage backend: sqlite or file")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only print what was asked for")
	rootCmd.SetFlagErrorFunc(amountFlagError)
}

// amountFlagError reports a negative amount such as "-5", which pflag reads
// as an unknown shorthand flag, as an invalid amount.
func amountFlagError(_ *cobra.Command, err error) error {
	const prefix = "unknown shorthand flag: '"
	msg := err.Error()
	if strings.HasPrefix(msg, prefix) && len(msg) > len(prefix) {
		if c := msg[len(prefix)]; (c >= '0' && c <= '9') || c == '.' {
			return model.ErrInvalidAmount
		}
	}
	return err
}

// loadConfig reads .env, the config file and environment, then applies
// command-line flags. A broken config file falls back to defaults.
func loadConfig() config.Config {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: %v (using defaults)\n", err)
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	if flagBackend != "" {
		cfg.General.Backend = flagBackend
	}

	cli.SetCurrency(cfg.Display.CurrencySymbol, cfg.Display.Locale)
	return cfg
}

// newLogger builds the diagnostic logger at the configured level.
func newLogger(cfg config.Config, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)
	return log
}

// openBook opens the configured slot and loads the saved budget.
// The returned close function releases the slot.
func openBook(cfg config.Config, log *logrus.Logger, opts ...budget.Option) (*budget.Book, func(), error) {
	slot, err := store.Open(cfg.General.Backend, cfg.DataDir(), log)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s storage: %w", cfg.General.Backend, err)
	}

	opts = append([]budget.Option{budget.WithLogger(log)}, opts...)
	book := budget.New(slot, opts...)
	book.Load()

	closeFn := func() {
		if err := slot.Close(); err != nil {
			log.WithError(err).Warn("closing storage")
		}
	}
	return book, closeFn, nil
}

// session bundles what a one-shot command needs.
type session struct {
	cfg   config.Config
	log   *logrus.Logger
	book  *budget.Book
	close func()
}

// openSession loads config and the budget for a one-shot command. Logs go
// to stderr and, unless --quiet, a one-line summary is printed after every
// successful change.
func openSession() (*session, error) {
	cfg := loadConfig()
	log := newLogger(cfg, os.Stderr)

	var opts []budget.Option
	if !flagQuiet {
		opts = append(opts, budget.WithRenderer(budget.RendererFunc(printSummaryLine)))
	}
	book, closeFn, err := openBook(cfg, log, opts...)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, log: log, book: book, close: closeFn}, nil
}

func printSummaryLine(_ model.State, s model.Summary) {
	fmt.Printf("  Income %s  Expenses %s  Leftover %s  (%s saved)\n",
		cli.FormatCurrency(s.Income),
		cli.FormatCurrency(s.Total),
		cli.RenderLeftover(s.Leftover),
		s.SavingsRateText(),
	)
}

// parseIndex converts a 1-based CLI position into a list index.
func parseIndex(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q (want 1, 2, ...)", raw)
	}
	return n - 1, nil
}

func exportPath(cfg config.Config) string {
	p := cfg.General.ExportFile
	if p == "" {
		p = config.DefaultConfig().General.ExportFile
	}
	if filepath.IsAbs(p) {
		return p
	}
	wd, err := os.Getwd()
	if err != nil {
		return p
	}
	return filepath.Join(wd, p)
}
