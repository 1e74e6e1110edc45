package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/rustyeddy/tradejournal/config"
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tradejournal",
	Short: "A trading journal with exact trade economics",
	Long: `Tradejournal records closed trades and works out what they earned.

It provides tools for:
  - Recording, editing and reviewing trades
  - Net profit, risk and R-multiple for every trade
  - A pip-based live estimate before a trade is saved
  - Weekly calendar views and Org-mode weekly reviews
  - Dashboard statistics (win rate, profit factor, expectancy)
  - CSV and Org export, CSV import`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

var (
	cfgFile string
	dbPath  string
	verbose bool

	cfg *config.Config
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "tradejournal.yaml", "path to config file (optional)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "path to SQLite journal DB (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.Journal.DBPath = dbPath
	}
	if verbose {
		c.Log.Level = "debug"
	}
	cfg = c
	setupLogger(cfg.Log)
	slog.Debug("config loaded", "path", cfgFile, "db", cfg.Journal.DBPath)
	return nil
}

func setupLogger(lc config.LogConfig) {
	var level slog.Level
	switch lc.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if lc.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func openJournal() (*journal.Cache, error) {
	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return journal.NewCache(j, slog.Default()), nil
}

// location has already been checked by config validation.
func location() *time.Location {
	loc, err := cfg.Location()
	if err != nil {
		return time.Local
	}
	return loc
}

func firstWeekday() time.Weekday {
	d, err := cfg.FirstWeekday()
	if err != nil {
		return time.Monday
	}
	return d
}
