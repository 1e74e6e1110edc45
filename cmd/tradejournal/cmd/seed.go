package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the journal with fake trades",
	Long: `Seed writes plausible random trades for trying out the views.

Example:
  tradejournal seed --count 50 --days 30 --db demo.sqlite`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

var (
	seedCount int
	seedDays  int
	seedValue int64
)

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().IntVarP(&seedCount, "count", "n", 50, "number of trades")
	seedCmd.Flags().IntVar(&seedDays, "days", 30, "spread trades over this many days before now")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 0, "random seed (default time based)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if seedCount <= 0 {
		return fmt.Errorf("count must be positive")
	}
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	rnd := rand.New(rand.NewSource(seedValue))
	for _, t := range journal.FakeTrades(seedCount, time.Now().In(location()), seedDays, rnd) {
		if _, err := j.Create(cmd.Context(), t); err != nil {
			return fmt.Errorf("seed trade: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Seeded %d trades into %s\n", seedCount, cfg.Journal.DBPath)
	return nil
}
