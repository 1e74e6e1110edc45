package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tradejournal/calendar"
	"github.com/rustyeddy/tradejournal/economics"
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/stats"
	"github.com/rustyeddy/tradejournal/view"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard statistics",
	Long: `Show total trades, win rate, profit factor, expectancy and R figures.

Examples:
  tradejournal stats
  tradejournal stats --from 2024-01-01 --to 2024-03-31`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var (
	statsFrom string
	statsTo   string
)

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsFrom, "from", "", "first day included (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "last day included (YYYY-MM-DD)")
}

func runStats(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	trades, err := j.Trades(cmd.Context())
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}
	trades, err = filterDays(trades, statsFrom, statsTo)
	if err != nil {
		return err
	}

	// Summarize wants oldest first for the losing streak.
	econ := make([]economics.TradeEconomics, 0, len(trades))
	for i := len(trades) - 1; i >= 0; i-- {
		e, err := trades[i].Economics()
		if err != nil {
			return fmt.Errorf("trade %s: %w", trades[i].ID, err)
		}
		econ = append(econ, e)
	}

	return view.Dashboard(cmd.OutOrStdout(), cfg.Account.Currency, stats.Summarize(econ))
}

// filterDays keeps trades entered between from and to, both inclusive
// and both optional.
func filterDays(trades []journal.Trade, from, to string) ([]journal.Trade, error) {
	loc := location()

	var start, end time.Time
	if from != "" {
		s, _, err := calendar.DayBounds(loc, from)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		start = s
	}
	if to != "" {
		_, e, err := calendar.DayBounds(loc, to)
		if err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
		end = e
	}

	var out []journal.Trade
	for _, t := range trades {
		if !start.IsZero() && t.EntryTime.Before(start) {
			continue
		}
		if !end.IsZero() && !t.EntryTime.Before(end) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
