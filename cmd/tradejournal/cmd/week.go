package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tradejournal/calendar"
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/view"
	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show one calendar week of trades",
	Long: `Show the trades of one week laid out by weekday.

The week starts on calendar.week_start in calendar.timezone.

Examples:
  tradejournal week
  tradejournal week --offset -1
  tradejournal week --date 2024-01-03 --org > review.org`,
	Args: cobra.NoArgs,
	RunE: runWeek,
}

var (
	weekDate   string
	weekOffset int
	weekOrg    bool
	weekNotes  []string
	weekNext   []string
)

func init() {
	rootCmd.AddCommand(weekCmd)

	weekCmd.Flags().StringVar(&weekDate, "date", "", "any day in the week (YYYY-MM-DD, default today)")
	weekCmd.Flags().IntVarP(&weekOffset, "offset", "o", 0, "weeks to move from --date (negative is earlier)")
	weekCmd.Flags().BoolVar(&weekOrg, "org", false, "print an Org-mode weekly review instead of the table")
	weekCmd.Flags().StringArrayVar(&weekNotes, "note", nil, "observation for the Org review (repeatable)")
	weekCmd.Flags().StringArrayVar(&weekNext, "next", nil, "next action for the Org review (repeatable)")
}

func selectedWeek() (calendar.Week, error) {
	loc := location()
	day := time.Now().In(loc)
	if weekDate != "" {
		start, _, err := calendar.DayBounds(loc, weekDate)
		if err != nil {
			return calendar.Week{}, fmt.Errorf("date: %w", err)
		}
		day = start
	}
	return calendar.WeekOf(day, firstWeekday()).Shift(weekOffset), nil
}

func runWeek(cmd *cobra.Command, args []string) error {
	week, err := selectedWeek()
	if err != nil {
		return err
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	trades, err := j.Between(cmd.Context(), week.Start, week.End())
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	if weekOrg {
		r := journal.NewWeeklyReview(week, cfg.Account.Currency, trades)
		r.Notes = weekNotes
		r.NextActions = weekNext
		return r.WriteOrg(cmd.OutOrStdout())
	}
	return view.Week(cmd.OutOrStdout(), week, trades)
}
