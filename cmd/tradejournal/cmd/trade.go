package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/rustyeddy/tradejournal/calendar"
	"github.com/rustyeddy/tradejournal/economics"
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/market"
	"github.com/rustyeddy/tradejournal/view"
	"github.com/spf13/cobra"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Record and review individual trades",
	Long: `Record, edit, show, delete and list journaled trades.

Net profit, status and R-multiple are always computed from the prices;
they cannot be entered by hand.

Examples:
  tradejournal trade add --instrument EUR/USD --side buy --entry 1.1000 --exit 1.1050 \
      --size 10000 --stop 1.0980 --entry-time "2024-01-02 09:30" --exit-time "2024-01-02 11:00"
  tradejournal trade show 01HQZX3Y
  tradejournal trade list --day 2024-01-02`,
}

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a closed trade",
	Args:  cobra.NoArgs,
	RunE:  runTradeAdd,
}

var tradeEditCmd = &cobra.Command{
	Use:   "edit <trade-id>",
	Short: "Change fields of a recorded trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeEdit,
}

var tradeShowCmd = &cobra.Command{
	Use:   "show <trade-id>",
	Short: "Show every field of a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeShow,
}

var tradeDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeDelete,
}

var tradeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades grouped by date, newest first",
	Args:  cobra.NoArgs,
	RunE:  runTradeList,
}

var (
	addFlags  = &tradeFlags{}
	editFlags = &tradeFlags{}

	showOrg bool
	listDay string
)

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd, tradeEditCmd, tradeShowCmd, tradeDeleteCmd, tradeListCmd)

	addFlags.bind(tradeAddCmd)
	editFlags.bind(tradeEditCmd)

	tradeShowCmd.Flags().BoolVar(&showOrg, "org", false, "print as an Org-mode entry")
	tradeListCmd.Flags().StringVar(&listDay, "day", "", "only trades entered on this day (YYYY-MM-DD)")
}

// tradeFlags holds the editable fields of a trade as typed.
type tradeFlags struct {
	instrument string
	side       string
	entry      string
	exit       string
	size       string
	stop       string
	takeProfit string
	entryTime  string
	exitTime   string
	rationale  string
	review     string
	emotions   string
	tags       string
}

func (f *tradeFlags) bind(c *cobra.Command) {
	fs := c.Flags()
	fs.StringVarP(&f.instrument, "instrument", "i", "", "instrument, e.g. EUR/USD")
	fs.StringVarP(&f.side, "side", "s", "", "buy or sell")
	fs.StringVar(&f.entry, "entry", "", "entry price")
	fs.StringVar(&f.exit, "exit", "", "exit price")
	fs.StringVar(&f.size, "size", "", "position size")
	fs.StringVar(&f.stop, "stop", "", "initial stop loss (blank for none)")
	fs.StringVar(&f.takeProfit, "tp", "", "initial take profit (blank for none)")
	fs.StringVar(&f.entryTime, "entry-time", "", "entry time (RFC3339 or YYYY-MM-DD HH:MM)")
	fs.StringVar(&f.exitTime, "exit-time", "", "exit time (RFC3339 or YYYY-MM-DD HH:MM)")
	fs.StringVar(&f.rationale, "rationale", "", "why the trade was taken")
	fs.StringVar(&f.review, "review", "", "post-trade review")
	fs.StringVar(&f.emotions, "emotions", "", "how the trade felt")
	fs.StringVar(&f.tags, "tags", "", "comma separated tags")
}

// apply overwrites the fields of t whose flags were set on c.
func (f *tradeFlags) apply(c *cobra.Command, t *journal.Trade, loc *time.Location) error {
	set := c.Flags().Changed

	fields := fieldsOf(*t)
	if set("instrument") {
		fields.Instrument = market.Normalize(f.instrument)
	}
	if set("side") {
		fields.OrderType = f.side
	}
	if set("entry") {
		fields.EntryPrice = f.entry
	}
	if set("exit") {
		fields.ExitPrice = f.exit
	}
	if set("size") {
		fields.PositionSize = f.size
	}
	if set("stop") {
		fields.InitialStopLoss = f.stop
	}
	if set("tp") {
		fields.InitialTakeProfit = f.takeProfit
	}

	in, err := economics.ParseInput(fields)
	if err != nil {
		return err
	}
	t.Instrument = in.Instrument
	t.OrderType = in.OrderType
	t.EntryPrice = in.EntryPrice
	t.ExitPrice = in.ExitPrice
	t.PositionSize = in.PositionSize
	t.StopLoss = in.InitialStopLoss
	t.TakeProfit = in.InitialTakeProfit

	if set("entry-time") {
		if t.EntryTime, err = parseTime(f.entryTime, loc); err != nil {
			return fmt.Errorf("entry-time: %w", err)
		}
	}
	if set("exit-time") {
		if t.ExitTime, err = parseTime(f.exitTime, loc); err != nil {
			return fmt.Errorf("exit-time: %w", err)
		}
	}
	if set("rationale") {
		t.Rationale = f.rationale
	}
	if set("review") {
		t.Review = f.review
	}
	if set("emotions") {
		t.Emotions = f.emotions
	}
	if set("tags") {
		t.Tags = journal.ParseTags(f.tags)
	}
	return nil
}

// fieldsOf renders the price fields of t back into text. A zero trade
// gives blank fields.
func fieldsOf(t journal.Trade) economics.Fields {
	f := economics.Fields{
		Instrument: t.Instrument,
		OrderType:  string(t.OrderType),
	}
	if !t.EntryPrice.IsZero() {
		f.EntryPrice = economics.PriceText(t.EntryPrice)
	}
	if !t.ExitPrice.IsZero() {
		f.ExitPrice = economics.PriceText(t.ExitPrice)
	}
	if !t.PositionSize.IsZero() {
		f.PositionSize = economics.PriceText(t.PositionSize)
	}
	if t.StopLoss.Valid {
		f.InitialStopLoss = economics.PriceText(t.StopLoss.Decimal)
	}
	if t.TakeProfit.Valid {
		f.InitialTakeProfit = economics.PriceText(t.TakeProfit.Decimal)
	}
	return f
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

func parseTime(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	var t journal.Trade
	if err := addFlags.apply(cmd, &t, location()); err != nil {
		return err
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	saved, err := j.Create(cmd.Context(), t)
	if err != nil {
		return fmt.Errorf("add trade: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Recorded %s %s %s: %s (%s)\n",
		saved.ID, saved.OrderType, saved.Instrument, view.Money(saved.NetProfit), saved.Status)
	return nil
}

func runTradeEdit(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	t, err := findTrade(cmd, j, args[0])
	if err != nil {
		return err
	}
	if err := editFlags.apply(cmd, &t, location()); err != nil {
		return err
	}

	saved, err := j.Update(cmd.Context(), t)
	if err != nil {
		return fmt.Errorf("edit trade: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated %s: %s (%s)\n", saved.ID, view.Money(saved.NetProfit), saved.Status)
	return nil
}

func runTradeShow(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	t, err := findTrade(cmd, j, args[0])
	if err != nil {
		return err
	}

	if showOrg {
		fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradeOrg(t))
		return nil
	}
	return view.Detail(cmd.OutOrStdout(), t, location())
}

func runTradeDelete(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	t, err := findTrade(cmd, j, args[0])
	if err != nil {
		return err
	}
	if err := j.Delete(cmd.Context(), t.ID); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted %s\n", t.ID)
	return nil
}

func runTradeList(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	loc := location()
	var trades []journal.Trade
	if listDay != "" {
		start, end, err := calendar.DayBounds(loc, listDay)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
		trades, err = j.Between(cmd.Context(), start, end)
		if err != nil {
			return fmt.Errorf("query trades: %w", err)
		}
	} else {
		trades, err = j.Trades(cmd.Context())
		if err != nil {
			return fmt.Errorf("query trades: %w", err)
		}
	}

	return view.List(cmd.OutOrStdout(), trades, loc)
}

// findTrade resolves a full ID or a unique prefix of one.
func findTrade(cmd *cobra.Command, j *journal.Cache, ref string) (journal.Trade, error) {
	t, err := j.Get(cmd.Context(), ref)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, journal.ErrNotFound) {
		return journal.Trade{}, err
	}

	all, err := j.Trades(cmd.Context())
	if err != nil {
		return journal.Trade{}, err
	}
	var matches []journal.Trade
	for _, t := range all {
		if len(ref) >= 4 && len(t.ID) >= len(ref) && t.ID[:len(ref)] == ref {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return journal.Trade{}, fmt.Errorf("trade %q: %w", ref, journal.ErrNotFound)
	case 1:
		return matches[0], nil
	}
	return journal.Trade{}, fmt.Errorf("trade %q is ambiguous (%d matches)", ref, len(matches))
}
