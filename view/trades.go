package view

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/rustyeddy/tradejournal/calendar"
	"github.com/rustyeddy/tradejournal/economics"
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/stats"
	"github.com/shopspring/decimal"
)

func summarize(trades []journal.Trade) stats.Summary {
	econ := make([]economics.TradeEconomics, 0, len(trades))
	for _, t := range trades {
		econ = append(econ, economics.TradeEconomics{
			NetProfit:      t.NetProfit,
			RMultiple:      t.RMultiple,
			Classification: t.Status,
			Basis:          economics.Authoritative,
		})
	}
	return stats.Summarize(econ)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Week prints one row per trade under the weekday it was entered, with
// an empty row for days without trades, followed by the week totals.
// trades must be oldest first.
func Week(w io.Writer, week calendar.Week, trades []journal.Trade) error {
	byDay := make([][]journal.Trade, 7)
	for _, t := range trades {
		if i, ok := week.DayIndex(t.EntryTime); ok {
			byDay[i] = append(byDay[i], t)
		}
	}

	fmt.Fprintf(w, "Week %s\n", week.Label())

	table := tablewriter.NewWriter(w)
	table.Header("Day", "Time", "Instrument", "Side", "P/L", "R", "", "Status", "ID")

	loc := week.Start.Location()
	for i, day := range week.Days() {
		label := day.Format("Mon 01-02")
		if len(byDay[i]) == 0 {
			table.Append(label, none, none, none, none, none, "", none, none)
			continue
		}
		for j, t := range byDay[i] {
			if j > 0 {
				label = ""
			}
			table.Append(
				label,
				t.EntryTime.In(loc).Format("15:04"),
				t.Instrument,
				string(t.OrderType),
				Money(t.NetProfit),
				R(t.RMultiple),
				Marker(economics.BucketOf(t.RMultiple)),
				string(t.Status),
				shortID(t.ID),
			)
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	s := summarize(trades)
	_, err := fmt.Fprintf(w, "  %d trades | net %s | win rate %s\n", s.TotalTrades, Money(s.NetProfit), Percent(s.WinRate))
	return err
}

// List groups trades by entry date, newest date first. Within a date the
// newest trade also comes first.
func List(w io.Writer, trades []journal.Trade, loc *time.Location) error {
	if len(trades) == 0 {
		_, err := fmt.Fprintln(w, "No trades recorded.")
		return err
	}
	if loc == nil {
		loc = time.Local
	}

	groups := map[string][]journal.Trade{}
	var dates []string
	for _, t := range trades {
		d := t.EntryTime.In(loc).Format("2006-01-02")
		if _, ok := groups[d]; !ok {
			dates = append(dates, d)
		}
		groups[d] = append(groups[d], t)
	}
	sortDesc(dates)

	for i, d := range dates {
		if i > 0 {
			fmt.Fprintln(w)
		}
		day := groups[d]
		sortNewestFirst(day)

		fmt.Fprintf(w, "%s  (%s)\n", d, Money(summarize(day).NetProfit))
		table := tablewriter.NewWriter(w)
		table.Header("Time", "Instrument", "Side", "Size", "Entry", "Exit", "P/L", "R", "", "ID")
		for _, t := range day {
			table.Append(
				t.EntryTime.In(loc).Format("15:04"),
				t.Instrument,
				string(t.OrderType),
				economics.PriceText(t.PositionSize),
				economics.PriceText(t.EntryPrice),
				economics.PriceText(t.ExitPrice),
				Money(t.NetProfit),
				R(t.RMultiple),
				Marker(economics.BucketOf(t.RMultiple)),
				shortID(t.ID),
			)
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}

// Detail prints every field of one trade along with its economics.
func Detail(w io.Writer, t journal.Trade, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	econ, err := t.Economics()
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Field", "Value")

	rows := [][2]string{
		{"ID", t.ID},
		{"Instrument", t.Instrument},
		{"Side", string(t.OrderType)},
		{"Entry time", t.EntryTime.In(loc).Format("2006-01-02 15:04")},
		{"Exit time", t.ExitTime.In(loc).Format("2006-01-02 15:04")},
		{"Held", t.ExitTime.Sub(t.EntryTime).String()},
		{"Entry price", economics.PriceText(t.EntryPrice)},
		{"Exit price", economics.PriceText(t.ExitPrice)},
		{"Position size", economics.PriceText(t.PositionSize)},
		{"Stop loss", priceOrNone(t.StopLoss)},
		{"Take profit", priceOrNone(t.TakeProfit)},
		{"Net profit", Money(econ.NetProfit)},
		{"Risk", moneyOrNone(econ.RiskAmount)},
		{"R-multiple", R(econ.RMultiple) + " " + Marker(econ.Bucket())},
		{"Planned R:R", Ratio(econ.PlannedRR)},
		{"Status", string(econ.Classification)},
		{"Emotions", t.Emotions},
		{"Tags", journal.JoinTags(t.Tags)},
	}
	for _, r := range rows {
		table.Append(r[0], r[1])
	}
	if err := table.Render(); err != nil {
		return err
	}

	if t.Rationale != "" {
		fmt.Fprintf(w, "\nRationale:\n%s\n", t.Rationale)
	}
	if t.Review != "" {
		fmt.Fprintf(w, "\nReview:\n%s\n", t.Review)
	}
	return nil
}

func priceOrNone(d decimal.NullDecimal) string {
	if !d.Valid {
		return none
	}
	return economics.PriceText(d.Decimal)
}

func moneyOrNone(d decimal.NullDecimal) string {
	if !d.Valid {
		return none
	}
	return Money(d.Decimal)
}

func sortDesc(dates []string) {
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
}

func sortNewestFirst(trades []journal.Trade) {
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].EntryTime.After(trades[j].EntryTime)
	})
}
