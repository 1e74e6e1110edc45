package view

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/rustyeddy/tradejournal/economics"
	"github.com/rustyeddy/tradejournal/stats"
)

// Dashboard prints the headline statistics.
func Dashboard(w io.Writer, currency string, s stats.Summary) error {
	if s.TotalTrades == 0 {
		_, err := fmt.Fprintln(w, "No trades recorded.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Value")
	table.Append("Total trades", fmt.Sprintf("%d", s.TotalTrades))
	table.Append("Wins / Losses / Breakeven", fmt.Sprintf("%d / %d / %d", s.Wins, s.Losses, s.Breakevens))
	table.Append("Win rate", Percent(s.WinRate))
	table.Append("Net profit", Money(s.NetProfit)+" "+currency)
	table.Append("Gross profit", Money(s.GrossProfit))
	table.Append("Gross loss", Money(s.GrossLoss))
	table.Append("Profit factor", Ratio(s.ProfitFactor))
	table.Append("Expectancy", Money(s.Expectancy))
	table.Append("Average R", fmt.Sprintf("%s (%d with stop)", R(s.AverageR), s.RCount))
	table.Append("Largest win", Money(s.LargestWin))
	table.Append("Largest loss", Money(s.LargestLoss))
	table.Append("Max losing streak", fmt.Sprintf("%d", s.MaxConsecutiveLosses))
	return table.Render()
}

// Preview prints the estimated and authoritative figures for an unsaved
// trade side by side. The two use different formulas and are labelled so.
func Preview(w io.Writer, p economics.Preview) error {
	table := tablewriter.NewWriter(w)
	table.Header("Figure", "Value", "Basis")

	est := p.Estimated
	table.Append("Pip size", est.PipSize.String(), string(est.Basis))
	table.Append("Pips", est.Pips.StringFixed(1), string(est.Basis))
	table.Append("Pip value / lot", Money(est.PipValuePerLot), string(est.Basis))
	table.Append("Estimated profit", Money(est.EstimatedProfit), string(est.Basis))

	auth := p.Authoritative
	table.Append("Net profit", Money(auth.NetProfit), string(auth.Basis))
	table.Append("Risk", moneyOrNone(auth.RiskAmount), string(auth.Basis))
	table.Append("R-multiple", R(auth.RMultiple)+" "+Marker(auth.Bucket()), string(auth.Basis))
	table.Append("Planned R:R", Ratio(auth.PlannedRR), string(auth.Basis))
	table.Append("Status", string(auth.Classification), string(auth.Basis))
	return table.Render()
}
