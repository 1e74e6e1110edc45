// Package stats aggregates per-trade economics into the dashboard figures.
package stats

import (
	"github.com/rustyeddy/tradejournal/economics"
	"github.com/shopspring/decimal"
)

type Summary struct {
	TotalTrades int
	Wins        int
	Losses      int
	Breakevens  int

	// WinRate is a fraction in [0, 1]; zero when there are no trades.
	WinRate decimal.Decimal

	GrossProfit decimal.Decimal
	GrossLoss   decimal.Decimal // positive magnitude
	NetProfit   decimal.Decimal

	// ProfitFactor is GrossProfit / GrossLoss, undefined without losses.
	ProfitFactor decimal.NullDecimal
	// Expectancy is the average net profit per trade.
	Expectancy decimal.Decimal

	// AverageR covers only trades that had a stop loss.
	AverageR decimal.NullDecimal
	RCount   int

	LargestWin           decimal.Decimal
	LargestLoss          decimal.Decimal
	MaxConsecutiveLosses int
}

// Summarize folds trade figures in the order given. Order only matters
// for MaxConsecutiveLosses.
func Summarize(trades []economics.TradeEconomics) Summary {
	s := Summary{
		WinRate:     decimal.Zero,
		GrossProfit: decimal.Zero,
		GrossLoss:   decimal.Zero,
		NetProfit:   decimal.Zero,
		Expectancy:  decimal.Zero,
		LargestWin:  decimal.Zero,
		LargestLoss: decimal.Zero,
	}
	if len(trades) == 0 {
		return s
	}

	sumR := decimal.Zero
	streak := 0
	for _, t := range trades {
		s.TotalTrades++
		s.NetProfit = s.NetProfit.Add(t.NetProfit)

		switch t.Classification {
		case economics.Win:
			s.Wins++
			s.GrossProfit = s.GrossProfit.Add(t.NetProfit)
			if t.NetProfit.GreaterThan(s.LargestWin) {
				s.LargestWin = t.NetProfit
			}
			streak = 0
		case economics.Loss:
			s.Losses++
			s.GrossLoss = s.GrossLoss.Add(t.NetProfit.Abs())
			if t.NetProfit.LessThan(s.LargestLoss) {
				s.LargestLoss = t.NetProfit
			}
			streak++
			if streak > s.MaxConsecutiveLosses {
				s.MaxConsecutiveLosses = streak
			}
		default:
			s.Breakevens++
			streak = 0
		}

		if t.RMultiple.Valid {
			s.RCount++
			sumR = sumR.Add(t.RMultiple.Decimal)
		}
	}

	total := decimal.NewFromInt(int64(s.TotalTrades))
	s.WinRate = decimal.NewFromInt(int64(s.Wins)).Div(total)
	s.Expectancy = s.NetProfit.Div(total)
	if s.GrossLoss.IsPositive() {
		s.ProfitFactor = decimal.NewNullDecimal(s.GrossProfit.Div(s.GrossLoss))
	}
	if s.RCount > 0 {
		s.AverageR = decimal.NewNullDecimal(sumR.Div(decimal.NewFromInt(int64(s.RCount))))
	}
	return s
}
