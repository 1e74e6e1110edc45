package stats

import (
	"testing"

	"github.com/rustyeddy/tradejournal/economics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trade(net string, r string) economics.TradeEconomics {
	n := decimal.RequireFromString(net)
	e := economics.TradeEconomics{
		NetProfit:      n,
		Classification: economics.Classify(n),
		Basis:          economics.Authoritative,
	}
	if r != "" {
		e.RMultiple = decimal.NewNullDecimal(decimal.RequireFromString(r))
	}
	return e
}

func eq(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s got %s", want, got)
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalTrades)
	eq(t, "0", s.WinRate)
	eq(t, "0", s.Expectancy)
	assert.False(t, s.ProfitFactor.Valid)
	assert.False(t, s.AverageR.Valid)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	s := Summarize([]economics.TradeEconomics{
		trade("200", "2"),
		trade("-100", "-1"),
		trade("-50", ""),
		trade("0", "0"),
		trade("150", "1.5"),
	})

	assert.Equal(t, 5, s.TotalTrades)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 2, s.Losses)
	assert.Equal(t, 1, s.Breakevens)
	eq(t, "0.4", s.WinRate)
	eq(t, "350", s.GrossProfit)
	eq(t, "150", s.GrossLoss)
	eq(t, "200", s.NetProfit)
	eq(t, "40", s.Expectancy)
	require.True(t, s.ProfitFactor.Valid)
	eq(t, "2.33", s.ProfitFactor.Decimal.Round(2))
	require.True(t, s.AverageR.Valid)
	assert.Equal(t, 4, s.RCount)
	eq(t, "0.625", s.AverageR.Decimal)
	eq(t, "200", s.LargestWin)
	eq(t, "-100", s.LargestLoss)
	assert.Equal(t, 2, s.MaxConsecutiveLosses)
}

func TestSummarizeAllWinners(t *testing.T) {
	t.Parallel()

	s := Summarize([]economics.TradeEconomics{trade("10", ""), trade("30", "")})

	eq(t, "1", s.WinRate)
	eq(t, "20", s.Expectancy)
	assert.False(t, s.ProfitFactor.Valid, "no losses means no profit factor")
	assert.False(t, s.AverageR.Valid)
	assert.Equal(t, 0, s.MaxConsecutiveLosses)
}
