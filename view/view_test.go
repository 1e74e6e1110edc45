package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rustyeddy/tradejournal/calendar"
	"github.com/rustyeddy/tradejournal/economics"
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/stats"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func trade(t *testing.T, id string, at time.Time, exit string) journal.Trade {
	t.Helper()

	tr := journal.Trade{
		ID:           id,
		EntryTime:    at,
		ExitTime:     at.Add(time.Hour),
		Instrument:   "EUR/USD",
		OrderType:    economics.Buy,
		EntryPrice:   dec("1.1000"),
		ExitPrice:    dec(exit),
		PositionSize: dec("10000"),
		StopLoss:     decimal.NewNullDecimal(dec("1.0950")),
		TakeProfit:   decimal.NewNullDecimal(dec("1.1100")),
		Rationale:    "range break",
		Tags:         []string{"breakout"},
	}
	require.NoError(t, tr.Stamp())
	return tr
}

func TestFormatters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12.35", Money(dec("12.345")))
	assert.Equal(t, "-0.10", Money(dec("-0.1")))
	assert.Equal(t, "1.50R", R(decimal.NewNullDecimal(dec("1.5"))))
	assert.Equal(t, "-", R(decimal.NullDecimal{}))
	assert.Equal(t, "-", Ratio(decimal.NullDecimal{}))
	assert.Equal(t, "2.00", Ratio(decimal.NewNullDecimal(dec("2"))))
	assert.Equal(t, "62.5%", Percent(dec("0.625")))
	assert.Equal(t, "+", Marker(economics.Positive))
	assert.Equal(t, "-", Marker(economics.Negative))
	assert.Equal(t, "=", Marker(economics.Neutral))
}

func TestWeek(t *testing.T) {
	t.Parallel()

	week := calendar.WeekOf(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), time.Monday)
	trades := []journal.Trade{
		trade(t, "WINNER01", time.Date(2024, 1, 2, 9, 15, 0, 0, time.UTC), "1.1100"),
		trade(t, "LOSER001", time.Date(2024, 1, 4, 14, 30, 0, 0, time.UTC), "1.0950"),
		trade(t, "OUTSIDE1", time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC), "1.1100"),
	}

	var buf bytes.Buffer
	require.NoError(t, Week(&buf, week, trades[:2]))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Week 2024-01-01 to 2024-01-07\n"))
	for _, day := range []string{"Mon 01-01", "Tue 01-02", "Wed 01-03", "Thu 01-04", "Fri 01-05", "Sat 01-06", "Sun 01-07"} {
		assert.Contains(t, out, day)
	}
	assert.Contains(t, out, "09:15")
	assert.Contains(t, out, "100.00")
	assert.Contains(t, out, "2.00R")
	assert.Contains(t, out, "-50.00")
	assert.Contains(t, out, "-1.00R")
	assert.Contains(t, out, "WINNER01")
	assert.Contains(t, out, "2 trades | net 50.00 | win rate 50.0%")

	buf.Reset()
	require.NoError(t, Week(&buf, week, trades))
	assert.NotContains(t, buf.String(), "OUTSIDE1")
}

func TestList(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		trade(t, "EARLY001", time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC), "1.1100"),
		trade(t, "LATE0001", time.Date(2024, 1, 3, 16, 0, 0, 0, time.UTC), "1.0950"),
		trade(t, "MORNING1", time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC), "1.1000"),
	}

	var buf bytes.Buffer
	require.NoError(t, List(&buf, trades, time.UTC))
	out := buf.String()

	jan3 := strings.Index(out, "2024-01-03")
	jan2 := strings.Index(out, "2024-01-02")
	require.True(t, jan3 >= 0 && jan2 >= 0)
	assert.Less(t, jan3, jan2, "newest date first")

	late := strings.Index(out, "LATE0001")
	morning := strings.Index(out, "MORNING1")
	assert.Less(t, late, morning, "newest trade first within a day")

	assert.Contains(t, out, "2024-01-03  (-50.00)")
	assert.Contains(t, out, "1.1000")
}

func TestListEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, List(&buf, nil, time.UTC))
	assert.Equal(t, "No trades recorded.\n", buf.String())
}

func TestDetail(t *testing.T) {
	t.Parallel()

	tr := trade(t, "01HQZX3Y7K2ABCDEF", time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC), "1.1100")
	tr.Review = "held to target"

	var buf bytes.Buffer
	require.NoError(t, Detail(&buf, tr, time.UTC))
	out := buf.String()

	assert.Contains(t, out, "01HQZX3Y7K2ABCDEF")
	assert.Contains(t, out, "2024-01-02 09:00")
	assert.Contains(t, out, "1.0950")
	assert.Contains(t, out, "50.00")
	assert.Contains(t, out, "2.00R +")
	assert.Contains(t, out, "WIN")
	assert.Contains(t, out, "Rationale:\nrange break\n")
	assert.Contains(t, out, "Review:\nheld to target\n")
}

func TestDetailNoStop(t *testing.T) {
	t.Parallel()

	tr := trade(t, "T1", time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC), "1.1100")
	tr.StopLoss = decimal.NullDecimal{}
	require.NoError(t, tr.Stamp())

	var buf bytes.Buffer
	require.NoError(t, Detail(&buf, tr, time.UTC))
	assert.Contains(t, buf.String(), "- =")
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	s := stats.Summarize([]economics.TradeEconomics{
		{NetProfit: dec("100"), RMultiple: decimal.NewNullDecimal(dec("2")), Classification: economics.Win},
		{NetProfit: dec("-50"), RMultiple: decimal.NewNullDecimal(dec("-1")), Classification: economics.Loss},
	})

	var buf bytes.Buffer
	require.NoError(t, Dashboard(&buf, "USD", s))
	out := buf.String()

	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "50.00 USD")
	assert.Contains(t, out, "2.00")
	assert.Contains(t, out, "25.00")
	assert.Contains(t, out, "0.50R (2 with stop)")

	buf.Reset()
	require.NoError(t, Dashboard(&buf, "USD", stats.Summarize(nil)))
	assert.Equal(t, "No trades recorded.\n", buf.String())
}

func TestPreview(t *testing.T) {
	t.Parallel()

	in, err := economics.ParseInput(economics.Fields{
		Instrument:      "EUR/USD",
		OrderType:       "BUY",
		EntryPrice:      "1.1000",
		ExitPrice:       "1.1050",
		PositionSize:    "1",
		InitialStopLoss: "1.0980",
	})
	require.NoError(t, err)

	p, err := economics.NewPreview(in, "1.1000", decimal.Zero)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Preview(&buf, p))
	out := buf.String()

	assert.Contains(t, out, "0.0001")
	assert.Contains(t, out, "50.0")
	assert.Contains(t, out, "500.00")
	assert.Contains(t, out, "0.01")
	assert.Contains(t, out, "2.50R +")
	assert.Contains(t, out, "estimated")
	assert.Contains(t, out, "authoritative")
}
