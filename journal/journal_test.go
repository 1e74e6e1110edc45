package journal

import (
	"errors"
	"testing"
	"time"

	"github.com/rustyeddy/tradejournal/economics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ndec(s string) decimal.NullDecimal { return decimal.NewNullDecimal(dec(s)) }

// sampleTrade is a stamped EUR/USD long that won 100 with 2R.
func sampleTrade(t *testing.T, id string, entry time.Time) Trade {
	t.Helper()

	tr := Trade{
		ID:           id,
		EntryTime:    entry,
		ExitTime:     entry.Add(90 * time.Minute),
		Instrument:   "EUR/USD",
		OrderType:    economics.Buy,
		EntryPrice:   dec("1.1000"),
		ExitPrice:    dec("1.1100"),
		PositionSize: dec("10000"),
		StopLoss:     ndec("1.0950"),
		TakeProfit:   ndec("1.1100"),
		Rationale:    "breakout above range",
		Emotions:     "calm",
		Tags:         []string{"breakout", "london"},
	}
	require.NoError(t, tr.Stamp())
	return tr
}

func TestTradeStamp(t *testing.T) {
	t.Parallel()

	tr := sampleTrade(t, "T1", time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, economics.Win, tr.Status)
	assert.True(t, dec("100").Equal(tr.NetProfit), "net %s", tr.NetProfit)
	require.True(t, tr.RMultiple.Valid)
	assert.True(t, dec("2").Equal(tr.RMultiple.Decimal), "r %s", tr.RMultiple.Decimal)
}

func TestTradeStampRecomputes(t *testing.T) {
	t.Parallel()

	tr := sampleTrade(t, "T1", time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC))
	tr.ExitPrice = dec("1.0950")
	tr.NetProfit = dec("999")

	require.NoError(t, tr.Stamp())
	assert.Equal(t, economics.Loss, tr.Status)
	assert.True(t, dec("-50").Equal(tr.NetProfit))
	assert.True(t, dec("-1").Equal(tr.RMultiple.Decimal))
}

func TestTradeStampRejects(t *testing.T) {
	t.Parallel()

	base := sampleTrade(t, "T1", time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC))

	tests := []struct {
		name  string
		edit  func(*Trade)
		field string
	}{
		{"no entry time", func(tr *Trade) { tr.EntryTime = time.Time{} }, "entry_time"},
		{"no exit time", func(tr *Trade) { tr.ExitTime = time.Time{} }, "exit_time"},
		{"exit before entry", func(tr *Trade) { tr.ExitTime = tr.EntryTime.Add(-time.Minute) }, "exit_time"},
		{"zero size", func(tr *Trade) { tr.PositionSize = decimal.Zero }, "position_size"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := base.clone()
			tt.edit(&tr)
			err := tr.Stamp()
			require.Error(t, err)
			assert.ErrorIs(t, err, economics.ErrInvalidTrade)

			var ve *economics.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestParseTags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b c", "d"}, ParseTags(" a, b c ,,d, "))
	assert.Nil(t, ParseTags(""))
	assert.Equal(t, "a,b", JoinTags([]string{"a", "b"}))
}

func TestTradeCloneTags(t *testing.T) {
	t.Parallel()

	tr := sampleTrade(t, "T1", time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC))
	cp := tr.clone()
	cp.Tags[0] = "changed"

	assert.Equal(t, "breakout", tr.Tags[0])
}
