package journal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteGetRoundTrip(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	ctx := context.Background()

	loc := time.FixedZone("EST", -5*3600)
	tr := sampleTrade(t, "T1", time.Date(2024, 1, 2, 9, 30, 0, 0, loc))
	tr.TakeProfit = ndec("1.1200")
	tr.CreatedAt = time.Date(2024, 1, 2, 20, 0, 0, 0, time.UTC)
	tr.UpdatedAt = tr.CreatedAt
	require.NoError(t, tr.Stamp())
	require.NoError(t, j.Create(ctx, tr))

	got, err := j.Get(ctx, "T1")
	require.NoError(t, err)

	assert.Equal(t, "T1", got.ID)
	assert.True(t, tr.EntryTime.Equal(got.EntryTime))
	assert.Equal(t, time.UTC, got.EntryTime.Location())
	assert.True(t, tr.ExitTime.Equal(got.ExitTime))
	assert.Equal(t, "EUR/USD", got.Instrument)
	assert.Equal(t, tr.OrderType, got.OrderType)
	assert.Equal(t, "1.1000", got.EntryPrice.StringFixed(-got.EntryPrice.Exponent()))
	assert.True(t, tr.ExitPrice.Equal(got.ExitPrice))
	assert.True(t, tr.PositionSize.Equal(got.PositionSize))
	require.True(t, got.StopLoss.Valid)
	assert.True(t, tr.StopLoss.Decimal.Equal(got.StopLoss.Decimal))
	require.True(t, got.TakeProfit.Valid)
	assert.True(t, dec("1.12").Equal(got.TakeProfit.Decimal))
	assert.Equal(t, tr.Status, got.Status)
	assert.True(t, tr.NetProfit.Equal(got.NetProfit))
	require.True(t, got.RMultiple.Valid)
	assert.True(t, tr.RMultiple.Decimal.Equal(got.RMultiple.Decimal))
	assert.Equal(t, tr.Rationale, got.Rationale)
	assert.Equal(t, tr.Emotions, got.Emotions)
	assert.Equal(t, tr.Tags, got.Tags)
	assert.True(t, tr.CreatedAt.Equal(got.CreatedAt))
}

func TestSQLiteGetNoStop(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	ctx := context.Background()

	tr := sampleTrade(t, "T1", time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC))
	tr.StopLoss.Valid = false
	require.NoError(t, tr.Stamp())
	require.False(t, tr.RMultiple.Valid)
	require.NoError(t, j.Create(ctx, tr))

	got, err := j.Get(ctx, "T1")
	require.NoError(t, err)
	assert.False(t, got.StopLoss.Valid)
	assert.False(t, got.RMultiple.Valid)
}

func TestSQLiteGetMissing(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	_, err := j.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteListOrder(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"B", "C", "A"} {
		require.NoError(t, j.Create(ctx, sampleTrade(t, id, base.Add(time.Duration(i)*time.Hour))))
	}

	all, err := j.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"A", "C", "B"}, ids(all))
}

func TestSQLiteListBetween(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	ctx := context.Background()

	start := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	require.NoError(t, j.Create(ctx, sampleTrade(t, "before", start.Add(-time.Second))))
	require.NoError(t, j.Create(ctx, sampleTrade(t, "first", start)))
	require.NoError(t, j.Create(ctx, sampleTrade(t, "mid", start.Add(72*time.Hour))))
	require.NoError(t, j.Create(ctx, sampleTrade(t, "last", end.Add(-time.Minute))))
	require.NoError(t, j.Create(ctx, sampleTrade(t, "after", end)))

	got, err := j.ListBetween(ctx, start, end)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "mid", "last"}, ids(got))
}

func TestSQLiteListEmpty(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	got, err := j.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func ids(trades []Trade) []string {
	out := make([]string, len(trades))
	for i, t := range trades {
		out[i] = t.ID
	}
	return out
}
