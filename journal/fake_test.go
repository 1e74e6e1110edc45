package journal

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rustyeddy/tradejournal/economics"
	"github.com/rustyeddy/tradejournal/pkg/id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeTrades(t *testing.T) {
	t.Parallel()

	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	trades := FakeTrades(60, end, 30, rand.New(rand.NewSource(7)))
	require.Len(t, trades, 60)

	seen := map[economics.Classification]int{}
	for _, tr := range trades {
		assert.False(t, tr.EntryTime.Before(end.AddDate(0, 0, -30)))
		assert.True(t, tr.EntryTime.Before(end))
		assert.True(t, tr.ExitTime.After(tr.EntryTime))
		assert.True(t, tr.StopLoss.Valid)
		assert.True(t, tr.RMultiple.Valid)

		at, err := id.Time(tr.ID)
		require.NoError(t, err)
		assert.True(t, at.Equal(tr.EntryTime), "id %s carries %v", tr.ID, at)

		econ, err := tr.Economics()
		require.NoError(t, err)
		assert.True(t, econ.NetProfit.Equal(tr.NetProfit))
		assert.Equal(t, econ.Classification, tr.Status)
		seen[tr.Status]++
	}
	assert.Len(t, seen, 3)

	again := FakeTrades(60, end, 30, rand.New(rand.NewSource(7)))
	assert.True(t, trades[10].EntryTime.Equal(again[10].EntryTime))
	assert.True(t, trades[10].NetProfit.Equal(again[10].NetProfit))
}
