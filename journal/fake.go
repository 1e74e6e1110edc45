package journal

import (
	"math/rand"
	"strings"
	"time"

	"github.com/rustyeddy/tradejournal/economics"
	"github.com/rustyeddy/tradejournal/pkg/id"
	"github.com/shopspring/decimal"
)

var (
	fakeInstruments = []string{"EUR_USD", "GBP_USD", "USD_JPY", "AUD_USD", "XAU_USD"}
	fakeSizes       = []string{"0.01", "0.02", "0.05", "0.1", "0.5", "1"}
	fakeEmotions    = []string{"calm", "confident", "anxious", "greedy", "fearful", "bored"}
	fakeTags        = []string{"breakout", "trend", "reversal", "news", "london", "new-york", "scalp", "swing"}
	fakeRationale   = []string{
		"Clean break of the Asian range with volume.",
		"Pullback to the daily EMA inside an uptrend.",
		"Double top at weekly resistance.",
		"Fading an overextended move into support.",
	}
)

// FakeTrades builds n plausible, already stamped trades spread over the
// days before end. Outcomes are drawn evenly from win, loss and breakeven.
// IDs carry the entry time so they sort with the trades.
func FakeTrades(n int, end time.Time, days int, rnd *rand.Rand) []Trade {
	if days <= 0 {
		days = 1
	}
	start := end.AddDate(0, 0, -days)

	out := make([]Trade, 0, n)
	for i := 0; i < n; i++ {
		instrument := fakeInstruments[rnd.Intn(len(fakeInstruments))]
		side := economics.Buy
		if rnd.Intn(2) == 1 {
			side = economics.Sell
		}

		pip, places, lo, hi := fakeQuote(instrument)
		entry := decimal.NewFromFloat(lo + rnd.Float64()*(hi-lo)).Round(places)

		move := pip.Mul(decimal.NewFromInt(int64(rnd.Intn(146) + 5)))
		risk := pip.Mul(decimal.NewFromInt(int64(rnd.Intn(41) + 10)))

		exit := entry
		switch rnd.Intn(3) {
		case 0:
			exit = entry.Add(move.Mul(decimal.NewFromInt(side.Multiplier())))
		case 1:
			exit = entry.Sub(move.Mul(decimal.NewFromInt(side.Multiplier())))
		}
		stop := entry.Sub(risk.Mul(decimal.NewFromInt(side.Multiplier())))
		target := entry.Add(risk.Mul(decimal.NewFromInt(2 * side.Multiplier())))

		entryTime := start.Add(time.Duration(rnd.Int63n(int64(days) * int64(24*time.Hour)))).Truncate(time.Minute)
		exitTime := entryTime.Add(time.Duration(rnd.Intn(236)+5) * time.Minute)

		t := Trade{
			ID:           id.NewAt(entryTime),
			EntryTime:    entryTime,
			ExitTime:     exitTime,
			Instrument:   instrument,
			OrderType:    side,
			EntryPrice:   entry,
			ExitPrice:    exit,
			PositionSize: decimal.RequireFromString(fakeSizes[rnd.Intn(len(fakeSizes))]),
			StopLoss:     decimal.NewNullDecimal(stop),
			TakeProfit:   decimal.NewNullDecimal(target),
			Rationale:    fakeRationale[rnd.Intn(len(fakeRationale))],
			Emotions:     fakeEmotions[rnd.Intn(len(fakeEmotions))],
			Tags:         []string{fakeTags[rnd.Intn(len(fakeTags))], fakeTags[rnd.Intn(len(fakeTags))]},
		}
		if t.Tags[0] == t.Tags[1] {
			t.Tags = t.Tags[:1]
		}
		if err := t.Stamp(); err != nil {
			// prices are generated positive, so this only trips on a bad table entry
			panic(err)
		}
		out = append(out, t)
	}
	return out
}

// fakeQuote returns pip size, price decimals and a price range.
func fakeQuote(instrument string) (decimal.Decimal, int32, float64, float64) {
	switch {
	case strings.Contains(instrument, "JPY"):
		return economics.PipSizeCoarse, 2, 100, 150
	case strings.HasPrefix(instrument, "XAU"):
		return decimal.New(1, -1), 2, 1800, 2400
	}
	return economics.PipSizeFine, 4, 1.05, 1.35
}
