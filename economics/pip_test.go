package economics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferPipSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"four decimals", "1.2345", "0.0001"},
		{"five decimals", "1.23456", "0.0001"},
		{"two decimals", "123.45", "0.01"},
		{"three decimals", "151.234", "0.01"},
		{"one decimal", "2650.5", "0.01"},
		{"padded", "  1.2000 ", "0.0001"},
		{"no decimal point", "123", "0.0001"},
		{"trailing point", "123.", "0.0001"},
		{"empty", "", "0.0001"},
		{"not numeric", "abc", "0.0001"},
		{"garbage fraction", "1.2x4", "0.0001"},
		{"exponent", "1.5e3", "0.0001"},
		{"leading point", ".50", "0.01"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertDec(t, tt.want, InferPipSize(tt.in))
		})
	}
}

func TestPriceText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.2000", PriceText(d("1.2000")))
	assert.Equal(t, "151.20", PriceText(d("151.20")))
	assert.Equal(t, "100", PriceText(decimal.NewFromInt(100)))
}

func TestPipDelta(t *testing.T) {
	t.Parallel()

	in := TradeInput{Instrument: "EUR_USD", OrderType: Buy, EntryPrice: d("1.2000"), ExitPrice: d("1.2050"), PositionSize: d("1")}

	pips, err := PipDelta(in, PipSizeFine)
	require.NoError(t, err)
	assertDec(t, "50", pips)

	in.OrderType = Sell
	pips, err = PipDelta(in, PipSizeFine)
	require.NoError(t, err)
	assertDec(t, "-50", pips)

	_, err = PipDelta(in, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidTrade)
}

func TestEstimate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        TradeInput
		entryText string
		pipValue  decimal.Decimal
		pipSize   string
		pips      string
		profit    string
	}{
		{
			name:      "eurusd buy",
			in:        TradeInput{Instrument: "EUR/USD", OrderType: Buy, EntryPrice: d("1.2000"), ExitPrice: d("1.2050"), PositionSize: d("1")},
			entryText: "1.2000",
			pipValue:  DefaultPipValuePerLot,
			pipSize:   "0.0001",
			pips:      "50",
			profit:    "500",
		},
		{
			name:      "usdjpy sell losing",
			in:        TradeInput{Instrument: "USD/JPY", OrderType: Sell, EntryPrice: d("150.00"), ExitPrice: d("150.50"), PositionSize: d("2")},
			entryText: "150.00",
			pipValue:  DefaultPipValuePerLot,
			pipSize:   "0.01",
			pips:      "-50",
			profit:    "-1000",
		},
		{
			name:     "entry text derived from price",
			in:       TradeInput{Instrument: "GBP/USD", OrderType: Sell, EntryPrice: d("1.25000"), ExitPrice: d("1.24800"), PositionSize: d("0.1")},
			pipValue: DefaultPipValuePerLot,
			pipSize:  "0.0001",
			pips:     "20",
			profit:   "20",
		},
		{
			name:      "non-positive pip value falls back to default",
			in:        TradeInput{Instrument: "EUR/USD", OrderType: Buy, EntryPrice: d("1.1000"), ExitPrice: d("1.1010"), PositionSize: d("1")},
			entryText: "1.1000",
			pipValue:  decimal.Zero,
			pipSize:   "0.0001",
			pips:      "10",
			profit:    "100",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Estimate(tt.in, tt.entryText, tt.pipValue)
			require.NoError(t, err)
			assert.Equal(t, Estimated, got.Basis)
			assertDec(t, tt.pipSize, got.PipSize)
			assertDec(t, tt.pips, got.Pips)
			assertDec(t, tt.profit, got.EstimatedProfit)
		})
	}
}

func TestEstimateRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Estimate(TradeInput{Instrument: "EUR/USD", OrderType: Buy}, "1.2", DefaultPipValuePerLot)
	assert.ErrorIs(t, err, ErrInvalidTrade)
}

func TestPreviewKeepsBothFigures(t *testing.T) {
	t.Parallel()

	in := TradeInput{
		Instrument:      "EUR/USD",
		OrderType:       Buy,
		EntryPrice:      d("1.2000"),
		ExitPrice:       d("1.2050"),
		PositionSize:    d("1"),
		InitialStopLoss: nd("1.1950"),
	}

	p, err := NewPreview(in, "1.2000", DefaultPipValuePerLot)
	require.NoError(t, err)

	assert.Equal(t, Authoritative, p.Authoritative.Basis)
	assert.Equal(t, Estimated, p.Estimated.Basis)
	assertDec(t, "0.005", p.Authoritative.NetProfit)
	assertDec(t, "500", p.Estimated.EstimatedProfit)
	assert.False(t, p.Authoritative.NetProfit.Equal(p.Estimated.EstimatedProfit))
}
