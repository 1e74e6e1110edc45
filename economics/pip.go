package economics

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// PipSizeFine applies to quotes with 4 or 5 decimals (EUR/USD 1.23456).
	PipSizeFine = decimal.New(1, -4)
	// PipSizeCoarse applies to quotes with 2 or 3 decimals (USD/JPY 151.234).
	PipSizeCoarse = decimal.New(1, -2)

	// DefaultPipValuePerLot is the account-currency value of one pip on a
	// standard lot for USD quoted pairs.
	DefaultPipValuePerLot = decimal.NewFromInt(10)
)

// InferPipSize guesses the pip size from the number of fractional digits
// in the entry price as the user typed it. It is a preview heuristic and
// never fails: anything it cannot read yields PipSizeFine.
func InferPipSize(entryText string) decimal.Decimal {
	s := strings.TrimSpace(entryText)
	s = strings.TrimPrefix(s, "+")

	whole, frac, ok := strings.Cut(s, ".")
	if !ok || frac == "" || !digits(frac) {
		return PipSizeFine
	}
	if whole != "" && !digits(whole) {
		return PipSizeFine
	}
	if len(frac) <= 3 {
		return PipSizeCoarse
	}
	return PipSizeFine
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// PriceText renders a price keeping every fractional digit it was parsed
// with, so 1.2000 stays "1.2000" and feeds InferPipSize correctly.
func PriceText(d decimal.Decimal) string {
	places := -d.Exponent()
	if places < 0 {
		places = 0
	}
	return d.StringFixed(places)
}

// PipDelta is the price move expressed in pips, signed by direction: a
// profitable SELL yields positive pips.
func PipDelta(in TradeInput, pipSize decimal.Decimal) (decimal.Decimal, error) {
	if !pipSize.IsPositive() {
		return decimal.Decimal{}, invalid("pip_size", "must be positive")
	}
	if !in.OrderType.Valid() {
		return decimal.Decimal{}, invalid("order_type", "must be BUY or SELL, got %q", string(in.OrderType))
	}
	pips := in.ExitPrice.Sub(in.EntryPrice).Div(pipSize)
	return pips.Mul(decimal.NewFromInt(in.OrderType.Multiplier())), nil
}

// LiveEstimate is the pip-based profit preview shown while a trade is
// being edited. It uses different unit conventions than NetProfit and the
// two are not expected to agree.
type LiveEstimate struct {
	PipSize         decimal.Decimal
	Pips            decimal.Decimal
	PipValuePerLot  decimal.Decimal
	EstimatedProfit decimal.Decimal
	Basis           Basis
}

// Estimate computes the pip-based preview. entryText is the entry price as
// typed; when empty it is derived from in.EntryPrice. A non-positive
// pipValuePerLot falls back to DefaultPipValuePerLot.
func Estimate(in TradeInput, entryText string, pipValuePerLot decimal.Decimal) (LiveEstimate, error) {
	if err := in.Validate(); err != nil {
		return LiveEstimate{}, err
	}
	if entryText == "" {
		entryText = PriceText(in.EntryPrice)
	}
	if !pipValuePerLot.IsPositive() {
		pipValuePerLot = DefaultPipValuePerLot
	}

	size := InferPipSize(entryText)
	pips, err := PipDelta(in, size)
	if err != nil {
		return LiveEstimate{}, err
	}

	return LiveEstimate{
		PipSize:         size,
		Pips:            pips,
		PipValuePerLot:  pipValuePerLot,
		EstimatedProfit: pips.Mul(pipValuePerLot).Mul(in.PositionSize),
		Basis:           Estimated,
	}, nil
}
