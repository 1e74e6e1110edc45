// Package economics derives the money figures of a single trade: net
// profit, risk, R-multiple, outcome and the pip-based preview estimate.
//
// Everything here is a pure function of its arguments. Nothing logs,
// blocks or keeps state, so callers may use it from any goroutine.
package economics

import (
	"github.com/shopspring/decimal"
)

// TradeEconomics is the authoritative projection of a TradeInput. It has
// no identity of its own and is recomputed whenever the input changes.
type TradeEconomics struct {
	NetProfit      decimal.Decimal
	RiskAmount     decimal.NullDecimal
	RMultiple      decimal.NullDecimal
	PlannedRR      decimal.NullDecimal
	Classification Classification
	Basis          Basis
}

// HasRisk reports whether a stop loss was recorded.
func (e TradeEconomics) HasRisk() bool {
	return e.RiskAmount.Valid
}

func (e TradeEconomics) Bucket() Bucket {
	return BucketOf(e.RMultiple)
}

// Compute runs every stage for in. The only error is a *ValidationError.
func Compute(in TradeInput) (TradeEconomics, error) {
	net, err := NetProfit(in)
	if err != nil {
		return TradeEconomics{}, err
	}
	risk := RiskAmount(in.EntryPrice, in.InitialStopLoss, in.PositionSize)

	return TradeEconomics{
		NetProfit:      net,
		RiskAmount:     risk,
		RMultiple:      RMultiple(net, risk),
		PlannedRR:      PlannedRR(in.EntryPrice, in.InitialStopLoss, in.InitialTakeProfit),
		Classification: Classify(net),
		Basis:          Authoritative,
	}, nil
}

// Preview pairs the authoritative figures with the pip-based estimate for
// a form that has not been saved yet.
type Preview struct {
	Authoritative TradeEconomics
	Estimated     LiveEstimate
}

func NewPreview(in TradeInput, entryText string, pipValuePerLot decimal.Decimal) (Preview, error) {
	econ, err := Compute(in)
	if err != nil {
		return Preview{}, err
	}
	est, err := Estimate(in, entryText, pipValuePerLot)
	if err != nil {
		return Preview{}, err
	}
	return Preview{Authoritative: econ, Estimated: est}, nil
}
