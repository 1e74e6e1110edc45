package economics

import (
	"github.com/shopspring/decimal"
)

// NetProfit is the authoritative P/L: (exit - entry) * size, negated for
// SELL. No rounding is applied.
func NetProfit(in TradeInput) (decimal.Decimal, error) {
	if err := in.Validate(); err != nil {
		return decimal.Decimal{}, err
	}
	move := in.ExitPrice.Sub(in.EntryPrice)
	return move.Mul(in.PositionSize).Mul(decimal.NewFromInt(in.OrderType.Multiplier())), nil
}

// RiskAmount is |entry - stop| * size. The result is invalid (undefined)
// when no stop was recorded; a stop equal to entry gives a valid zero.
func RiskAmount(entry decimal.Decimal, stop decimal.NullDecimal, size decimal.Decimal) decimal.NullDecimal {
	if !stop.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(entry.Sub(stop.Decimal).Abs().Mul(size))
}

// RMultiple is net / risk, undefined unless risk is defined and positive.
func RMultiple(net decimal.Decimal, risk decimal.NullDecimal) decimal.NullDecimal {
	if !risk.Valid || !risk.Decimal.IsPositive() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(net.Div(risk.Decimal))
}

// PlannedRR is the reward:risk ratio the trade was planned with,
// |takeProfit - entry| / |entry - stop|.
func PlannedRR(entry decimal.Decimal, stop, takeProfit decimal.NullDecimal) decimal.NullDecimal {
	if !stop.Valid || !takeProfit.Valid {
		return decimal.NullDecimal{}
	}
	risk := entry.Sub(stop.Decimal).Abs()
	if risk.IsZero() {
		return decimal.NullDecimal{}
	}
	reward := takeProfit.Decimal.Sub(entry).Abs()
	return decimal.NewNullDecimal(reward.Div(risk))
}

// Classify maps the sign of net profit. Only an exact zero is BREAKEVEN.
func Classify(net decimal.Decimal) Classification {
	switch net.Sign() {
	case 1:
		return Win
	case -1:
		return Loss
	}
	return Breakeven
}

// BucketOf picks the styling bucket from the sign of r. Undefined R is
// neutral.
func BucketOf(r decimal.NullDecimal) Bucket {
	if !r.Valid {
		return Neutral
	}
	switch r.Decimal.Sign() {
	case 1:
		return Positive
	case -1:
		return Negative
	}
	return Neutral
}
