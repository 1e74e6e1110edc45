package economics

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// TradeInput is the caller-supplied description of a trade. Prices share
// one unit (quote currency per unit of base); PositionSize is a lot or
// contract count.
type TradeInput struct {
	Instrument   string
	OrderType    OrderType
	EntryPrice   decimal.Decimal
	ExitPrice    decimal.Decimal
	PositionSize decimal.Decimal

	// Absent stop loss leaves risk and R-multiple undefined.
	InitialStopLoss   decimal.NullDecimal
	InitialTakeProfit decimal.NullDecimal
}

// Validate returns the first problem found as a *ValidationError.
func (in TradeInput) Validate() error {
	if strings.TrimSpace(in.Instrument) == "" {
		return invalid("instrument", "is required")
	}
	if !in.OrderType.Valid() {
		return invalid("order_type", "must be BUY or SELL, got %q", string(in.OrderType))
	}
	if !in.EntryPrice.IsPositive() {
		return invalid("entry_price", "must be positive")
	}
	if !in.ExitPrice.IsPositive() {
		return invalid("exit_price", "must be positive")
	}
	if !in.PositionSize.IsPositive() {
		return invalid("position_size", "must be positive")
	}
	if in.InitialStopLoss.Valid && !in.InitialStopLoss.Decimal.IsPositive() {
		return invalid("initial_stop_loss", "must be positive when set")
	}
	if in.InitialTakeProfit.Valid && !in.InitialTakeProfit.Decimal.IsPositive() {
		return invalid("initial_take_profit", "must be positive when set")
	}
	return nil
}

// Fields carries the raw text of a trade form or a fetched trade.
type Fields struct {
	Instrument        string
	OrderType         string
	EntryPrice        string
	ExitPrice         string
	PositionSize      string
	InitialStopLoss   string
	InitialTakeProfit string
}

// ParseInput converts raw text into a validated TradeInput. Blank optional
// levels are treated as absent; blank or non-numeric required fields fail.
func ParseInput(f Fields) (TradeInput, error) {
	var (
		in  TradeInput
		err error
	)

	in.Instrument = strings.TrimSpace(f.Instrument)
	if in.OrderType, err = ParseOrderType(f.OrderType); err != nil {
		return TradeInput{}, err
	}
	if in.EntryPrice, err = required("entry_price", f.EntryPrice); err != nil {
		return TradeInput{}, err
	}
	if in.ExitPrice, err = required("exit_price", f.ExitPrice); err != nil {
		return TradeInput{}, err
	}
	if in.PositionSize, err = required("position_size", f.PositionSize); err != nil {
		return TradeInput{}, err
	}
	if in.InitialStopLoss, err = optional("initial_stop_loss", f.InitialStopLoss); err != nil {
		return TradeInput{}, err
	}
	if in.InitialTakeProfit, err = optional("initial_take_profit", f.InitialTakeProfit); err != nil {
		return TradeInput{}, err
	}

	if err := in.Validate(); err != nil {
		return TradeInput{}, err
	}
	return in, nil
}

func required(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, invalid(field, "is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, invalid(field, "is not a number: %q", s)
	}
	return d, nil
}

func optional(field, s string) (decimal.NullDecimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := required(field, s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

// FromFloats builds a TradeInput from binary floats. NaN and infinities
// are rejected rather than converted. Nil stop or take-profit means absent.
func FromFloats(instrument string, side OrderType, entry, exit, size float64, stop, takeProfit *float64) (TradeInput, error) {
	in := TradeInput{Instrument: instrument, OrderType: side}

	var err error
	if in.EntryPrice, err = finite("entry_price", entry); err != nil {
		return TradeInput{}, err
	}
	if in.ExitPrice, err = finite("exit_price", exit); err != nil {
		return TradeInput{}, err
	}
	if in.PositionSize, err = finite("position_size", size); err != nil {
		return TradeInput{}, err
	}
	if stop != nil {
		d, err := finite("initial_stop_loss", *stop)
		if err != nil {
			return TradeInput{}, err
		}
		in.InitialStopLoss = decimal.NewNullDecimal(d)
	}
	if takeProfit != nil {
		d, err := finite("initial_take_profit", *takeProfit)
		if err != nil {
			return TradeInput{}, err
		}
		in.InitialTakeProfit = decimal.NewNullDecimal(d)
	}

	if err := in.Validate(); err != nil {
		return TradeInput{}, err
	}
	return in, nil
}

func finite(field string, x float64) (decimal.Decimal, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return decimal.Decimal{}, invalid(field, "is not finite")
	}
	return decimal.NewFromFloat(x), nil
}
