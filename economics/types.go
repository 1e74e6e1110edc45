package economics

import (
	"fmt"
	"strings"
)

// OrderType is the direction of a trade.
type OrderType string

const (
	Buy  OrderType = "BUY"
	Sell OrderType = "SELL"
)

// ParseOrderType accepts BUY/SELL in any case. LONG and SHORT are
// accepted as aliases since that is how most brokers label positions.
func ParseOrderType(s string) (OrderType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY", "LONG":
		return Buy, nil
	case "SELL", "SHORT":
		return Sell, nil
	case "":
		return "", &ValidationError{Field: "order_type", Reason: "is required"}
	}
	return "", &ValidationError{Field: "order_type", Reason: fmt.Sprintf("unknown order type %q", s)}
}

func (o OrderType) Valid() bool {
	return o == Buy || o == Sell
}

// Multiplier is +1 for BUY and -1 for SELL.
func (o OrderType) Multiplier() int64 {
	if o == Sell {
		return -1
	}
	return 1
}

// Classification is the outcome of a closed trade.
type Classification string

const (
	Win       Classification = "WIN"
	Loss      Classification = "LOSS"
	Breakeven Classification = "BREAKEVEN"
)

// ParseClassification is used when reading persisted trades back.
func ParseClassification(s string) (Classification, error) {
	switch c := Classification(strings.ToUpper(strings.TrimSpace(s))); c {
	case Win, Loss, Breakeven:
		return c, nil
	}
	return "", fmt.Errorf("unknown classification %q", s)
}

// Bucket is the display styling bucket of an R-multiple.
type Bucket string

const (
	Positive Bucket = "positive"
	Negative Bucket = "negative"
	Neutral  Bucket = "neutral"
)

// Basis says which formula produced a figure. Authoritative figures come
// from the price-difference formula and are what gets persisted; estimated
// figures come from the pip-based preview and are never persisted.
type Basis string

const (
	Authoritative Basis = "authoritative"
	Estimated     Basis = "estimated"
)
