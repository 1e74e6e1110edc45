// Package view renders journal data as terminal tables. Display rounding
// happens here and nowhere else; stored and computed figures stay exact.
package view

import (
	"github.com/rustyeddy/tradejournal/economics"
	"github.com/shopspring/decimal"
)

const none = "-"

var hundred = decimal.NewFromInt(100)

// Money formats to cents.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// R formats an R-multiple as "1.50R", or "-" when undefined.
func R(r decimal.NullDecimal) string {
	if !r.Valid {
		return none
	}
	return r.Decimal.StringFixed(2) + "R"
}

// Ratio formats an optional plain ratio to two places.
func Ratio(d decimal.NullDecimal) string {
	if !d.Valid {
		return none
	}
	return d.Decimal.StringFixed(2)
}

// Percent formats a fraction as a percentage with one decimal.
func Percent(frac decimal.Decimal) string {
	return frac.Mul(hundred).StringFixed(1) + "%"
}

// Marker is the one-character bucket indicator shown beside R.
func Marker(b economics.Bucket) string {
	switch b {
	case economics.Positive:
		return "+"
	case economics.Negative:
		return "-"
	}
	return "="
}
