// market/instruments.go
package market

import (
	"math"
	"strings"
)

type InstrumentMeta struct {
	Name             string
	BaseCurrency     string
	QuoteCurrency    string
	PipLocation      int
	DisplayPrecision int32
}

// DefaultPrecision is used for prices of instruments we know nothing about.
const DefaultPrecision int32 = 5

var Instruments = map[string]InstrumentMeta{
	"EUR_USD": fx("EUR", "USD", -4, 5),
	"GBP_USD": fx("GBP", "USD", -4, 5),
	"AUD_USD": fx("AUD", "USD", -4, 5),
	"NZD_USD": fx("NZD", "USD", -4, 5),
	"USD_CHF": fx("USD", "CHF", -4, 5),
	"USD_CAD": fx("USD", "CAD", -4, 5),
	"EUR_GBP": fx("EUR", "GBP", -4, 5),
	"USD_JPY": fx("USD", "JPY", -2, 3),
	"EUR_JPY": fx("EUR", "JPY", -2, 3),
	"GBP_JPY": fx("GBP", "JPY", -2, 3),
	"XAU_USD": fx("XAU", "USD", -2, 2),
}

func fx(base, quote string, pipLoc int, precision int32) InstrumentMeta {
	return InstrumentMeta{
		Name:             base + "_" + quote,
		BaseCurrency:     base,
		QuoteCurrency:    quote,
		PipLocation:      pipLoc,
		DisplayPrecision: precision,
	}
}

// Normalize maps the spellings people type ("eur/usd", "EURUSD",
// "eur-usd") onto the EUR_USD form. Symbols that do not look like a
// currency pair are only upper-cased.
func Normalize(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	s = strings.NewReplacer("/", "_", "-", "_", " ", "").Replace(s)
	if _, ok := Instruments[s]; ok {
		return s
	}
	if len(s) == 6 && !strings.Contains(s, "_") {
		pair := s[:3] + "_" + s[3:]
		if _, ok := Instruments[pair]; ok {
			return pair
		}
	}
	return s
}

func Lookup(symbol string) (InstrumentMeta, bool) {
	meta, ok := Instruments[Normalize(symbol)]
	return meta, ok
}

// PipSize returns the pip size for a given pip location.
func PipSize(loc int) float64 {
	return math.Pow(10, float64(loc))
}

// Precision is the number of price decimals to display for symbol.
func Precision(symbol string) int32 {
	if meta, ok := Lookup(symbol); ok {
		return meta.DisplayPrecision
	}
	return DefaultPrecision
}
