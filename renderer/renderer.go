// Package renderer turns ledger reports into markdown documents.
package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount formats an exact decimal value in the given currency, for instance
// "€1,200.00" for EUR. The value is rounded to the currency's minor unit.
//
// An empty currency formats a plain number with two decimals.
func Amount(value decimal.Decimal, currency string) string {
	if currency == "" {
		return value.StringFixed(2)
	}
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, currency).Currency()
	minor := value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// SignedAmount is like Amount but always prints the sign, and "-" for zero.
func SignedAmount(value decimal.Decimal, currency string) string {
	if value.IsZero() {
		return "-"
	}
	if value.IsPositive() {
		return "+" + Amount(value, currency)
	}
	return Amount(value, currency)
}
