// Package money holds the fixed-point amount representation shared by every
// layer. Amounts are stored and transported as integer milliunits (one
// thousandth of the major currency unit) so arithmetic never touches floats.
package money

import (
	"github.com/shopspring/decimal"
)

// Milliunits is a signed amount scaled by 1000. Positive values are credits,
// negative values are debits.
type Milliunits int64

// Decimal converts the amount to its major-unit decimal value, e.g. -4500 -> -4.5.
func (m Milliunits) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -3)
}

// String formats the amount in major units with two fractional digits.
func (m Milliunits) String() string {
	return m.Decimal().StringFixed(2)
}
