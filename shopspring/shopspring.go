// Package shopspring converts between [naira.Amount] and
// [github.com/shopspring/decimal.Decimal].
//
// Both conversions go through the plain decimal string form of the value,
// so no precision is lost to binary floating point.
package shopspring

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nairakit/naira"
)

// FromDecimal converts a shopspring decimal holding a value in naira to an amount.
//
// FromDecimal returns an error if:
//   - the decimal has more digits than [naira.Amount] can hold;
//   - the value in kobo does not fit into an int64.
func FromDecimal(d decimal.Decimal) (naira.Amount, error) {
	a, err := naira.ParseAmount(d.String())
	if err != nil {
		return naira.Amount{}, fmt.Errorf("converting decimal %v: %w", d, err)
	}
	return a, nil
}

// ToDecimal converts an amount to a shopspring decimal in naira.
// The result keeps every digit of the amount, including those below one kobo.
func ToDecimal(a naira.Amount) decimal.Decimal {
	return decimal.RequireFromString(a.Decimal().String())
}
