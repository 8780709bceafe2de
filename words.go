package naira

import (
	"fmt"
	"strings"

	"github.com/divan/num2words"
)

// MaxWords is the largest whole number of naira that can be spelled out.
const MaxWords = 999_999_999_999

// Words spells out an amount in naira, as written on cheques and receipts:
//
//	one thousand two hundred and fifty Naira, fifty Kobo Only
//
// The kobo clause is omitted when the amount rounds to whole naira.
// Negative amounts are prefixed with "minus".
//
// Words returns an error if the float is a special value or the whole
// part of the amount exceeds [MaxWords].
func Words(amount float64) (string, error) {
	a, err := NewAmountFromFloat64(amount)
	if err != nil {
		return "", fmt.Errorf("spelling amount: %w", err)
	}
	return a.Words()
}

// Words spells out the amount. See [Words] for the format.
func (a Amount) Words() (string, error) {
	whole, kobo, ok := a.Abs().Parts()
	if !ok || whole > MaxWords {
		return "", fmt.Errorf("spelling %v: %w", a, errAmountOverflow)
	}
	var b strings.Builder
	if a.IsNeg() && (whole != 0 || kobo != 0) {
		b.WriteString("minus ")
	}
	b.WriteString(num2words.ConvertAnd(int(whole)))
	b.WriteString(" " + MajorUnit)
	if kobo != 0 {
		b.WriteString(", ")
		b.WriteString(num2words.ConvertAnd(int(kobo)))
		b.WriteString(" " + MinorUnit)
	}
	b.WriteString(" Only")
	return b.String(), nil
}
