package naira

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// Parse converts a currency string to an amount in naira.
// It accepts the output of [Format] as well as looser forms:
//
//	₦1,500.50
//	₦-1,500.50
//	-₦1,500.50
//	1500.5
//	1,234
//
// Surrounding whitespace is ignored. A single leading minus sign negates
// the result. Every currency symbol and separator is removed wherever it
// appears, grouping is not validated. The remaining text must be a
// decimal number, optionally with an exponent.
//
// Parse returns [EmptyInput] if the input is empty or blank, and
// [InvalidFormat] if the remaining text is not a finite number.
// The compact form returned by [FormatCompact] is not accepted.
func Parse(input string) (float64, error) {
	neg, text, err := clean(input)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, InvalidFormat
	}
	if neg {
		f = -f
	}
	return f, nil
}

// ParseAmount is like [Parse] but returns an exact amount instead of a float.
// The value may have at most [decimal.MaxScale] significant digits after
// the decimal point, trailing zeros and the exponent taken into account.
// Longer fractions are reported as [InvalidFormat] rather than rounded,
// so that a tiny amount such as -1e-23 does not lose its sign.
// Errors wrap the [ParseError] kind, use [errors.Is] to inspect it.
func ParseAmount(input string) (Amount, error) {
	neg, text, err := clean(input)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	d, err := decimal.Parse(text)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w: %w", InvalidFormat, err)
	}
	if fracDigits(text) > decimal.MaxScale {
		return Amount{}, fmt.Errorf("parsing amount: %w: %w", InvalidFormat, errScaleOverflow)
	}
	if neg {
		d = d.Neg()
	}
	a, err := newAmountSafe(d)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w: %w", InvalidFormat, err)
	}
	return a, nil
}

var stripper = strings.NewReplacer(Symbol, "", string(Separator), "")

// clean trims the input, detaches a leading minus sign, and removes
// currency symbols and separators from the rest.
func clean(input string) (neg bool, text string, err error) {
	text = strings.TrimSpace(input)
	if text == "" {
		return false, "", EmptyInput
	}
	if text[0] == '-' {
		neg = true
		text = text[1:]
	}
	text = stripper.Replace(text)
	if !isDecimal(text) {
		return false, "", InvalidFormat
	}
	return neg, text, nil
}

// fracDigits returns the number of significant digits after the decimal
// point of a number in decimal notation, with the exponent applied.
// The text must already be accepted by [decimal.Parse].
func fracDigits(text string) int {
	mant, exp := text, 0
	if i := strings.IndexAny(text, "eE"); i >= 0 {
		e, err := strconv.Atoi(text[i+1:])
		if err != nil {
			return 0
		}
		mant, exp = text[:i], e
	}
	mant = strings.TrimLeft(mant, "+-")
	whole, frac, _ := strings.Cut(mant, ".")
	digs := whole + frac
	sig := strings.TrimRight(digs, "0")
	if strings.Trim(sig, "0") == "" {
		return 0
	}
	return len(frac) - exp - (len(digs) - len(sig))
}

// isDecimal reports whether s is non-empty and uses only the characters of
// decimal notation. It keeps hexadecimal floats, underscores, and the
// spellings of NaN and Inf away from strconv.ParseFloat.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
		case c == '.', c == '+', c == '-', c == 'e', c == 'E':
		default:
			return false
		}
	}
	return true
}
