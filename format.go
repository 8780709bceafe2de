package naira

import "math"

// Format returns the full grouped representation of an amount in naira,
// such as "₦1,234,567.89" or "₦-55,000.00".
//
// The fraction is rounded to whole kobo using [rounding half away from zero]
// and may carry into the integer part.
// The minus sign follows the currency symbol and reflects the sign of
// the input before rounding, so Format(-0.001) returns "₦-0.00".
//
// Format never fails. NaN, infinities, and amounts whose value in kobo
// does not fit into an int64 are reported as "NaN", "+Inf", or "-Inf",
// the same way [strconv.FormatFloat] reports special values.
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func Format(amount float64) string {
	a, err := NewAmountFromFloat64(amount)
	if err != nil {
		return special(amount)
	}
	return a.String()
}

// FormatKobo returns the full grouped representation of an amount given
// in kobo, such as "₦1,500.00" for 150000.
// A fractional number of kobo is first rounded to an integer using
// rounding half away from zero.
// Special values are handled as in [Format].
func FormatKobo(kobo float64) string {
	if math.IsNaN(kobo) || math.IsInf(kobo, 0) {
		return special(kobo)
	}
	r := math.Round(kobo)
	if r >= 1<<63 || r < -(1<<63) {
		return special(kobo)
	}
	buf := make([]byte, 0, 32)
	return string(appendFull(buf, kobo < 0, uint64(math.Abs(r))))
}

// FormatAsKobo returns an amount in naira converted to kobo, as a plain
// integer string such as "-7550" for -75.50.
// There is no currency symbol and no grouping.
// Special values are handled as in [Format].
func FormatAsKobo(amount float64) string {
	a, err := NewAmountFromFloat64(amount)
	if err != nil {
		return special(amount)
	}
	return a.KoboString()
}

// FormatCompact returns an abbreviated representation of an amount in naira.
// The suffix is selected by the absolute value:
//
//	| Range            | Suffix | Example        |
//	| ---------------- | ------ | -------------- |
//	| [0, 1e3)         |        | ₦950, ₦950.50  |
//	| [1e3, 1e6)       | K      | ₦1.2K          |
//	| [1e6, 1e9)       | M      | ₦2.5M          |
//	| [1e9, +Inf)      | B      | ₦3B            |
//
// Without a suffix the amount is rounded to whole kobo, grouped as in
// [Format], and the fraction is omitted when it is zero, so 999.999
// becomes "₦1,000".
// With a suffix the scaled amount is rounded to one decimal place and the
// decimal is omitted when it is zero. Rounding may carry into the whole
// part, so 1999 becomes "₦2K". The suffix is selected before rounding,
// so 999999 becomes "₦1000K".
// All rounding is half away from zero. Special values are handled as in [Format].
func FormatCompact(amount float64) string {
	a, err := NewAmountFromFloat64(amount)
	if err != nil {
		return special(amount)
	}
	return a.Compact()
}

func special(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case f > 0:
		return "+Inf"
	default:
		return "-Inf"
	}
}

// appendFull appends the grouped representation of a number of kobo.
func appendFull(buf []byte, neg bool, kobo uint64) []byte {
	buf = append(buf, Symbol...)
	if neg {
		buf = append(buf, '-')
	}
	buf = appendGrouped(buf, kobo/koboPerNaira)
	frac := kobo % koboPerNaira
	return append(buf, '.', byte(frac/10)+'0', byte(frac%10)+'0')
}

// appendGrouped appends the decimal digits of n with a [Separator]
// between every group of three, counting from the right.
func appendGrouped(buf []byte, n uint64) []byte {
	var digs [26]byte // 20 digits and 6 separators
	pos := len(digs) - 1
	for i := 0; ; i++ {
		if i > 0 && i%3 == 0 {
			digs[pos] = Separator
			pos--
		}
		digs[pos] = byte(n%10) + '0'
		pos--
		n /= 10
		if n == 0 {
			break
		}
	}
	return append(buf, digs[pos+1:]...)
}
