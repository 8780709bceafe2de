package naira

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

// Amount type represents a monetary amount in Naira.
// Its zero value corresponds to "₦0.00".
// Amount is designed to be safe for concurrent use by multiple goroutines.
//
// An Amount keeps the full precision of the value it was created from.
// Rounding to kobo happens only when the amount is rendered, encoded as
// text, or converted to minor units, so the sign of an amount such as -0.001 is preserved
// in its formatted forms.
type Amount struct {
	value decimal.Decimal // monetary value in naira
}

// newAmountUnsafe creates a new amount without checking the scale.
// Use it only if you are absolutely sure that the argument is valid.
func newAmountUnsafe(d decimal.Decimal) Amount {
	return Amount{value: d}
}

// newAmountSafe creates a new amount, pads it to the scale of the currency,
// and checks that its value in kobo fits into an int64.
func newAmountSafe(d decimal.Decimal) (Amount, error) {
	if d.Scale() < Scale {
		d = d.Pad(Scale)
		if d.Scale() < Scale {
			return Amount{}, fmt.Errorf("padding amount: %w", errAmountOverflow)
		}
	}
	a := newAmountUnsafe(d)
	if _, ok := a.Kobo(); !ok {
		return Amount{}, fmt.Errorf("converting to kobo: %w", errAmountOverflow)
	}
	return a, nil
}

// NewAmount returns an amount equal to coef / 10^scale.
// If the scale is less than [Scale], the result is zero-padded to the right.
//
// NewAmount returns an error if:
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the value of the result in kobo does not fit into an int64.
func NewAmount(coef int64, scale int) (Amount, error) {
	d, err := decimal.New(coef, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w", err)
	}
	a, err := newAmountSafe(d)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return a, nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(coef int64, scale int) Amount {
	a, err := NewAmount(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%v, %v) failed: %v", coef, scale, err))
	}
	return a
}

// NewAmountFromKobo converts an integer number of kobo to an amount.
// Every int64 is a valid number of kobo.
// See also method [Amount.Kobo].
func NewAmountFromKobo(kobo int64) Amount {
	return newAmountUnsafe(decimal.MustNew(kobo, Scale))
}

// NewAmountFromDecimal returns an amount with the specified value.
// See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns an error if the value in kobo does not fit
// into an int64.
func NewAmountFromDecimal(d decimal.Decimal) (Amount, error) {
	return newAmountSafe(d)
}

// NewAmountFromFloat64 converts a float to an amount.
// The float is taken at its shortest decimal representation, the one
// printed by [strconv.FormatFloat] with precision -1, so 0.1 becomes
// exactly 0.1 rather than its binary approximation.
// See also method [Amount.Float64].
//
// NewAmountFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the value in kobo does not fit into an int64.
func NewAmountFromFloat64(amount float64) (Amount, error) {
	d, err := newDecimalFromFloat64(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	a, err := newAmountSafe(d)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	return a, nil
}

func newDecimalFromFloat64(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, fmt.Errorf("%w %v", errSpecialValue, f)
	}
	d, err := decimal.Parse(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		// Tiny floats have more fractional digits than a decimal can hold.
		intdigs := len(strconv.FormatFloat(math.Abs(math.Trunc(f)), 'f', 0, 64))
		if intdigs >= decimal.MaxPrec {
			return decimal.Decimal{}, errAmountOverflow
		}
		d, err = decimal.Parse(strconv.FormatFloat(f, 'f', decimal.MaxPrec-intdigs, 64))
		if err != nil {
			return decimal.Decimal{}, err
		}
	}
	if d.IsZero() && f != 0 {
		// Keep the sign of a value below the smallest decimal step.
		if f < 0 {
			return decimal.MustNew(-1, decimal.MaxScale), nil
		}
		return decimal.MustNew(1, decimal.MaxScale), nil
	}
	return d, nil
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(amount string) Amount {
	a, err := ParseAmount(amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q) failed: %v", amount, err))
	}
	return a
}

// Kobo returns a (possibly rounded) amount in kobo.
// If the scale of the amount is greater than [Scale], then the fractional
// part is rounded using [rounding half away from zero].
// See also constructor [NewAmountFromKobo].
//
// If the result cannot be represented as an int64, then false is returned.
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func (a Amount) Kobo() (kobo int64, ok bool) {
	d := a.RoundToKobo().Decimal()
	u := d.Coef()
	if d.IsNeg() {
		if u > -math.MinInt64 {
			return 0, false
		}
		return -int64(u), true //nolint:gosec
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// koboAbs returns the absolute value of the amount in kobo.
func (a Amount) koboAbs() uint64 {
	return roundHalfAway(a.Decimal().Abs(), Scale).Pad(Scale).Coef()
}

// roundHalfAway rounds d to the given scale.
// Halves are rounded away from zero, 0.125 becomes 0.13 and -0.125 becomes -0.13.
func roundHalfAway(d decimal.Decimal, scale int) decimal.Decimal {
	if d.Scale() <= scale {
		return d
	}
	half := decimal.MustNew(5, scale+1)
	if d.IsNeg() {
		half = half.Neg()
	}
	r, err := d.Add(half)
	if err != nil {
		// d has digits beyond the scale, so its integer part has room for a carry.
		panic(fmt.Sprintf("%v.Add(%v) failed: %v", d, half, err))
	}
	return r.Trunc(scale)
}

// Float64 returns the nearest binary floating-point number.
// See also constructor [NewAmountFromFloat64].
func (a Amount) Float64() (f float64, ok bool) {
	return a.Decimal().Float64()
}

// Parts returns the whole naira and the (possibly rounded) kobo of the amount.
// Both parts carry the sign of the amount.
// The relationship between the amount and the returned values can be expressed
// as a = naira + kobo / 100.
//
// Parts returns false if the result cannot be represented as a pair of int64 values.
func (a Amount) Parts() (naira, kobo int64, ok bool) {
	return roundHalfAway(a.Decimal(), Scale).Int64(Scale)
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.Decimal().Sign()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.Decimal().IsNeg()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Decimal().IsZero()
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return newAmountUnsafe(a.Decimal().Abs())
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return newAmountUnsafe(a.Decimal().Neg())
}

// RoundToKobo returns an amount rounded to whole kobo
// using [rounding half away from zero].
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func (a Amount) RoundToKobo() Amount {
	return newAmountUnsafe(roundHalfAway(a.Decimal(), Scale))
}

// String implements the [fmt.Stringer] interface and returns the full
// grouped representation of the amount, such as "₦-1,234,567.89".
// The value is rounded to whole kobo, the sign is taken before rounding.
// See also methods [Amount.Compact], [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return string(a.appendFull(make([]byte, 0, 32)))
}

func (a Amount) appendFull(buf []byte) []byte {
	return appendFull(buf, a.IsNeg(), a.koboAbs())
}

// KoboString returns the amount in kobo as a plain integer string,
// such as "-7550". There is no currency symbol and no grouping.
// See also method [Amount.Kobo].
func (a Amount) KoboString() string {
	return string(a.appendKobo(make([]byte, 0, 24)))
}

func (a Amount) appendKobo(buf []byte) []byte {
	if a.IsNeg() {
		buf = append(buf, '-')
	}
	return strconv.AppendUint(buf, a.koboAbs(), 10)
}

// Compact returns an abbreviated representation of the amount with a
// magnitude suffix, such as "₦2.5M".
// See [FormatCompact] for the exact rules.
func (a Amount) Compact() string {
	buf := make([]byte, 0, 24)
	buf = append(buf, Symbol...)
	if a.IsNeg() {
		buf = append(buf, '-')
	}
	d := a.Decimal().Abs()
	for _, t := range compactTiers {
		if d.Cmp(t.unit) < 0 {
			continue
		}
		q, err := d.Quo(t.unit)
		if err != nil {
			// The divisor is a positive power of ten, the quotient is always defined.
			panic(fmt.Sprintf("%v.Quo(%v) failed: %v", d, t.unit, err))
		}
		whole, frac, _ := roundHalfAway(q, 1).Int64(1)
		buf = strconv.AppendInt(buf, whole, 10)
		if frac != 0 {
			buf = append(buf, '.', byte(frac)+'0')
		}
		return string(append(buf, t.suffix))
	}
	whole, frac, _ := roundHalfAway(d, Scale).Int64(Scale)
	buf = appendGrouped(buf, uint64(whole)) //nolint:gosec
	if frac != 0 {
		buf = append(buf, '.', byte(frac/10)+'0', byte(frac%10)+'0')
	}
	return string(buf)
}

// compactTiers are ordered from the largest unit to the smallest.
var compactTiers = [...]struct {
	unit   decimal.Decimal
	suffix byte
}{
	{decimal.MustNew(1_000_000_000, 0), 'B'},
	{decimal.MustNew(1_000_000, 0), 'M'},
	{decimal.MustNew(1_000, 0), 'K'},
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example      | Description             |
//	| ------ | ------------ | ----------------------- |
//	| %s, %v | ₦1,500.50    | Grouped amount          |
//	| %q     | "₦1,500.50"  | Quoted grouped amount   |
//	| %f     | 1500.50      | Plain amount            |
//	| %d     | 150050       | Amount in kobo          |
//
// The '-' format flag can be used with all verbs.
//
// Precision is only supported for the %f verb.
// The default precision is [Scale] and it cannot be smaller than that.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	var body []byte
	switch verb {
	case 'd', 'D':
		body = a.appendKobo(nil)
	case 'f', 'F':
		scale := Scale
		if p, ok := state.Precision(); ok && p > scale {
			scale = p
		}
		if a.IsNeg() {
			body = append(body, '-')
		}
		body = fmt.Appendf(body, "%.*f", scale, roundHalfAway(a.Decimal().Abs(), scale))
	default:
		body = a.appendFull(nil)
	}

	// Opening and closing quotes
	if verb == 'q' || verb == 'Q' {
		body = strconv.AppendQuote(nil, string(body))
	}

	// Calculating padding
	var lspaces, tspaces int
	if w, ok := state.Width(); ok {
		if n := utf8.RuneCount(body); w > n {
			if state.Flag('-') {
				tspaces = w - n
			} else {
				lspaces = w - n
			}
		}
	}

	buf := make([]byte, 0, lspaces+len(body)+tspaces)
	for range lspaces {
		buf = append(buf, ' ')
	}
	buf = append(buf, body...)
	for range tspaces {
		buf = append(buf, ' ')
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(naira.Amount="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseAmount].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	var err error
	*a, err = ParseAmount(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the grouped representation, so an amount
// is encoded in JSON as a string such as "₦1,500.50".
// The encoding is rounded to whole kobo: digits below one kobo are lost,
// and an amount that rounds to zero, such as -0.001, decodes as zero.
// Use [Amount.Decimal] where the exact value has to be kept.
// See also method [Amount.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return a.appendFull(nil), nil
}

// Scan implements the [sql.Scanner] interface.
// Integers are taken as kobo, floats as naira, and strings are parsed
// with [ParseAmount].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (a *Amount) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case int64:
		*a = NewAmountFromKobo(value)
	case float64:
		*a, err = NewAmountFromFloat64(value)
	case string:
		*a, err = ParseAmount(value)
	case []byte:
		*a, err = ParseAmount(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values", Amount{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Amount{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The amount is stored as an integer number of kobo.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (a Amount) Value() (driver.Value, error) {
	kobo, ok := a.Kobo()
	if !ok {
		return nil, fmt.Errorf("converting %v to kobo: %w", a, errAmountOverflow)
	}
	return kobo, nil
}
