/*
Package naira formats and parses amounts of Nigerian Naira.
It leverages the [decimal] package for exact rounding, so amounts given as
floats are formatted from their shortest decimal representation rather than
from their binary approximation.

# Features

  - Full grouped form: ₦1,234,567.89
  - Compact form with magnitude suffixes: ₦950, ₦1.2K, ₦2.5M, ₦3B
  - Conversions between naira and kobo: ₦1,500.00 for 150000 kobo, "-7550" for ₦-75.50
  - Parsing of the full grouped form back into numbers
  - Spelling out amounts in words: one hundred Naira Only
  - Immutable [Amount] values, safe for use across multiple goroutines

# Representation

The package works with a single currency. The symbol ₦, the comma
separator, and the scale of 2 (one kobo is 0.01 naira) are constants.

Package-level functions such as [Format], [FormatCompact], and [Parse]
accept and return float64 values. The [Amount] type wraps a [decimal.Decimal]
and provides the same renderings for callers that keep money out of floats.

# Supported Ranges

Every amount must be representable as an int64 number of kobo, that is
from -92,233,720,368,547,758.08 to 92,233,720,368,547,758.07.
Formatting functions report values outside of that range, NaN, and
infinities as "NaN", "+Inf", or "-Inf" instead of failing.

# Rounding

Amounts are rounded to whole kobo, and compact amounts to one decimal of
their unit, using [rounding half away from zero], so 0.125 formats as
"₦0.13". Floats are rounded at their shortest decimal representation,
which makes Format(1.005) "₦1.01".
The minus sign is decided before rounding, so tiny negative amounts
format as "₦-0.00".

# Errors

Only parsing fails. [Parse] returns one of two [ParseError] kinds:
[EmptyInput] for blank input and [InvalidFormat] for anything that is not
a number once the sign, the symbol, and the separators are removed.

[rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
*/
package naira
