package naira

// Properties of the Nigerian Naira as defined by [ISO 4217].
// They are the only format constants of the package and cannot be changed.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
const (
	// Symbol is the currency sign that opens every formatted amount.
	Symbol = "₦"

	// Separator groups the integer digits of a formatted amount in threes.
	Separator = ','

	// Code is the 3-letter code assigned to the Naira.
	Code = "NGN"

	// Num is the 3-digit code assigned to the Naira.
	Num = "566"

	// Scale is the number of digits after the decimal point required for
	// representing the minor unit. One kobo is 0.01 naira.
	Scale = 2

	// MajorUnit and MinorUnit are the unit names used by [Words].
	MajorUnit = "Naira"
	MinorUnit = "Kobo"
)

// koboPerNaira is 10^Scale.
const koboPerNaira = 100
