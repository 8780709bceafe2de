package naira

import "errors"

// ParseError is the kind of failure reported by [Parse] and [ParseAmount].
// The set of kinds is closed: [EmptyInput] and [InvalidFormat].
//
// [Parse] returns the kind itself, so it can be compared directly.
// [ParseAmount] wraps it, use [errors.Is] to inspect the kind.
type ParseError uint8

const (
	// EmptyInput means the input was empty or contained only whitespace.
	EmptyInput ParseError = iota + 1

	// InvalidFormat means the text left after removing the sign, the
	// currency symbol, and the separators is not a valid number.
	InvalidFormat
)

func (e ParseError) Error() string {
	switch e {
	case EmptyInput:
		return "empty input"
	case InvalidFormat:
		return "invalid format"
	default:
		return "unknown parse error"
	}
}

var (
	errAmountOverflow = errors.New("amount overflow")
	errSpecialValue   = errors.New("special value")
	errScaleOverflow  = errors.New("too many digits after the decimal point")
)
