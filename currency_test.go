package naira

import (
	"math"
	"testing"
	"unicode/utf8"
)

func TestCurrency_Constants(t *testing.T) {
	if got := utf8.RuneCountInString(Symbol); got != 1 {
		t.Errorf("Symbol %q has %v runes, want 1", Symbol, got)
	}
	if Symbol != "₦" {
		t.Errorf("Symbol = %q, want U+20A6", Symbol)
	}
	if want := int64(math.Pow10(Scale)); koboPerNaira != want {
		t.Errorf("koboPerNaira = %v, want %v", koboPerNaira, want)
	}
	if len(Code) != 3 || len(Num) != 3 {
		t.Errorf("Code = %q, Num = %q, want 3 characters each", Code, Num)
	}
}

func TestCurrency_Scale(t *testing.T) {
	tests := []Amount{
		NewAmountFromKobo(1),
		MustNewAmount(15, 0),
		MustParseAmount("1500.5"),
	}
	for _, a := range tests {
		if got := a.Decimal().Scale(); got < Scale {
			t.Errorf("%q.Decimal().Scale() = %v, want at least %v", a, got, Scale)
		}
	}
}
