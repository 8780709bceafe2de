package shopspring

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairakit/naira"
)

func TestFromDecimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d    decimal.Decimal
			want string
		}{
			{decimal.Zero, "₦0.00"},
			{decimal.NewFromInt(1500), "₦1,500.00"},
			{decimal.RequireFromString("1500.5"), "₦1,500.50"},
			{decimal.RequireFromString("-75.50"), "₦-75.50"},
			{decimal.New(15, 2), "₦1,500.00"},
			{decimal.RequireFromString("0.125"), "₦0.13"},
			{decimal.RequireFromString("92233720368547758.07"), "₦92,233,720,368,547,758.07"},
		}
		for _, tt := range tests {
			got, err := FromDecimal(tt.d)
			require.NoError(t, err, "FromDecimal(%v)", tt.d)
			assert.Equal(t, tt.want, got.String(), "FromDecimal(%v)", tt.d)
		}
	})

	t.Run("exact", func(t *testing.T) {
		got, err := FromDecimal(decimal.RequireFromString("-0.001"))
		require.NoError(t, err)
		assert.True(t, got.IsNeg())
		assert.Equal(t, "₦-0.00", got.String())
		assert.Equal(t, "-0.001", got.Decimal().String())
	})

	t.Run("error", func(t *testing.T) {
		tests := []decimal.Decimal{
			decimal.RequireFromString("92233720368547758.08"),
			decimal.New(1, 30),
			decimal.New(1, -40),
		}
		for _, d := range tests {
			_, err := FromDecimal(d)
			require.Error(t, err, "FromDecimal(%v)", d)
			assert.True(t, errors.Is(err, naira.InvalidFormat), "FromDecimal(%v) = %v", d, err)
		}
	})
}

func TestToDecimal(t *testing.T) {
	tests := []struct {
		a    naira.Amount
		want string
	}{
		{naira.Amount{}, "0"},
		{naira.NewAmountFromKobo(150050), "1500.5"},
		{naira.NewAmountFromKobo(-7550), "-75.5"},
		{naira.MustParseAmount("0.30000000000000004"), "0.30000000000000004"},
	}
	for _, tt := range tests {
		got := ToDecimal(tt.a)
		assert.Equal(t, tt.want, got.String(), "ToDecimal(%v)", tt.a)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "1500.50", "0.01", "-0.001", "123456789.123456789"} {
		d := decimal.RequireFromString(s)
		a, err := FromDecimal(d)
		require.NoError(t, err, "FromDecimal(%v)", d)
		got := ToDecimal(a)
		assert.True(t, got.Equal(d), "ToDecimal(FromDecimal(%v)) = %v", d, got)
	}
}
