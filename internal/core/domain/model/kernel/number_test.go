package kernel_test

import (
	"encoding/json"
	"math"
	"testing"

	"deliverycost/internal/core/domain/model/kernel"
	"deliverycost/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumber(t *testing.T) {
	t.Run("from strings", func(t *testing.T) {
		tests := []struct {
			input    string
			expected string
		}{
			{"10", "10.00"},
			{"10.5555", "10.56"},
			{"-999.995", "-1000.00"},
			{"-999.994", "-999.99"},
			{"0", "0.00"},
			{"+7.2", "7.20"},
			{"-0.001", "0.00"},
			{"0001.10", "1.10"},
		}

		for _, tt := range tests {
			t.Run(tt.input, func(t *testing.T) {
				n, err := kernel.NewNumber(tt.input)

				require.NoError(t, err)
				assert.Equal(t, tt.expected, n.String())
			})
		}
	})

	t.Run("from integers and floats", func(t *testing.T) {
		assert.Equal(t, "10.00", kernel.MustNumber(10).String())
		assert.Equal(t, "-1.00", kernel.MustNumber(-1).String())
		assert.Equal(t, "0.00", kernel.MustNumber(0).String())
		assert.Equal(t, "42.00", kernel.MustNumber(int32(42)).String())
		assert.Equal(t, "9000000000.00", kernel.MustNumber(int64(9_000_000_000)).String())
		assert.Equal(t, "10.50", kernel.MustNumber(10.5).String())
		assert.Equal(t, "10.56", kernel.MustNumber(10.5555).String())
		assert.Equal(t, "0.00", kernel.MustNumber(0.0).String())
		assert.Equal(t, "0.25", kernel.MustNumber(float32(0.25)).String())
	})

	t.Run("rejects malformed numerals", func(t *testing.T) {
		for _, input := range []string{
			"abc", "1,23.45", "10.567.89", "10 55", "aa10", "10aa",
			"", " 10", "10 ", "1e5", "10.", ".5", "--1", "0x1A",
		} {
			t.Run(input, func(t *testing.T) {
				_, err := kernel.NewNumber(input)

				require.ErrorIs(t, err, errs.ErrInvalidNumericFormat)

				var formatErr *errs.InvalidNumericFormatError
				require.ErrorAs(t, err, &formatErr)
				assert.Equal(t, input, formatErr.Value)
			})
		}
	})

	t.Run("rejects non-finite floats", func(t *testing.T) {
		for _, input := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := kernel.NewNumber(input)

			require.ErrorIs(t, err, errs.ErrInvalidNumericFormat)
		}
	})
}

func TestMustNumber_Panics(t *testing.T) {
	assert.Panics(t, func() { kernel.MustNumber("10aa") })
}

func TestNumber_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        kernel.Number
		add      string
		sub      string
		multiply string
	}{
		{"decimal string operand", "10.00", kernel.MustNumber("5.50"), "15.50", "4.50", "55.00"},
		{"float operand", "10.00", kernel.MustNumber(4.25), "14.25", "5.75", "42.50"},
		{"operand is rounded before use", "10.00", kernel.MustNumber(4.2555), "14.26", "5.74", "42.60"},
		{"integer operand", "10.00", kernel.MustNumber(1), "11.00", "9.00", "10.00"},
		{"quarter", "10.00", kernel.MustNumber("0.25"), "10.25", "9.75", "2.50"},
		{"negative with positive", "-10", kernel.MustNumber(5), "-5.00", "-15.00", "-50.00"},
		{"negative with negative", "-10", kernel.MustNumber(-5), "-15.00", "-5.00", "50.00"},
		{"negative with rounded operand", "-10", kernel.MustNumber("5.5555"), "-4.44", "-15.56", "-55.60"},
		{"zero operand", "-10", kernel.MustNumber(0), "-10.00", "-10.00", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			a := kernel.MustNumber(tt.a)

			// When / Then
			assert.Equal(t, tt.add, a.Add(tt.b).String())
			assert.Equal(t, tt.sub, a.Sub(tt.b).String())
			assert.Equal(t, tt.multiply, a.Multiply(tt.b).String())
		})
	}

	t.Run("multiply rounds the full precision product", func(t *testing.T) {
		assert.Equal(t, "0.01", kernel.MustNumber("0.05").Multiply(kernel.MustNumber("0.10")).String())
		assert.Equal(t, "0.00", kernel.MustNumber("0.04").Multiply(kernel.MustNumber("0.10")).String())
	})
}

func TestNumber_FloorAndCeil(t *testing.T) {
	tests := []struct {
		input string
		floor string
		ceil  string
	}{
		{"10.00", "10.00", "10.00"},
		{"10.99", "10.00", "11.00"},
		{"10.01", "10.00", "11.00"},
		{"-10.99", "-11.00", "-10.00"},
		{"-10.01", "-11.00", "-10.00"},
		{"-10.00", "-10.00", "-10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n := kernel.MustNumber(tt.input)

			assert.Equal(t, tt.floor, n.Floor().String())
			assert.Equal(t, tt.ceil, n.Ceil().String())
		})
	}
}

func TestNumber_Comparisons(t *testing.T) {
	five := kernel.MustNumber("5")

	assert.Equal(t, 0, five.Cmp(kernel.MustNumber("5.00")))
	assert.Equal(t, -1, five.Cmp(kernel.MustNumber("5.01")))
	assert.Equal(t, 1, five.Cmp(kernel.MustNumber("4.99")))
	assert.True(t, five.Equal(kernel.MustNumber(5.0)))
	assert.True(t, five.IsPositive())
	assert.False(t, five.IsNegative())
	assert.True(t, kernel.MustNumber("-0.01").IsNegative())
	assert.True(t, kernel.Number{}.IsZero())
	assert.Equal(t, "0.00", kernel.Number{}.String())
	assert.InDelta(t, 7.2, kernel.MustNumber("7.2").Float(), 1e-9)
}

func TestNumber_Closure(t *testing.T) {
	a := kernel.MustNumber("123.45")
	b := kernel.MustNumber("-0.07")

	assert.True(t, a.Add(b).Sub(b).Equal(a))
	assert.True(t, a.Multiply(kernel.MustNumber(1)).Equal(a))
}

func TestNumberFromDecimal(t *testing.T) {
	n := kernel.NumberFromDecimal(decimal.RequireFromString("2.675"))

	assert.Equal(t, "2.68", n.String())
	assert.True(t, n.Decimal().Equal(decimal.RequireFromString("2.68")))
}

func TestNumber_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Amount kernel.Number `json:"amount"`
	}{Amount: kernel.MustNumber(19)})

	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"19.00"}`, string(data))
}

func FuzzNewNumber(f *testing.F) {
	for _, seed := range []string{"10", "10.5555", "-999.995", "1,23.45", "10aa", "", "1e5", "+0.5"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		n, err := kernel.NewNumber(input)
		if err != nil {
			require.ErrorIs(t, err, errs.ErrInvalidNumericFormat)
			return
		}

		reparsed, err := kernel.NewNumber(n.String())
		require.NoError(t, err)
		assert.True(t, reparsed.Equal(n))
	})
}
