package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"deliverycost/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// NumberScale is the number of fractional digits carried by every Number.
const NumberScale int32 = 2

// Numeric lists the input types a Number can be created from.
type Numeric interface {
	string | int | int32 | int64 | float32 | float64
}

// numerals checks the base-10 grammar before decimal parsing. decimal.NewFromString
// alone would also accept exponent notation such as "1e3".
var numerals = validator.New()

// Number is an exact decimal value normalized to NumberScale fractional digits.
// Every constructor and every arithmetic result is rounded half away from zero,
// so "10.5555" becomes 10.56 and "-999.995" becomes -1000.00.
//
// Number is an immutable value object. Its zero value is a valid 0.00.
//
// Example:
//
//	weight, err := kernel.NewNumber("7.2")
//	if err != nil {
//	    // errors.Is(err, errs.ErrInvalidNumericFormat)
//	}
//	excess := weight.Sub(kernel.MustNumber("5")).Ceil() // 3.00
type Number struct {
	value decimal.Decimal
}

// NewNumber creates a Number from a numeral string, an integer or a float.
//
// Strings must be plain base-10 numerals: an optional sign, digits, and at most one
// decimal point followed by digits. Letters, thousands separators, spaces, exponent
// notation and empty strings are rejected. Floats are taken at their shortest
// decimal representation; NaN and infinities are rejected.
//
// Returns:
//   - Number: the value rounded to NumberScale digits
//   - error: *errs.InvalidNumericFormatError when the input is not a numeral
func NewNumber[T Numeric](value T) (Number, error) {
	d, err := toDecimal(value)
	if err != nil {
		return Number{}, err
	}
	return newNumber(d), nil
}

// MustNumber is like NewNumber but panics on malformed input.
// It is meant for literals and package-level defaults.
func MustNumber[T Numeric](value T) Number {
	n, err := NewNumber(value)
	if err != nil {
		panic(err)
	}
	return n
}

// NumberFromDecimal rounds an arbitrary-precision decimal into a Number.
func NumberFromDecimal(d decimal.Decimal) Number {
	return newNumber(d)
}

// Add returns n + other.
func (n Number) Add(other Number) Number {
	return newNumber(n.value.Add(other.value))
}

// Sub returns n - other.
func (n Number) Sub(other Number) Number {
	return newNumber(n.value.Sub(other.value))
}

// Multiply returns n * other computed at full precision and then rounded.
func (n Number) Multiply(other Number) Number {
	return newNumber(n.value.Mul(other.value))
}

// Floor rounds toward negative infinity to a whole unit.
func (n Number) Floor() Number {
	return newNumber(n.value.Floor())
}

// Ceil rounds toward positive infinity to a whole unit.
func (n Number) Ceil() Number {
	return newNumber(n.value.Ceil())
}

// Cmp returns -1, 0 or +1 depending on whether n is less than, equal to or
// greater than other.
func (n Number) Cmp(other Number) int {
	return n.value.Cmp(other.value)
}

// Equal reports whether n and other hold the same value.
func (n Number) Equal(other Number) bool {
	return n.value.Equal(other.value)
}

// IsZero reports whether n is 0.00.
func (n Number) IsZero() bool {
	return n.value.IsZero()
}

// IsPositive reports whether n is strictly greater than zero.
func (n Number) IsPositive() bool {
	return n.value.IsPositive()
}

// IsNegative reports whether n is strictly less than zero.
func (n Number) IsNegative() bool {
	return n.value.IsNegative()
}

// Float returns the nearest float64. Use it for display only; all arithmetic
// stays in decimal.
func (n Number) Float() float64 {
	f, _ := n.value.Float64()
	return f
}

// Decimal returns the underlying decimal value.
func (n Number) Decimal() decimal.Decimal {
	return n.value
}

// String returns the value with exactly NumberScale fractional digits, e.g. "10.00".
func (n Number) String() string {
	return n.value.StringFixed(NumberScale)
}

// MarshalJSON encodes the Number as a JSON string so no precision is lost.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(n.String())), nil
}

func newNumber(d decimal.Decimal) Number {
	return Number{value: d.Round(NumberScale)}
}

func toDecimal(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case string:
		return parseNumeral(v)
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt32(v), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case float32:
		if !isFinite(float64(v)) {
			return decimal.Zero, errs.NewInvalidNumericFormatError(fmt.Sprint(v))
		}
		return decimal.NewFromFloat32(v), nil
	case float64:
		if !isFinite(v) {
			return decimal.Zero, errs.NewInvalidNumericFormatError(fmt.Sprint(v))
		}
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Zero, errs.NewInvalidNumericFormatError(fmt.Sprint(v))
	}
}

func parseNumeral(s string) (decimal.Decimal, error) {
	if err := numerals.Var(s, "required,numeric"); err != nil {
		return decimal.Zero, errs.NewInvalidNumericFormatError(s)
	}

	d, err := decimal.NewFromString(strings.TrimPrefix(s, "+"))
	if err != nil {
		return decimal.Zero, errs.NewInvalidNumericFormatErrorWithCause(s, err)
	}
	return d, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
