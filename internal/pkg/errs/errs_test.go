package errs_test

import (
	"errors"
	"testing"

	"deliverycost/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("weight")

		assert.Equal(t, "weight", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: weight", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("-1.00 is negative")
		err := errs.NewValueIsInvalidErrorWithCause("weight", cause)

		assert.Equal(t, "weight", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: weight (cause: -1.00 is negative)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("position", 0, 1, "unbounded")

		assert.Equal(t, "position", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, "unbounded", err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"value is out of range: position is 0, min value is 1, max value is unbounded",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -5, 0, 100, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is out of range: quantity is -5, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("countryCode")

		assert.Equal(t, "countryCode", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: countryCode", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("empty string")
		err := errs.NewValueIsRequiredErrorWithCause("currencyCode", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: currencyCode (cause: empty string)", err.Error())
	})
}

func TestInvalidNumericFormatError(t *testing.T) {
	t.Run("NewInvalidNumericFormatError", func(t *testing.T) {
		err := errs.NewInvalidNumericFormatError("10aa")

		assert.Equal(t, "10aa", err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, `invalid numeric format: "10aa"`, err.Error())
		assert.Equal(t, errs.ErrInvalidNumericFormat, err.Unwrap())
	})

	t.Run("NewInvalidNumericFormatErrorWithCause", func(t *testing.T) {
		cause := errors.New("can't convert 1,23.45 to decimal")
		err := errs.NewInvalidNumericFormatErrorWithCause("1,23.45", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			`invalid numeric format: "1,23.45" (cause: can't convert 1,23.45 to decimal)`,
			err.Error())
	})
}

func TestCurrencyMismatchError(t *testing.T) {
	err := errs.NewCurrencyMismatchError("USD", "EUR")

	assert.Equal(t, "USD", err.Expected)
	assert.Equal(t, "EUR", err.Actual)
	assert.Equal(t, "currency mismatch: cannot combine USD with EUR", err.Error())
	assert.Equal(t, errs.ErrCurrencyMismatch, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "invalid numeric format", errs.ErrInvalidNumericFormat.Error())
	assert.Equal(t, "currency mismatch", errs.ErrCurrencyMismatch.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"required", errs.NewValueIsRequiredError("x"), errs.ErrValueIsRequired},
		{"invalid", errs.NewValueIsInvalidError("x"), errs.ErrValueIsInvalid},
		{"out of range", errs.NewValueIsOutOfRangeError("x", 1, 2, 3), errs.ErrValueIsOutOfRange},
		{"numeric format", errs.NewInvalidNumericFormatError("x"), errs.ErrInvalidNumericFormat},
		{"currency mismatch", errs.NewCurrencyMismatchError("PLN", "EUR"), errs.ErrCurrencyMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.sentinel)

			joined := errors.Join(errors.New("other"), tt.err)
			require.ErrorIs(t, joined, tt.sentinel)
		})
	}

	t.Run("errors.As extracts details", func(t *testing.T) {
		var target *errs.InvalidNumericFormatError
		err := errors.Join(errs.NewValueIsRequiredError("weight"), errs.NewInvalidNumericFormatError("7,2"))

		require.ErrorAs(t, err, &target)
		assert.Equal(t, "7,2", target.Value)
	})
}

func TestIsInvalidInput(t *testing.T) {
	assert.True(t, errs.IsInvalidInput(errs.NewValueIsRequiredError("x")))
	assert.True(t, errs.IsInvalidInput(errs.NewValueIsInvalidError("x")))
	assert.True(t, errs.IsInvalidInput(errs.NewValueIsOutOfRangeError("x", 0, 1, 2)))
	assert.True(t, errs.IsInvalidInput(errors.Join(errors.New("other"), errs.NewInvalidNumericFormatError("x"))))
	assert.False(t, errs.IsInvalidInput(errs.NewCurrencyMismatchError("PLN", "EUR")))
	assert.False(t, errs.IsInvalidInput(errors.New("boom")))
	assert.False(t, errs.IsInvalidInput(nil))
}
