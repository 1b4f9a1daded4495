package kernel

import (
	"errors"
	"strings"

	"deliverycost/internal/pkg/errs"
	"deliverycost/internal/pkg/guard"
)

// DefaultCurrency is the currency used when an order or a rule does not name one.
const DefaultCurrency = "PLN"

// ErrMoneyIsNotConstructed is returned when a zero value Money is used.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, NewMoneyFrom or ZeroMoney constructors")

// Money pairs a Number amount with a currency code.
//
// Money never converts between currencies: Add fails with
// *errs.CurrencyMismatchError when the codes differ. Money is an immutable value
// object; operations return new values.
//
// Example:
//
//	price, _ := kernel.NewMoneyFrom("10.5", "USD")
//	fmt.Println(price.Formatted()) // 10.50 USD
type Money struct { //nolint:recvcheck //using for validation
	amount       Number
	currencyCode string
	guard        guard.ConstructorGuard
}

// NewMoney creates Money from an amount and a non-empty currency code.
func NewMoney(amount Number, currencyCode string) (Money, error) {
	m := Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}

	if err := m.setCurrencyCode(currencyCode); err != nil {
		return Money{}, err
	}

	return m, nil
}

// NewMoneyFrom creates Money from any Numeric input, coercing it with NewNumber.
// Both a malformed amount and a missing currency code are reported together.
func NewMoneyFrom[T Numeric](value T, currencyCode string) (Money, error) {
	amount, amountErr := NewNumber(value)

	m := Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(amountErr, m.setCurrencyCode(currencyCode)); err != nil {
		return Money{}, err
	}

	return m, nil
}

// ZeroMoney returns 0.00 in the given currency.
func ZeroMoney(currencyCode string) (Money, error) {
	return NewMoney(Number{}, currencyCode)
}

// Validate reports whether the Money was built by one of its constructors.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the numeric amount.
func (m Money) Amount() Number {
	return m.amount
}

// CurrencyCode returns the currency code, e.g. "PLN".
func (m Money) CurrencyCode() string {
	return m.currencyCode
}

// Add returns the sum of m and other.
//
// Returns:
//   - Money: the sum in the shared currency
//   - error: validation error for unconstructed operands, or
//     *errs.CurrencyMismatchError when the currency codes differ
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	if m.currencyCode != other.currencyCode {
		return Money{}, errs.NewCurrencyMismatchError(m.currencyCode, other.currencyCode)
	}

	return m.WithAmount(m.amount.Add(other.amount)), nil
}

// WithAmount returns a copy of m holding amount in the same currency.
func (m Money) WithAmount(amount Number) Money {
	m.amount = amount
	return m
}

// IsEqual compares amount and currency. Both values must be constructed.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.currencyCode == other.currencyCode && m.amount.Equal(other.amount), nil
}

// Formatted renders the amount followed by the currency code, e.g. "10.50 USD".
func (m Money) Formatted() string {
	return m.amount.String() + " " + m.currencyCode
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return m.Formatted()
}

func (m *Money) setCurrencyCode(currencyCode string) error {
	if strings.TrimSpace(currencyCode) == "" {
		return errs.NewValueIsRequiredError("currencyCode")
	}

	m.currencyCode = currencyCode
	return nil
}
