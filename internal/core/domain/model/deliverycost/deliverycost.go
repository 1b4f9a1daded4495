// Package deliverycost holds the running total that pricing rules build up while an
// order is priced.
package deliverycost

import (
	"deliverycost/internal/core/domain/model/kernel"
)

// Info is the read-only view of the running total handed to applicability checks.
type Info interface {
	Amount() kernel.Number
	CurrencyCode() string
}

// DeliveryCost accumulates the cost of delivering one order. It starts from an
// initial Money and is changed in place by each applied rule. The currency never
// changes.
//
// A DeliveryCost belongs to a single pricing run and is not safe for concurrent use.
type DeliveryCost struct {
	money kernel.Money
}

var _ Info = (*DeliveryCost)(nil)

// New starts an accumulator at initial.
func New(initial kernel.Money) (*DeliveryCost, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	return &DeliveryCost{money: initial}, nil
}

// Add increases the running total by amount.
func (c *DeliveryCost) Add(amount kernel.Number) *DeliveryCost {
	c.money = c.money.WithAmount(c.money.Amount().Add(amount))
	return c
}

// Sub decreases the running total by amount.
func (c *DeliveryCost) Sub(amount kernel.Number) *DeliveryCost {
	c.money = c.money.WithAmount(c.money.Amount().Sub(amount))
	return c
}

// Multiply scales the running total by factor.
func (c *DeliveryCost) Multiply(factor kernel.Number) *DeliveryCost {
	c.money = c.money.WithAmount(c.money.Amount().Multiply(factor))
	return c
}

// Money returns the current total.
func (c *DeliveryCost) Money() kernel.Money {
	return c.money
}

// Amount returns the current total without its currency.
func (c *DeliveryCost) Amount() kernel.Number {
	return c.money.Amount()
}

// CurrencyCode returns the accumulator's currency.
func (c *DeliveryCost) CurrencyCode() string {
	return c.money.CurrencyCode()
}
