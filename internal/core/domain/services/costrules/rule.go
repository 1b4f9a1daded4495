// Package costrules contains the pricing rules the delivery cost calculator applies
// to an order, together with their configuration and the shipped default rule set.
//
// Every rule only fires when the running total is in the rule's configured currency,
// so a calculator started in a different currency leaves the total untouched.
package costrules

import (
	"errors"
	"fmt"
	"strings"

	"deliverycost/internal/core/domain/model/deliverycost"
	"deliverycost/internal/core/domain/model/kernel"
	"deliverycost/internal/core/domain/model/order"
	"deliverycost/internal/pkg/errs"
)

// Rule is a single pricing step.
//
// IsApplicable is evaluated against the running total as left by the rules with a
// lower priority. When it reports true, Calculate changes that same running total.
type Rule interface {
	IsApplicable(o *order.Order, cost deliverycost.Info) bool
	Calculate(o *order.Order, cost *deliverycost.DeliveryCost) error
	Priority() int
	Label() string
}

var one = kernel.MustNumber(1)

// meta carries what every rule has in common.
type meta struct {
	currencyCode string
	priority     int
	label        string
}

func newMeta(currencyCode string, priority int, label string) (meta, error) {
	var err error
	if strings.TrimSpace(currencyCode) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("currencyCode"))
	}
	if strings.TrimSpace(label) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("label"))
	}
	if err != nil {
		return meta{}, err
	}

	return meta{currencyCode: currencyCode, priority: priority, label: label}, nil
}

// Priority returns the ordering key; lower runs first.
func (m meta) Priority() int {
	return m.priority
}

// Label returns the human readable rule name.
func (m meta) Label() string {
	return m.label
}

// CurrencyCode returns the currency the rule applies to.
func (m meta) CurrencyCode() string {
	return m.currencyCode
}

func (m meta) matchesCurrency(cost deliverycost.Info) bool {
	return cost.CurrencyCode() == m.currencyCode
}

// parseAmount keeps errs.ErrInvalidNumericFormat reachable through errors.Is.
func parseAmount(param, value string) (kernel.Number, error) {
	n, err := kernel.NewNumber(value)
	if err != nil {
		return kernel.Number{}, fmt.Errorf("%s: %w", param, err)
	}
	return n, nil
}

// parseMultiplier turns a discount fraction in [0, 1] into the factor 1 - discount.
func parseMultiplier(param, discount string) (kernel.Number, error) {
	d, err := parseAmount(param, discount)
	if err != nil {
		return kernel.Number{}, err
	}
	if d.IsNegative() || d.Cmp(one) > 0 {
		return kernel.Number{}, errs.NewValueIsOutOfRangeError(param, d.String(), "0.00", "1.00")
	}
	return one.Sub(d), nil
}
