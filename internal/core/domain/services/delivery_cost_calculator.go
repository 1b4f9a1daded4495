package services

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"deliverycost/internal/core/domain/model/deliverycost"
	"deliverycost/internal/core/domain/model/kernel"
	"deliverycost/internal/core/domain/model/order"
	"deliverycost/internal/core/domain/services/costrules"
	"deliverycost/internal/pkg/errs"
)

// Step records what a single rule did during a pricing run.
type Step struct {
	// Label is the rule's human readable name.
	Label string

	// Priority is the rule's ordering key.
	Priority int

	// Applied reports whether the rule's applicability check passed.
	Applied bool

	// Amount is the running total after the rule, whether it applied or not.
	Amount kernel.Money
}

// CalculatorOption customizes a DeliveryCostCalculator.
type CalculatorOption func(*DeliveryCostCalculator)

// WithCurrency sets the currency the running total starts in. Rules bound to another
// currency never fire.
func WithCurrency(currencyCode string) CalculatorOption {
	return func(c *DeliveryCostCalculator) {
		c.currencyCode = currencyCode
	}
}

// DeliveryCostCalculator is a domain service that prices the delivery of an order by
// running an ordered set of rules over a running total.
//
// Key responsibilities:
//   - Ordering rules by ascending priority once, keeping registration order on ties
//   - Starting every run at zero in the calculator's currency
//   - Letting each rule check applicability against the live running total
//   - Stopping at the first rule that fails
//
// The rule list is never modified after construction and every run owns its own
// running total, so Execute may be called from many goroutines at once.
//
// Example usage:
//
//	rules, _ := costrules.Defaults(kernel.DefaultCurrency)
//	calculator, _ := services.NewDeliveryCostCalculator(rules)
//
//	cost, err := calculator.Execute(o)
//	if err != nil {
//	    // Handle invalid order or failing rule
//	    return
//	}
//	fmt.Println(cost.Money().Formatted()) // 19.00 PLN
type DeliveryCostCalculator struct {
	rules        []costrules.Rule
	currencyCode string
}

// NewDeliveryCostCalculator creates a calculator over rules.
//
// Parameters:
//   - rules: Pricing rules in any order (nil entries are rejected)
//   - opts: Optional settings such as WithCurrency
//
// Returns:
//   - *DeliveryCostCalculator: The calculator with rules sorted by priority
//   - error: Validation error for nil rules or an empty currency code
func NewDeliveryCostCalculator(
	rules []costrules.Rule,
	opts ...CalculatorOption,
) (*DeliveryCostCalculator, error) {
	c := &DeliveryCostCalculator{
		currencyCode: kernel.DefaultCurrency,
	}
	for _, opt := range opts {
		opt(c)
	}

	var err error
	if strings.TrimSpace(c.currencyCode) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("currencyCode"))
	}
	for i, rule := range rules {
		if rule == nil {
			err = errors.Join(err, errs.NewValueIsRequiredError(fmt.Sprintf("rules[%d]", i)))
		}
	}
	if err != nil {
		return nil, err
	}

	c.rules = slices.Clone(rules)
	slices.SortStableFunc(c.rules, func(a, b costrules.Rule) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})

	return c, nil
}

// Execute prices the delivery of o.
//
// Returns:
//   - *deliverycost.DeliveryCost: The final running total
//   - error: ErrOrderIsNotConstructed for an invalid order, or the first rule error
func (c *DeliveryCostCalculator) Execute(o *order.Order) (*deliverycost.DeliveryCost, error) {
	return c.run(o, nil)
}

// ExecuteWithBreakdown prices the delivery of o and also reports one Step per rule,
// in the order the rules ran.
func (c *DeliveryCostCalculator) ExecuteWithBreakdown(
	o *order.Order,
) (*deliverycost.DeliveryCost, []Step, error) {
	steps := make([]Step, 0, len(c.rules))
	cost, err := c.run(o, func(step Step) {
		steps = append(steps, step)
	})
	if err != nil {
		return nil, nil, err
	}

	return cost, steps, nil
}

// Rules returns the rules in the order they run.
func (c *DeliveryCostCalculator) Rules() []costrules.Rule {
	return slices.Clone(c.rules)
}

// CurrencyCode returns the currency every run starts in.
func (c *DeliveryCostCalculator) CurrencyCode() string {
	return c.currencyCode
}

func (c *DeliveryCostCalculator) run(o *order.Order, record func(Step)) (*deliverycost.DeliveryCost, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	initial, err := kernel.ZeroMoney(c.currencyCode)
	if err != nil {
		return nil, err
	}

	cost, err := deliverycost.New(initial)
	if err != nil {
		return nil, err
	}

	for _, rule := range c.rules {
		applied := rule.IsApplicable(o, cost)
		if applied {
			if err = rule.Calculate(o, cost); err != nil {
				return nil, fmt.Errorf("rule %q: %w", rule.Label(), err)
			}
		}

		if record != nil {
			record(Step{
				Label:    rule.Label(),
				Priority: rule.Priority(),
				Applied:  applied,
				Amount:   cost.Money(),
			})
		}
	}

	return cost, nil
}
