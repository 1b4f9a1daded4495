package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"deliverycost/internal/core/domain/model/kernel"
	"deliverycost/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is an immutable snapshot of a purchase order as seen by the pricing rules.
//
// Order follows these invariants:
//   - Weight is expressed in kilograms and is never negative
//   - Total price is a constructed Money that is never negative
//   - Country code is non-empty (for example "PL", "DE", "USA")
//   - Creation time is set and keeps the offset it was given in
//   - Every item was built through NewItem
//
// Nothing mutates an Order after construction, so one Order may be priced by many
// goroutines at once.
type Order struct {
	// weight is the shipment weight in kilograms
	weight kernel.Number

	// totalPrice is the merchandise value of the order
	totalPrice kernel.Money

	// countryCode is the destination country
	countryCode string

	// createdAt is the moment the order was placed
	createdAt time.Time

	// items are the order lines; pricing rules do not read them
	items []Item

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order snapshot with validation.
//
// Parameters:
//   - weight: Shipment weight in kilograms (must not be negative)
//   - totalPrice: Merchandise value (must be constructed and not negative)
//   - countryCode: Destination country code (must not be empty)
//   - createdAt: Creation time (must not be the zero time)
//   - items: Order lines created via NewItem (may be empty)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: All validation errors joined together
//
// Example:
//
//	total, _ := kernel.NewMoneyFrom("100", "PLN")
//	createdAt, _ := time.Parse(time.RFC3339, "2024-01-19T10:00:00+01:00")
//	o, err := order.NewOrder(kernel.MustNumber("7.2"), total, "PL", createdAt, nil)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	weight kernel.Number,
	totalPrice kernel.Money,
	countryCode string,
	createdAt time.Time,
	items []Item,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setWeight(weight),
		order.setTotalPrice(totalPrice),
		order.setCountryCode(countryCode),
		order.setCreatedAt(createdAt),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order is nil or was not created via NewOrder
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// Weight returns the shipment weight in kilograms.
func (o *Order) Weight() kernel.Number {
	return o.weight
}

// TotalPrice returns the merchandise value of the order.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// CountryCode returns the destination country code.
func (o *Order) CountryCode() string {
	return o.countryCode
}

// CreatedAt returns the creation time in the offset it was supplied with.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// setWeight validates and sets the shipment weight.
// Weight must not be negative.
func (o *Order) setWeight(weight kernel.Number) error {
	if weight.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%s is negative", weight))
	}
	o.weight = weight
	return nil
}

// setTotalPrice validates and sets the merchandise value.
func (o *Order) setTotalPrice(totalPrice kernel.Money) error {
	if err := totalPrice.Validate(); err != nil {
		return err
	}
	if totalPrice.Amount().IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("totalPrice", fmt.Errorf("%s is negative", totalPrice))
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setCountryCode(countryCode string) error {
	if strings.TrimSpace(countryCode) == "" {
		return errs.NewValueIsRequiredError("countryCode")
	}
	o.countryCode = countryCode
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

// setItems copies the order lines after checking each one was constructed.
func (o *Order) setItems(items []Item) error {
	var err error
	for i, item := range items {
		if itemErr := item.Validate(); itemErr != nil {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), itemErr))
		}
	}
	if err != nil {
		return err
	}

	o.items = slices.Clone(items)
	return nil
}
