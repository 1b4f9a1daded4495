package order

import (
	"errors"
	"fmt"

	"deliverycost/internal/core/domain/model/kernel"
	"deliverycost/internal/pkg/errs"
	"deliverycost/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when a zero value Item is used.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single order line. It is carried for completeness of the snapshot;
// none of the pricing rules look at it.
type Item struct { //nolint:recvcheck //using for validation
	position int
	name     string
	price    kernel.Money
	quantity int
	guard    guard.ConstructorGuard
}

// NewItem creates an order line. Position starts at 1, quantity must not be negative
// and price must be a constructed Money.
func NewItem(position int, name string, price kernel.Money, quantity int) (Item, error) {
	item := Item{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setPosition(position),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate reports whether the Item was built by NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Position returns the 1-based line number.
func (i Item) Position() int {
	return i.position
}

// Name returns the product name. It may be empty.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price.
func (i Item) Price() kernel.Money {
	return i.price
}

// Quantity returns the number of units.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setPosition(position int) error {
	if position < 1 {
		return errs.NewValueIsOutOfRangeError("position", position, 1, "unbounded")
	}
	i.position = position
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	i.quantity = quantity
	return nil
}
