// Package commands contains the write side use cases of the pricing service.
package commands

import (
	"errors"

	"deliverycost/internal/core/domain/model/order"
	"deliverycost/internal/pkg/guard"
)

var (
	ErrCalculateDeliveryCostCommandIsNotConstructed = errors.New(
		"CalculateDeliveryCostCommand must be created via NewCalculateDeliveryCostCommand constructor",
	)
)

// CalculateDeliveryCostCommand is a request to quote the delivery of one order.
//
// Example:
//
//	o, _ := factory.Create(data)
//	cmd, err := NewCalculateDeliveryCostCommand(o)
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CalculateDeliveryCostCommand struct { //nolint:recvcheck //using for validation
	order *order.Order

	guard guard.ConstructorGuard
}

// NewCalculateDeliveryCostCommand wraps a constructed order.
func NewCalculateDeliveryCostCommand(o *order.Order) (CalculateDeliveryCostCommand, error) {
	cmd := CalculateDeliveryCostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrder(o); err != nil {
		return CalculateDeliveryCostCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CalculateDeliveryCostCommand) Validate() error {
	return c.guard.Validate(ErrCalculateDeliveryCostCommandIsNotConstructed)
}

// Order returns the order to quote.
func (c CalculateDeliveryCostCommand) Order() *order.Order {
	return c.order
}

func (c *CalculateDeliveryCostCommand) setOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	c.order = o
	return nil
}
