// Package ports declares the contracts the application layer depends on.
package ports

import (
	"deliverycost/internal/core/domain/model/deliverycost"
	"deliverycost/internal/core/domain/model/order"
	"deliverycost/internal/core/domain/services"
	"deliverycost/internal/core/domain/services/costrules"
)

// DeliveryCostEngine prices orders. services.DeliveryCostCalculator satisfies it.
type DeliveryCostEngine interface {
	// ExecuteWithBreakdown prices o and reports what every rule did.
	ExecuteWithBreakdown(o *order.Order) (*deliverycost.DeliveryCost, []services.Step, error)

	// Rules returns the configured rules in the order they run.
	Rules() []costrules.Rule

	// CurrencyCode returns the currency every run starts in.
	CurrencyCode() string
}
