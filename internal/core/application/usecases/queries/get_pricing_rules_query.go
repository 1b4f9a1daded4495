// Package queries contains read operations over the pricing configuration.
package queries

import (
	"errors"

	"deliverycost/internal/pkg/guard"
)

var (
	ErrGetPricingRulesQueryIsNotConstructed = errors.New(
		"GetPricingRulesQuery must be created via NewGetPricingRulesQuery constructor",
	)
)

// GetPricingRulesQuery lists the pricing rules in the order they run.
type GetPricingRulesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPricingRulesQuery creates the query. It takes no parameters.
func NewGetPricingRulesQuery() GetPricingRulesQuery {
	return GetPricingRulesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPricingRulesQuery) Validate() error {
	return q.guard.Validate(ErrGetPricingRulesQueryIsNotConstructed)
}

// GetPricingRulesQueryResponse describes one configured rule.
type GetPricingRulesQueryResponse struct {
	Label    string
	Priority int
}
