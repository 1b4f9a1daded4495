package queries

import (
	"context"

	"deliverycost/internal/core/ports"
)

// GetPricingRulesQueryHandler reads the rule list straight from the engine.
type GetPricingRulesQueryHandler struct {
	engine ports.DeliveryCostEngine
}

// NewGetPricingRulesQueryHandler creates the handler.
func NewGetPricingRulesQueryHandler(engine ports.DeliveryCostEngine) GetPricingRulesQueryHandler {
	return GetPricingRulesQueryHandler{engine: engine}
}

// Handle returns the rules sorted by ascending priority.
func (h GetPricingRulesQueryHandler) Handle(
	ctx context.Context,
	query GetPricingRulesQuery,
) ([]GetPricingRulesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rules := h.engine.Rules()
	response := make([]GetPricingRulesQueryResponse, 0, len(rules))
	for _, rule := range rules {
		response = append(response, GetPricingRulesQueryResponse{
			Label:    rule.Label(),
			Priority: rule.Priority(),
		})
	}

	return response, nil
}
