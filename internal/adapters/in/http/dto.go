package http

import (
	"deliverycost/internal/core/application/usecases/commands"
	"deliverycost/internal/core/application/usecases/queries"
)

// DeliveryCost is the body of a successful POST /api/v1/delivery-cost.
type DeliveryCost struct {
	QuoteID      string `json:"quoteId"`
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
	Formatted    string `json:"formatted"`
	Steps        []Step `json:"steps"`
}

// Step describes one pricing rule within a quote.
type Step struct {
	Label    string `json:"label"`
	Priority int    `json:"priority"`
	Applied  bool   `json:"applied"`
	Amount   string `json:"amount"`
}

// PricingRule is one element of GET /api/v1/pricing-rules.
type PricingRule struct {
	Label    string `json:"label"`
	Priority int    `json:"priority"`
}

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toDeliveryCost(result commands.CalculateDeliveryCostResult) DeliveryCost {
	steps := make([]Step, len(result.Steps))
	for i, step := range result.Steps {
		steps[i] = Step{
			Label:    step.Label,
			Priority: step.Priority,
			Applied:  step.Applied,
			Amount:   step.Amount.Amount().String(),
		}
	}

	return DeliveryCost{
		QuoteID:      result.QuoteID.String(),
		Amount:       result.Cost.Amount().String(),
		CurrencyCode: result.Cost.CurrencyCode(),
		Formatted:    result.Cost.Formatted(),
		Steps:        steps,
	}
}

func toPricingRules(rules []queries.GetPricingRulesQueryResponse) []PricingRule {
	response := make([]PricingRule, len(rules))
	for i, rule := range rules {
		response[i] = PricingRule{Label: rule.Label, Priority: rule.Priority}
	}
	return response
}
