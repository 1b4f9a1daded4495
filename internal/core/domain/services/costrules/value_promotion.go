package costrules

import (
	"errors"
	"maps"
	"slices"

	"deliverycost/internal/core/domain/model/deliverycost"
	"deliverycost/internal/core/domain/model/kernel"
	"deliverycost/internal/core/domain/model/order"
)

// ValuePromotionConfig configures ValuePromotion. Discounts are fractions in [0, 1]
// where 1 makes delivery free and 0.5 halves it.
type ValuePromotionConfig struct {
	MinTotalPrice       string
	DefaultDiscount     string
	DiscountsPerCountry map[string]string
	CurrencyCode        string
	Priority            int
	Label               string
}

// DefaultValuePromotionConfig returns the shipped promotion: orders worth at least
// 400 ship free, except to the USA where delivery is halved.
func DefaultValuePromotionConfig() ValuePromotionConfig {
	return ValuePromotionConfig{
		MinTotalPrice:   "400",
		DefaultDiscount: "1.0",
		DiscountsPerCountry: map[string]string{
			"USA": "0.5",
		},
		CurrencyCode: kernel.DefaultCurrency,
		Priority:     300,
		Label:        "Value promotion",
	}
}

// ValuePromotion discounts delivery for orders whose merchandise value reaches a
// threshold. The discount depends on the destination country.
type ValuePromotion struct {
	meta
	minTotalPrice     kernel.Number
	defaultMultiplier kernel.Number
	multipliers       map[string]kernel.Number
}

var _ Rule = (*ValuePromotion)(nil)

// NewValuePromotion validates cfg and builds the rule.
func NewValuePromotion(cfg ValuePromotionConfig) (*ValuePromotion, error) {
	m, metaErr := newMeta(cfg.CurrencyCode, cfg.Priority, cfg.Label)
	minTotal, minErr := parseAmount("minTotalPrice", cfg.MinTotalPrice)
	defaultMultiplier, defaultErr := parseMultiplier("defaultDiscount", cfg.DefaultDiscount)
	err := errors.Join(metaErr, minErr, defaultErr)

	multipliers := make(map[string]kernel.Number, len(cfg.DiscountsPerCountry))
	for _, country := range slices.Sorted(maps.Keys(cfg.DiscountsPerCountry)) {
		multiplier, parseErr := parseMultiplier("discountsPerCountry["+country+"]", cfg.DiscountsPerCountry[country])
		if parseErr != nil {
			err = errors.Join(err, parseErr)
			continue
		}
		multipliers[country] = multiplier
	}

	if err != nil {
		return nil, err
	}

	return &ValuePromotion{
		meta:              m,
		minTotalPrice:     minTotal,
		defaultMultiplier: defaultMultiplier,
		multipliers:       multipliers,
	}, nil
}

// IsApplicable reports whether the order total reaches the threshold and the running
// total is in the configured currency. The order total's own currency is not checked.
func (r *ValuePromotion) IsApplicable(o *order.Order, cost deliverycost.Info) bool {
	return o.TotalPrice().Amount().Cmp(r.minTotalPrice) >= 0 && r.matchesCurrency(cost)
}

// Calculate multiplies the running total by 1 - discount for the order's country.
func (r *ValuePromotion) Calculate(o *order.Order, cost *deliverycost.DeliveryCost) error {
	multiplier, ok := r.multipliers[o.CountryCode()]
	if !ok {
		multiplier = r.defaultMultiplier
	}
	cost.Multiply(multiplier)
	return nil
}
