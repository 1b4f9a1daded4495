package costrules

import (
	"errors"

	"deliverycost/internal/core/domain/model/deliverycost"
	"deliverycost/internal/core/domain/model/kernel"
	"deliverycost/internal/core/domain/model/order"
)

// WeightSurchargeConfig configures WeightSurcharge. Amounts are decimal numerals.
type WeightSurchargeConfig struct {
	MaxWeightWithoutSurcharge string
	SurchargePerKg            string
	CurrencyCode              string
	Priority                  int
	Label                     string
}

// DefaultWeightSurchargeConfig returns the shipped surcharge: 3.00 per started
// kilogram above 5 kg.
func DefaultWeightSurchargeConfig() WeightSurchargeConfig {
	return WeightSurchargeConfig{
		MaxWeightWithoutSurcharge: "5.00",
		SurchargePerKg:            "3.00",
		CurrencyCode:              kernel.DefaultCurrency,
		Priority:                  200,
		Label:                     "Weight surcharge",
	}
}

// WeightSurcharge charges for every started kilogram above a weight threshold.
//
// For 7.2 kg and a 5 kg threshold the excess of 2.20 kg is rounded up to 3 started
// kilograms, so 3 × 3.00 = 9.00 is added.
type WeightSurcharge struct {
	meta
	threshold kernel.Number
	perKg     kernel.Number
}

var _ Rule = (*WeightSurcharge)(nil)

// NewWeightSurcharge validates cfg and builds the rule.
func NewWeightSurcharge(cfg WeightSurchargeConfig) (*WeightSurcharge, error) {
	m, metaErr := newMeta(cfg.CurrencyCode, cfg.Priority, cfg.Label)
	threshold, thresholdErr := parseAmount("maxWeightWithoutSurcharge", cfg.MaxWeightWithoutSurcharge)
	perKg, perKgErr := parseAmount("surchargePerKg", cfg.SurchargePerKg)

	if err := errors.Join(metaErr, thresholdErr, perKgErr); err != nil {
		return nil, err
	}

	return &WeightSurcharge{meta: m, threshold: threshold, perKg: perKg}, nil
}

// IsApplicable reports whether the order is strictly heavier than the threshold and
// the running total is in the configured currency.
func (r *WeightSurcharge) IsApplicable(o *order.Order, cost deliverycost.Info) bool {
	return o.Weight().Cmp(r.threshold) > 0 && r.matchesCurrency(cost)
}

// Calculate adds ceil(weight - threshold) × perKg.
func (r *WeightSurcharge) Calculate(o *order.Order, cost *deliverycost.DeliveryCost) error {
	startedKg := o.Weight().Sub(r.threshold).Ceil()
	cost.Add(startedKg.Multiply(r.perKg))
	return nil
}
