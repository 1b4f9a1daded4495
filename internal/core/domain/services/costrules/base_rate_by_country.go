package costrules

import (
	"errors"
	"maps"
	"slices"

	"deliverycost/internal/core/domain/model/deliverycost"
	"deliverycost/internal/core/domain/model/kernel"
	"deliverycost/internal/core/domain/model/order"
)

// BaseRateByCountryConfig configures BaseRateByCountry. Amounts are decimal numerals.
type BaseRateByCountryConfig struct {
	DefaultRate     string
	RatesPerCountry map[string]string
	CurrencyCode    string
	Priority        int
	Label           string
}

// DefaultBaseRateByCountryConfig returns the shipped base rates.
func DefaultBaseRateByCountryConfig() BaseRateByCountryConfig {
	return BaseRateByCountryConfig{
		DefaultRate: "39.99",
		RatesPerCountry: map[string]string{
			"PL":  "10.00",
			"DE":  "20.00",
			"USA": "50.00",
		},
		CurrencyCode: kernel.DefaultCurrency,
		Priority:     100,
		Label:        "Base rate by country",
	}
}

// BaseRateByCountry adds a flat rate chosen by the exact destination country code,
// falling back to a default rate for unlisted countries.
type BaseRateByCountry struct {
	meta
	defaultRate kernel.Number
	rates       map[string]kernel.Number
}

var _ Rule = (*BaseRateByCountry)(nil)

// NewBaseRateByCountry validates cfg and builds the rule.
func NewBaseRateByCountry(cfg BaseRateByCountryConfig) (*BaseRateByCountry, error) {
	m, metaErr := newMeta(cfg.CurrencyCode, cfg.Priority, cfg.Label)
	defaultRate, rateErr := parseAmount("defaultRate", cfg.DefaultRate)
	err := errors.Join(metaErr, rateErr)

	rates := make(map[string]kernel.Number, len(cfg.RatesPerCountry))
	for _, country := range slices.Sorted(maps.Keys(cfg.RatesPerCountry)) {
		rate, parseErr := parseAmount("ratesPerCountry["+country+"]", cfg.RatesPerCountry[country])
		if parseErr != nil {
			err = errors.Join(err, parseErr)
			continue
		}
		rates[country] = rate
	}

	if err != nil {
		return nil, err
	}

	return &BaseRateByCountry{meta: m, defaultRate: defaultRate, rates: rates}, nil
}

// IsApplicable reports whether the running total is in the configured currency.
func (r *BaseRateByCountry) IsApplicable(_ *order.Order, cost deliverycost.Info) bool {
	return r.matchesCurrency(cost)
}

// Calculate adds the rate for the order's country.
func (r *BaseRateByCountry) Calculate(o *order.Order, cost *deliverycost.DeliveryCost) error {
	rate, ok := r.rates[o.CountryCode()]
	if !ok {
		rate = r.defaultRate
	}
	cost.Add(rate)
	return nil
}
