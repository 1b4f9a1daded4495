package costrules

import (
	"errors"
)

// Defaults builds the shipped rule set with every rule bound to currencyCode:
// base rate by country, weight surcharge, value promotion and Friday promotion.
func Defaults(currencyCode string) ([]Rule, error) {
	baseRateCfg := DefaultBaseRateByCountryConfig()
	baseRateCfg.CurrencyCode = currencyCode
	baseRate, baseRateErr := NewBaseRateByCountry(baseRateCfg)

	surchargeCfg := DefaultWeightSurchargeConfig()
	surchargeCfg.CurrencyCode = currencyCode
	surcharge, surchargeErr := NewWeightSurcharge(surchargeCfg)

	valueCfg := DefaultValuePromotionConfig()
	valueCfg.CurrencyCode = currencyCode
	value, valueErr := NewValuePromotion(valueCfg)

	fridayCfg := DefaultFridayPromotionConfig()
	fridayCfg.CurrencyCode = currencyCode
	friday, fridayErr := NewFridayPromotion(fridayCfg)

	if err := errors.Join(baseRateErr, surchargeErr, valueErr, fridayErr); err != nil {
		return nil, err
	}

	return []Rule{baseRate, surcharge, value, friday}, nil
}
