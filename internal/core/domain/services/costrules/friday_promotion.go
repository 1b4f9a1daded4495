package costrules

import (
	"errors"
	"time"

	"deliverycost/internal/core/domain/model/deliverycost"
	"deliverycost/internal/core/domain/model/kernel"
	"deliverycost/internal/core/domain/model/order"
)

// FridayPromotionConfig configures FridayPromotion. Discount is a fraction in [0, 1].
type FridayPromotionConfig struct {
	Discount     string
	CurrencyCode string
	Priority     int
	Label        string
}

// DefaultFridayPromotionConfig returns the shipped promotion: half price on Fridays.
func DefaultFridayPromotionConfig() FridayPromotionConfig {
	return FridayPromotionConfig{
		Discount:     "0.5",
		CurrencyCode: kernel.DefaultCurrency,
		Priority:     400,
		Label:        "Friday promotion",
	}
}

// FridayPromotion discounts orders placed on a Friday. The weekday is taken in the
// offset the order's creation time carries, not in UTC.
type FridayPromotion struct {
	meta
	multiplier kernel.Number
}

var _ Rule = (*FridayPromotion)(nil)

// NewFridayPromotion validates cfg and builds the rule.
func NewFridayPromotion(cfg FridayPromotionConfig) (*FridayPromotion, error) {
	m, metaErr := newMeta(cfg.CurrencyCode, cfg.Priority, cfg.Label)
	multiplier, discountErr := parseMultiplier("discount", cfg.Discount)

	if err := errors.Join(metaErr, discountErr); err != nil {
		return nil, err
	}

	return &FridayPromotion{meta: m, multiplier: multiplier}, nil
}

// IsApplicable reports whether the order was placed on a Friday, the running total
// is in the configured currency and there is still something to discount.
func (r *FridayPromotion) IsApplicable(o *order.Order, cost deliverycost.Info) bool {
	return o.CreatedAt().Weekday() == time.Friday &&
		r.matchesCurrency(cost) &&
		cost.Amount().IsPositive()
}

// Calculate multiplies the running total by 1 - discount.
func (r *FridayPromotion) Calculate(_ *order.Order, cost *deliverycost.DeliveryCost) error {
	cost.Multiply(r.multiplier)
	return nil
}
