package costrules_test

import (
	"testing"
	"time"

	"deliverycost/internal/core/domain/model/deliverycost"
	"deliverycost/internal/core/domain/model/kernel"
	"deliverycost/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// saturday is 2026-02-14 12:00 in Warsaw winter time.
var saturday = time.Date(2026, 2, 14, 12, 0, 0, 0, time.FixedZone("CET", 3600))

func newOrder(t *testing.T, weight, totalPrice, countryCode string, createdAt time.Time) *order.Order {
	t.Helper()

	total, err := kernel.NewMoneyFrom(totalPrice, "PLN")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.MustNumber(weight), total, countryCode, createdAt, nil)
	require.NoError(t, err)

	return o
}

func newCost(t *testing.T, value, currency string) *deliverycost.DeliveryCost {
	t.Helper()

	initial, err := kernel.NewMoneyFrom(value, currency)
	require.NoError(t, err)

	cost, err := deliverycost.New(initial)
	require.NoError(t, err)

	return cost
}
