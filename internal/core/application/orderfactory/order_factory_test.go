package orderfactory_test

import (
	"encoding/json"
	"testing"
	"time"

	"deliverycost/internal/core/application/orderfactory"
	"deliverycost/internal/core/domain/model/kernel"
	"deliverycost/internal/core/domain/model/order"
	"deliverycost/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockItemFactory struct{ mock.Mock }

func (m *MockItemFactory) Create(data map[string]any) (order.Item, error) {
	args := m.Called(data)
	return args.Get(0).(order.Item), args.Error(1)
}

func someItem(t *testing.T) order.Item {
	t.Helper()

	price, err := kernel.NewMoneyFrom("1", "PLN")
	require.NoError(t, err)
	item, err := order.NewItem(1, "stub", price, 1)
	require.NoError(t, err)

	return item
}

func TestOrderFactory_Create(t *testing.T) {
	t.Run("valid data", func(t *testing.T) {
		// Given
		items := new(MockItemFactory)
		items.On("Create", mock.Anything).Return(someItem(t), nil).Twice()
		factory := orderfactory.NewOrderFactory(items)

		// When
		o, err := factory.Create(map[string]any{
			"totalPrice":  100.0,
			"weight":      10.0,
			"currency":    "USD",
			"countryCode": "US",
			"createdAt":   "2024-01-01T00:00:00+00:00",
			"items": []any{
				map[string]any{"some": "random data"},
				map[string]any{"some": "random data"},
			},
		})

		// Then
		require.NoError(t, err)
		assert.Equal(t, "100.00", o.TotalPrice().Amount().String())
		assert.Equal(t, "10.00", o.Weight().String())
		assert.Equal(t, "USD", o.TotalPrice().CurrencyCode())
		assert.Equal(t, "US", o.CountryCode())
		assert.Equal(t, "2024-01-01 00:00:00", o.CreatedAt().Format(time.DateTime))
		assert.Len(t, o.Items(), 2)
		items.AssertExpectations(t)
	})

	t.Run("default values", func(t *testing.T) {
		factory := orderfactory.NewOrderFactory(new(MockItemFactory))

		o, err := factory.Create(map[string]any{})

		require.NoError(t, err)
		assert.Equal(t, "0.00", o.TotalPrice().Amount().String())
		assert.Equal(t, "0.00", o.Weight().String())
		assert.Equal(t, "PLN", o.TotalPrice().CurrencyCode())
		assert.Equal(t, "PL", o.CountryCode())
		assert.Equal(t, "1970-01-01 00:00:00", o.CreatedAt().Format(time.DateTime))
		assert.Empty(t, o.Items())
	})

	t.Run("keeps the createdAt offset", func(t *testing.T) {
		factory := orderfactory.NewOrderFactory(new(MockItemFactory))

		o, err := factory.Create(map[string]any{"createdAt": "2024-01-19T00:30:00+01:00"})

		require.NoError(t, err)
		assert.Equal(t, time.Friday, o.CreatedAt().Weekday())
	})

	t.Run("decoded JSON document", func(t *testing.T) {
		var data map[string]any
		require.NoError(t, json.Unmarshal([]byte(`{
			"weight": "7.2",
			"totalPrice": 399.99,
			"countryCode": "DE",
			"items": [{"position": 1, "name": "Mug", "price": "12.5", "quantity": 2}]
		}`), &data))
		factory := orderfactory.NewOrderFactory(orderfactory.NewOrderItemFactory())

		o, err := factory.Create(data)

		require.NoError(t, err)
		assert.Equal(t, "7.20", o.Weight().String())
		assert.Equal(t, "399.99 PLN", o.TotalPrice().Formatted())
		require.Len(t, o.Items(), 1)
		assert.Equal(t, "Mug", o.Items()[0].Name())
	})

	t.Run("malformed fields are reported together", func(t *testing.T) {
		factory := orderfactory.NewOrderFactory(new(MockItemFactory))

		o, err := factory.Create(map[string]any{
			"weight":      "10aa",
			"totalPrice":  "1,23.45",
			"countryCode": 48,
			"createdAt":   "19.01.2024",
		})

		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrInvalidNumericFormat)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "weight")
		assert.Contains(t, err.Error(), "totalPrice")
		assert.Contains(t, err.Error(), "countryCode")
		assert.Contains(t, err.Error(), "createdAt")
	})

	t.Run("negative weight is rejected by the order", func(t *testing.T) {
		factory := orderfactory.NewOrderFactory(new(MockItemFactory))

		_, err := factory.Create(map[string]any{"weight": "-1"})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("items must be a list of objects", func(t *testing.T) {
		factory := orderfactory.NewOrderFactory(new(MockItemFactory))

		_, err := factory.Create(map[string]any{"items": "none"})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = factory.Create(map[string]any{"items": []any{"x"}})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "items[0]")
	})

	t.Run("item errors carry their index", func(t *testing.T) {
		factory := orderfactory.NewOrderFactory(orderfactory.NewOrderItemFactory())

		_, err := factory.Create(map[string]any{
			"items": []map[string]any{{"price": "1"}, {"price": "abc"}},
		})

		require.ErrorIs(t, err, errs.ErrInvalidNumericFormat)
		assert.Contains(t, err.Error(), "items[1]")
	})
}

func TestOrderItemFactory_Create(t *testing.T) {
	factory := orderfactory.NewOrderItemFactory()

	t.Run("valid data", func(t *testing.T) {
		item, err := factory.Create(map[string]any{
			"position": 1,
			"name":     "Test Item",
			"price":    10.5,
			"currency": "USD",
			"quantity": 2,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, item.Position())
		assert.Equal(t, "Test Item", item.Name())
		assert.Equal(t, "10.50", item.Price().Amount().String())
		assert.Equal(t, "USD", item.Price().CurrencyCode())
		assert.Equal(t, 2, item.Quantity())
	})

	t.Run("default values", func(t *testing.T) {
		item, err := factory.Create(map[string]any{})

		require.NoError(t, err)
		assert.Equal(t, 1, item.Position())
		assert.Empty(t, item.Name())
		assert.Equal(t, "0.00", item.Price().Amount().String())
		assert.Equal(t, "PLN", item.Price().CurrencyCode())
		assert.Equal(t, 0, item.Quantity())
	})

	t.Run("JSON numbers for integer fields", func(t *testing.T) {
		item, err := factory.Create(map[string]any{"position": 3.0, "quantity": json.Number("4")})

		require.NoError(t, err)
		assert.Equal(t, 3, item.Position())
		assert.Equal(t, 4, item.Quantity())
	})

	t.Run("fractional quantity", func(t *testing.T) {
		_, err := factory.Create(map[string]any{"quantity": 1.5})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("position below one", func(t *testing.T) {
		_, err := factory.Create(map[string]any{"position": 0})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
