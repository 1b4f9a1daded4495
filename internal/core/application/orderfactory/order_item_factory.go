package orderfactory

import (
	"errors"

	"deliverycost/internal/core/domain/model/kernel"
	"deliverycost/internal/core/domain/model/order"
)

// Item defaults applied to missing fields.
const (
	DefaultItemPosition = 1
	DefaultItemName     = ""
	DefaultItemPrice    = "0"
	DefaultItemQuantity = 0
)

// ItemFactory builds order lines from decoded field maps.
type ItemFactory interface {
	Create(data map[string]any) (order.Item, error)
}

// OrderItemFactory builds an order.Item from a map of named fields as produced by
// decoding JSON into map[string]any.
//
// Recognized fields: position, name, price, currency and quantity. Prices may be
// numeral strings or JSON numbers. Missing fields take the Default... values and
// currency defaults to kernel.DefaultCurrency.
type OrderItemFactory struct{}

var _ ItemFactory = OrderItemFactory{}

// NewOrderItemFactory creates an OrderItemFactory.
func NewOrderItemFactory() OrderItemFactory {
	return OrderItemFactory{}
}

// Create builds an order line, reporting every malformed field at once.
func (OrderItemFactory) Create(data map[string]any) (order.Item, error) {
	position, positionErr := intField(data, FieldPosition, DefaultItemPosition)
	name, nameErr := stringField(data, FieldName, DefaultItemName)
	amount, priceErr := numberField(data, FieldPrice, DefaultItemPrice)
	currency, currencyErr := stringField(data, FieldCurrency, kernel.DefaultCurrency)
	quantity, quantityErr := intField(data, FieldQuantity, DefaultItemQuantity)

	if err := errors.Join(positionErr, nameErr, priceErr, currencyErr, quantityErr); err != nil {
		return order.Item{}, err
	}

	price, err := kernel.NewMoney(amount, currency)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(position, name, price, quantity)
}
