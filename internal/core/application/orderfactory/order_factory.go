// Package orderfactory turns loosely typed order data, such as a decoded JSON
// document or CLI overrides, into validated order snapshots.
package orderfactory

import (
	"errors"
	"fmt"
	"time"

	"deliverycost/internal/core/domain/model/kernel"
	"deliverycost/internal/core/domain/model/order"
	"deliverycost/internal/pkg/errs"
)

// Order defaults applied to missing fields.
const (
	DefaultWeight      = "0"
	DefaultTotalPrice  = "0"
	DefaultCountryCode = "PL"
)

// CreatedAtLayout is the accepted createdAt format, e.g. "2024-01-19T12:00:00+01:00".
const CreatedAtLayout = time.RFC3339

// DefaultCreatedAt is used when createdAt is missing: the Unix epoch in UTC.
var DefaultCreatedAt = time.Unix(0, 0).UTC()

// OrderFactory builds an *order.Order from a map of named fields.
//
// Recognized fields: weight, totalPrice, currency, countryCode, createdAt and items.
// Amounts may be numeral strings or JSON numbers; items is a list of field maps
// handed to the item factory. A missing field takes its default, while a present
// but malformed field is an error.
//
// Example:
//
//	factory := orderfactory.NewOrderFactory(orderfactory.NewOrderItemFactory())
//	o, err := factory.Create(map[string]any{
//	    "weight":      "7.2",
//	    "totalPrice":  100,
//	    "countryCode": "PL",
//	    "createdAt":   "2024-01-19T12:00:00+01:00",
//	})
type OrderFactory struct {
	items ItemFactory
}

// NewOrderFactory creates an OrderFactory that delegates lines to items.
func NewOrderFactory(items ItemFactory) OrderFactory {
	return OrderFactory{items: items}
}

// Create builds an order snapshot from data.
//
// Returns:
//   - *order.Order: The validated order
//   - error: All field errors joined, or the order validation error
func (f OrderFactory) Create(data map[string]any) (*order.Order, error) {
	weight, weightErr := numberField(data, FieldWeight, DefaultWeight)
	amount, totalErr := numberField(data, FieldTotalPrice, DefaultTotalPrice)
	currency, currencyErr := stringField(data, FieldCurrency, kernel.DefaultCurrency)
	countryCode, countryErr := stringField(data, FieldCountryCode, DefaultCountryCode)
	createdAt, createdAtErr := f.createdAt(data)
	items, itemsErr := f.createItems(data)

	if err := errors.Join(weightErr, totalErr, currencyErr, countryErr, createdAtErr, itemsErr); err != nil {
		return nil, err
	}

	totalPrice, err := kernel.NewMoney(amount, currency)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(weight, totalPrice, countryCode, createdAt, items)
}

func (f OrderFactory) createdAt(data map[string]any) (time.Time, error) {
	raw, err := stringField(data, FieldCreatedAt, "")
	if err != nil {
		return time.Time{}, err
	}
	if raw == "" {
		return DefaultCreatedAt, nil
	}

	createdAt, err := time.Parse(CreatedAtLayout, raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(FieldCreatedAt, err)
	}

	return createdAt, nil
}

func (f OrderFactory) createItems(data map[string]any) ([]order.Item, error) {
	raw, ok := data[FieldItems]
	if !ok || raw == nil {
		return nil, nil
	}

	var rows []map[string]any
	switch v := raw.(type) {
	case []map[string]any:
		rows = v
	case []any:
		rows = make([]map[string]any, 0, len(v))
		for i, row := range v {
			fields, isMap := row.(map[string]any)
			if !isMap {
				return nil, errs.NewValueIsInvalidErrorWithCause(
					fmt.Sprintf("%s[%d]", FieldItems, i), fmt.Errorf("expected an object, got %T", row))
			}
			rows = append(rows, fields)
		}
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(FieldItems, fmt.Errorf("expected a list, got %T", raw))
	}

	items := make([]order.Item, 0, len(rows))
	var err error
	for i, row := range rows {
		item, itemErr := f.items.Create(row)
		if itemErr != nil {
			err = errors.Join(err, fmt.Errorf("%s[%d]: %w", FieldItems, i, itemErr))
			continue
		}
		items = append(items, item)
	}
	if err != nil {
		return nil, err
	}

	return items, nil
}
