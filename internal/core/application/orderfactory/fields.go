package orderfactory

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"deliverycost/internal/core/domain/model/kernel"
	"deliverycost/internal/pkg/errs"
)

// Order field names.
const (
	FieldWeight      = "weight"
	FieldTotalPrice  = "totalPrice"
	FieldCurrency    = "currency"
	FieldCountryCode = "countryCode"
	FieldCreatedAt   = "createdAt"
	FieldItems       = "items"
)

// Item field names. FieldCurrency is shared with orders.
const (
	FieldPosition = "position"
	FieldName     = "name"
	FieldPrice    = "price"
	FieldQuantity = "quantity"
)

func numberField(data map[string]any, key, fallback string) (kernel.Number, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return kernel.NewNumber(fallback)
	}

	var (
		n   kernel.Number
		err error
	)
	switch v := raw.(type) {
	case string:
		n, err = kernel.NewNumber(v)
	case json.Number:
		n, err = kernel.NewNumber(v.String())
	case float64:
		n, err = kernel.NewNumber(v)
	case float32:
		n, err = kernel.NewNumber(v)
	case int:
		n, err = kernel.NewNumber(v)
	case int64:
		n, err = kernel.NewNumber(v)
	default:
		return kernel.Number{}, errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("unsupported type %T", raw))
	}
	if err != nil {
		return kernel.Number{}, fmt.Errorf("%s: %w", key, err)
	}

	return n, nil
}

func stringField(data map[string]any, key, fallback string) (string, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return fallback, nil
	}

	s, ok := raw.(string)
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("expected a string, got %T", raw))
	}

	return s, nil
}

func intField(data map[string]any, key string, fallback int) (int, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return fallback, nil
	}

	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("%v is not a whole number", v))
		}
		return int(v), nil
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
		}
		return int(i), nil
	case string:
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
		}
		return i, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("unsupported type %T", raw))
	}
}
