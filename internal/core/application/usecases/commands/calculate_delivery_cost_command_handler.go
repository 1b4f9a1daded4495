package commands

import (
	"context"
	"errors"

	"deliverycost/internal/core/domain/model/kernel"
	"deliverycost/internal/core/domain/services"
	"deliverycost/internal/core/ports"
)

var ErrDeliveryCostEngineIsRequired = errors.New("delivery cost engine is required")

// CalculateDeliveryCostResult is a priced quote.
type CalculateDeliveryCostResult struct {
	// QuoteID identifies this quote in logs and responses.
	QuoteID kernel.UUID

	// Cost is the final delivery cost.
	Cost kernel.Money

	// Steps lists every rule in the order it ran.
	Steps []services.Step
}

// AppliedRules returns the labels of the rules that fired.
func (r CalculateDeliveryCostResult) AppliedRules() []string {
	labels := make([]string, 0, len(r.Steps))
	for _, step := range r.Steps {
		if step.Applied {
			labels = append(labels, step.Label)
		}
	}
	return labels
}

// CalculateDeliveryCostCommandHandler quotes orders through the pricing engine and
// reports every attempt to an observer.
//
// Example:
//
//	handler, _ := NewCalculateDeliveryCostCommandHandler(calculator, metrics)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("quote failed: %w", err)
//	}
//	fmt.Println(result.QuoteID, result.Cost.Formatted())
type CalculateDeliveryCostCommandHandler struct {
	engine   ports.DeliveryCostEngine
	observer ports.QuoteObserver
}

// NewCalculateDeliveryCostCommandHandler creates the handler. A nil observer
// discards notifications.
func NewCalculateDeliveryCostCommandHandler(
	engine ports.DeliveryCostEngine,
	observer ports.QuoteObserver,
) (*CalculateDeliveryCostCommandHandler, error) {
	if engine == nil {
		return nil, ErrDeliveryCostEngineIsRequired
	}
	if observer == nil {
		observer = discardObserver{}
	}

	return &CalculateDeliveryCostCommandHandler{
		engine:   engine,
		observer: observer,
	}, nil
}

// Handle prices the command's order.
func (h *CalculateDeliveryCostCommandHandler) Handle(
	ctx context.Context,
	cmd CalculateDeliveryCostCommand,
) (CalculateDeliveryCostResult, error) {
	if err := cmd.Validate(); err != nil {
		return CalculateDeliveryCostResult{}, err
	}

	if err := ctx.Err(); err != nil {
		return CalculateDeliveryCostResult{}, err
	}

	cost, steps, err := h.engine.ExecuteWithBreakdown(cmd.Order())
	if err != nil {
		h.observer.QuoteFailed(ctx, h.engine.CurrencyCode(), err)
		return CalculateDeliveryCostResult{}, err
	}

	result := CalculateDeliveryCostResult{
		QuoteID: kernel.NewUUID(),
		Cost:    cost.Money(),
		Steps:   steps,
	}
	h.observer.QuoteCalculated(ctx, result.Cost, result.AppliedRules())

	return result, nil
}

type discardObserver struct{}

func (discardObserver) QuoteCalculated(context.Context, kernel.Money, []string) {}

func (discardObserver) QuoteFailed(context.Context, string, error) {}
