package ports

import (
	"context"

	"deliverycost/internal/core/domain/model/kernel"
)

// QuoteObserver is notified about every pricing attempt, e.g. to record metrics.
// Implementations must be safe for concurrent use.
type QuoteObserver interface {
	// QuoteCalculated reports a successful quote and the labels of the rules that fired.
	QuoteCalculated(ctx context.Context, cost kernel.Money, appliedRules []string)

	// QuoteFailed reports a pricing attempt that ended with err.
	QuoteFailed(ctx context.Context, currencyCode string, err error)
}
