package obs

import (
	"context"

	"deliverycost/internal/core/domain/model/kernel"
	"deliverycost/internal/core/ports"

	"github.com/rs/zerolog"
)

// QuoteLogger logs every quote outcome.
type QuoteLogger struct {
	Logger zerolog.Logger
}

var _ ports.QuoteObserver = QuoteLogger{}

// QuoteCalculated implements ports.QuoteObserver.
func (l QuoteLogger) QuoteCalculated(_ context.Context, cost kernel.Money, appliedRules []string) {
	l.Logger.Debug().
		Str("amount", cost.Amount().String()).
		Str("currency", cost.CurrencyCode()).
		Strs("applied_rules", appliedRules).
		Msg("quote_calculated")
}

// QuoteFailed implements ports.QuoteObserver.
func (l QuoteLogger) QuoteFailed(_ context.Context, currencyCode string, err error) {
	l.Logger.Warn().
		Err(err).
		Str("currency", currencyCode).
		Msg("quote_failed")
}

// Observers fans notifications out to several observers in order.
type Observers []ports.QuoteObserver

var _ ports.QuoteObserver = Observers(nil)

// QuoteCalculated implements ports.QuoteObserver.
func (o Observers) QuoteCalculated(ctx context.Context, cost kernel.Money, appliedRules []string) {
	for _, observer := range o {
		observer.QuoteCalculated(ctx, cost, appliedRules)
	}
}

// QuoteFailed implements ports.QuoteObserver.
func (o Observers) QuoteFailed(ctx context.Context, currencyCode string, err error) {
	for _, observer := range o {
		observer.QuoteFailed(ctx, currencyCode, err)
	}
}
