package obs

import (
	"context"
	"errors"
	"fmt"

	"deliverycost/internal/core/domain/model/kernel"
	"deliverycost/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

// Quote outcomes used as the "result" label.
const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// QuoteMetrics groups Prometheus collectors describing delivery cost quotes.
type QuoteMetrics struct {
	QuotesTotal           *prometheus.CounterVec
	RuleApplicationsTotal *prometheus.CounterVec
	QuoteAmount           *prometheus.HistogramVec

	classify func(error) string
}

var _ ports.QuoteObserver = (*QuoteMetrics)(nil)

// NewQuoteMetrics registers and returns the quote collectors. Registering twice
// against the same registry reuses the collectors already there.
// classify maps a pricing error to a result label; nil reports every error as
// ResultError.
func NewQuoteMetrics(namespace string, reg prometheus.Registerer, classify func(error) string) *QuoteMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if classify == nil {
		classify = func(error) string { return ResultError }
	}

	m := &QuoteMetrics{
		QuotesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Count of delivery cost quotes by currency and outcome.",
		}, []string{"currency", "result"}),
		RuleApplicationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rule_applications_total",
			Help:      "Count of pricing rule applications by rule label.",
		}, []string{"rule"}),
		QuoteAmount: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_amount",
			Help:      "Distribution of quoted delivery costs.",
			Buckets:   []float64{0, 5, 10, 20, 40, 60, 100},
		}, []string{"currency"}),
		classify: classify,
	}

	mustRegisterCounter(reg, &m.QuotesTotal)
	mustRegisterCounter(reg, &m.RuleApplicationsTotal)
	mustRegisterHistogram(reg, &m.QuoteAmount)

	return m
}

// QuoteCalculated implements ports.QuoteObserver.
func (m *QuoteMetrics) QuoteCalculated(_ context.Context, cost kernel.Money, appliedRules []string) {
	m.QuotesTotal.WithLabelValues(cost.CurrencyCode(), ResultOK).Inc()
	m.QuoteAmount.WithLabelValues(cost.CurrencyCode()).Observe(cost.Amount().Float())
	for _, rule := range appliedRules {
		m.RuleApplicationsTotal.WithLabelValues(rule).Inc()
	}
}

// QuoteFailed implements ports.QuoteObserver.
func (m *QuoteMetrics) QuoteFailed(_ context.Context, currencyCode string, err error) {
	m.QuotesTotal.WithLabelValues(currencyCode, m.classify(err)).Inc()
}

func mustRegisterCounter(reg prometheus.Registerer, counter **prometheus.CounterVec) {
	if err := reg.Register(*counter); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				*counter = existing
			}
			return
		}
		panic(fmt.Errorf("register counter: %w", err))
	}
}

func mustRegisterHistogram(reg prometheus.Registerer, histo **prometheus.HistogramVec) {
	if err := reg.Register(*histo); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				*histo = existing
			}
			return
		}
		panic(fmt.Errorf("register histogram: %w", err))
	}
}
