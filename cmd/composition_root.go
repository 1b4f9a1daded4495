package cmd

import (
	httpadapter "deliverycost/internal/adapters/in/http"
	"deliverycost/internal/core/application/orderfactory"
	"deliverycost/internal/core/application/usecases/commands"
	"deliverycost/internal/core/application/usecases/queries"
	"deliverycost/internal/core/domain/services"
	"deliverycost/internal/core/domain/services/costrules"
	"deliverycost/internal/core/ports"
	"deliverycost/internal/obs"
	"deliverycost/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

type CompositionRoot struct {
	configs    Config
	logger     zerolog.Logger
	registry   *prometheus.Registry
	calculator *services.DeliveryCostCalculator
	observer   ports.QuoteObserver
}

// NewCompositionRoot builds the default rule set in configs.Currency. Quote metrics
// are registered only when registry is not nil.
func NewCompositionRoot(configs Config, logger zerolog.Logger, registry *prometheus.Registry) (*CompositionRoot, error) {
	rules, err := costrules.Defaults(configs.Currency)
	if err != nil {
		return nil, err
	}

	calculator, err := services.NewDeliveryCostCalculator(rules, services.WithCurrency(configs.Currency))
	if err != nil {
		return nil, err
	}

	observers := obs.Observers{obs.QuoteLogger{Logger: logger}}
	if registry != nil {
		observers = append(observers, obs.NewQuoteMetrics(configs.MetricsNamespace, registry, classifyQuoteError))
	}

	return &CompositionRoot{
		configs:    configs,
		logger:     logger,
		registry:   registry,
		calculator: calculator,
		observer:   observers,
	}, nil
}

func (c *CompositionRoot) CreateOrderFactory() orderfactory.OrderFactory {
	return orderfactory.NewOrderFactory(orderfactory.NewOrderItemFactory())
}

func (c *CompositionRoot) CreateCalculateDeliveryCostCommandHandler() (*commands.CalculateDeliveryCostCommandHandler, error) {
	return commands.NewCalculateDeliveryCostCommandHandler(c.calculator, c.observer)
}

func (c *CompositionRoot) CreateGetPricingRulesQueryHandler() queries.GetPricingRulesQueryHandler {
	return queries.NewGetPricingRulesQueryHandler(c.calculator)
}

func (c *CompositionRoot) CreateHTTPServer() (*httpadapter.Server, error) {
	calculateHandler, err := c.CreateCalculateDeliveryCostCommandHandler()
	if err != nil {
		return nil, err
	}

	return httpadapter.NewServer(
		c.CreateOrderFactory(),
		calculateHandler,
		c.CreateGetPricingRulesQueryHandler(),
	), nil
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server, err := c.CreateHTTPServer()
	if err != nil {
		return nil, err
	}

	var gatherer prometheus.Gatherer
	if c.registry != nil {
		gatherer = c.registry
	}

	e, err := httpadapter.NewRouter(server, c.logger, gatherer)
	if err != nil {
		return nil, err
	}
	e.Logger.SetLevel(c.configs.EchoLogLevel())

	return e, nil
}

func classifyQuoteError(err error) string {
	if errs.IsInvalidInput(err) {
		return obs.ResultInvalid
	}
	return obs.ResultError
}
