package http

import (
	"deliverycost/internal/adapters/in/http/docs"
	"deliverycost/internal/obs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving the API, health, metrics and the
// Swagger UI. Requests under /api are validated against the embedded OpenAPI
// document.
func NewRouter(server *Server, logger zerolog.Logger, gatherer prometheus.Gatherer) (*echo.Echo, error) {
	validator, err := OpenAPIValidator(docs.OpenAPI)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(obs.RequestLogger(logger))

	e.GET("/health", server.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	api := e.Group("/api/v1", validator)
	api.POST("/delivery-cost", server.CalculateDeliveryCost)
	api.GET("/pricing-rules", server.GetPricingRules)

	return e, nil
}
