package http

import (
	"encoding/json"
	"net/http"

	"deliverycost/internal/core/application/orderfactory"
	"deliverycost/internal/core/application/usecases/commands"
	"deliverycost/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server handles the pricing endpoints.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Order decoding
	orders orderfactory.OrderFactory

	// Command handlers
	calculateHandler *commands.CalculateDeliveryCostCommandHandler

	// Query handlers
	pricingRulesHandler queries.GetPricingRulesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	orders orderfactory.OrderFactory,
	calculateHandler *commands.CalculateDeliveryCostCommandHandler,
	pricingRulesHandler queries.GetPricingRulesQueryHandler,
) *Server {
	return &Server{
		orders:              orders,
		calculateHandler:    calculateHandler,
		pricingRulesHandler: pricingRulesHandler,
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CalculateDeliveryCost handles POST /api/v1/delivery-cost - quotes one order.
func (s *Server) CalculateDeliveryCost(ctx echo.Context) error {
	var body map[string]any
	decoder := json.NewDecoder(ctx.Request().Body)
	decoder.UseNumber()
	if err := decoder.Decode(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	o, err := s.orders.Create(body)
	if err != nil {
		return errorJSON(ctx, statusFor(err), "Invalid order: "+oneLine(err.Error()))
	}

	cmd, err := commands.NewCalculateDeliveryCostCommand(o)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order: "+oneLine(err.Error()))
	}

	result, err := s.calculateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		status := statusFor(err)
		message := "Failed to calculate delivery cost"
		if status != http.StatusInternalServerError {
			message += ": " + oneLine(err.Error())
		}
		return errorJSON(ctx, status, message)
	}

	return ctx.JSON(http.StatusOK, toDeliveryCost(result))
}

// GetPricingRules handles GET /api/v1/pricing-rules - lists rules in run order.
func (s *Server) GetPricingRules(ctx echo.Context) error {
	rules, err := s.pricingRulesHandler.Handle(ctx.Request().Context(), queries.NewGetPricingRulesQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve pricing rules")
	}

	return ctx.JSON(http.StatusOK, toPricingRules(rules))
}
