package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/arexperts/fleettrack/internal/pkg/middleware"
	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/services/telemetry"
	httpHandler "github.com/arexperts/fleettrack/services/telemetry/handler/http"
)

// HTTPHandler combines all handlers for the telemetry service
type HTTPHandler struct {
	telemetryHTTP *httpHandler.TelemetryHandler
	cfg           *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(telemetryUC telemetry.TelemetryUC, cfg *models.Config) *HTTPHandler {
	return &HTTPHandler{
		telemetryHTTP: httpHandler.NewTelemetryHandler(telemetryUC),
		cfg:           cfg,
	}
}

// RegisterRoutes registers all telemetry HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("", middleware.ValidateAPIKey(h.cfg.APIKeys.Dashboard))

	api.GET("/vehicles/:ident/telemetry", h.telemetryHTTP.GetVehicleTelemetry)
	api.PUT("/devices/:id/commands/:command", h.telemetryHTTP.SendCommand)
	api.GET("/geocode", h.telemetryHTTP.Geocode)
}
