package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/arexperts/fleettrack/internal/pkg/middleware"
	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/services/geofence"
	httpHandler "github.com/arexperts/fleettrack/services/geofence/handler/http"
)

// HTTPHandler combines all handlers for the geofence service
type HTTPHandler struct {
	geofenceHTTP *httpHandler.GeofenceHandler
	cfg          *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(geofenceUC geofence.GeofenceUC, cfg *models.Config) *HTTPHandler {
	return &HTTPHandler{
		geofenceHTTP: httpHandler.NewGeofenceHandler(geofenceUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all geofence HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("", middleware.ValidateAPIKey(h.cfg.APIKeys.Dashboard))

	api.POST("/geofences", h.geofenceHTTP.CreateGeofence)
	api.GET("/geofences", h.geofenceHTTP.GetGeofences)
	api.PUT("/geofences/:id", h.geofenceHTTP.UpdateGeofence)
	api.DELETE("/geofences/:id", h.geofenceHTTP.DeleteGeofence)

	api.POST("/geofence-logs", h.geofenceHTTP.RecordLog)
	api.GET("/geofence-logs", h.geofenceHTTP.GetLogs)
}
