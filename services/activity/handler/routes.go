package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/arexperts/fleettrack/internal/pkg/middleware"
	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/services/activity"
	httpHandler "github.com/arexperts/fleettrack/services/activity/handler/http"
)

// HTTPHandler combines all handlers for the activity service
type HTTPHandler struct {
	activityHTTP *httpHandler.ActivityHandler
	cfg          *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(activityUC activity.ActivityUC, cfg *models.Config) *HTTPHandler {
	return &HTTPHandler{
		activityHTTP: httpHandler.NewActivityHandler(activityUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all activity HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("", middleware.ValidateAPIKey(h.cfg.APIKeys.Dashboard))

	api.POST("/vehicle-activity-logs", h.activityHTTP.RecordActivity)
	api.GET("/vehicle-activity-logs", h.activityHTTP.GetLogs)
}
