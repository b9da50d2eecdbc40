package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arexperts/fleettrack/internal/pkg/logger"
	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/internal/utils"
	"github.com/arexperts/fleettrack/services/activity"
)

// ActivityHandler handles HTTP requests for vehicle activity operations
type ActivityHandler struct {
	activityUC activity.ActivityUC
}

// NewActivityHandler creates a new activity HTTP handler
func NewActivityHandler(activityUC activity.ActivityUC) *ActivityHandler {
	return &ActivityHandler{
		activityUC: activityUC,
	}
}

// RecordActivity handles POST /vehicle-activity-logs. Snapshots suppressed
// by the change gate return 200 with persisted=false; written snapshots
// return 201.
func (h *ActivityHandler) RecordActivity(c echo.Context) error {
	var candidate models.VehicleActivityLog
	if err := c.Bind(&candidate); err != nil {
		logger.Error("Failed to bind activity log request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	persisted, err := h.activityUC.RecordActivity(c.Request().Context(), &candidate)
	if err != nil {
		if strings.Contains(err.Error(), "required") {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to record activity log",
			logger.String("vehicle_id", candidate.VehicleID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to record activity log")
	}

	if !persisted {
		return utils.SuccessResponse(c, http.StatusOK, "Activity snapshot unchanged, not persisted",
			map[string]bool{"persisted": false})
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Activity log recorded successfully", candidate)
}

// GetLogs handles GET /vehicle-activity-logs?date=YYYY-MM-DD
func (h *ActivityHandler) GetLogs(c echo.Context) error {
	dateParam := c.QueryParam("date")
	if dateParam == "" {
		return utils.BadRequestResponse(c, "date query parameter is required")
	}

	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		return utils.BadRequestResponse(c, "date must be in YYYY-MM-DD format")
	}

	logs, err := h.activityUC.GetLogsByDate(c.Request().Context(), date)
	if err != nil {
		logger.Error("Failed to get activity logs", logger.String("date", dateParam), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get activity logs")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Activity logs retrieved successfully", logs)
}
