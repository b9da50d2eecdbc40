package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arexperts/fleettrack/internal/pkg/logger"
	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/internal/utils"
	"github.com/arexperts/fleettrack/services/geofence"
)

// GeofenceHandler handles HTTP requests for geofence operations
type GeofenceHandler struct {
	geofenceUC geofence.GeofenceUC
}

// NewGeofenceHandler creates a new geofence HTTP handler
func NewGeofenceHandler(geofenceUC geofence.GeofenceUC) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: geofenceUC,
	}
}

// CreateGeofence handles POST /geofences
func (h *GeofenceHandler) CreateGeofence(c echo.Context) error {
	var fence models.Geofence
	if err := c.Bind(&fence); err != nil {
		logger.Error("Failed to bind geofence request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.geofenceUC.CreateGeofence(c.Request().Context(), &fence); err != nil {
		if isValidationError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to create geofence", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to create geofence")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Geofence created successfully", fence)
}

// GetGeofences handles GET /geofences
func (h *GeofenceHandler) GetGeofences(c echo.Context) error {
	fences, err := h.geofenceUC.GetGeofences(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get geofences", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get geofences")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Geofences retrieved successfully", fences)
}

// UpdateGeofence handles PUT /geofences/:id
func (h *GeofenceHandler) UpdateGeofence(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "geofence id is required")
	}

	var fence models.Geofence
	if err := c.Bind(&fence); err != nil {
		logger.Error("Failed to bind geofence request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	fence.ID = id

	if err := h.geofenceUC.UpdateGeofence(c.Request().Context(), &fence); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return utils.NotFoundResponse(c, err.Error())
		}
		if isValidationError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to update geofence", logger.String("geofence_id", id), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to update geofence")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Geofence updated successfully", fence)
}

// DeleteGeofence handles DELETE /geofences/:id
func (h *GeofenceHandler) DeleteGeofence(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "geofence id is required")
	}

	if err := h.geofenceUC.DeleteGeofence(c.Request().Context(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to delete geofence", logger.String("geofence_id", id), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to delete geofence")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Geofence deleted successfully", map[string]string{"id": id})
}

// RecordLog handles POST /geofence-logs
func (h *GeofenceHandler) RecordLog(c echo.Context) error {
	var log models.GeofenceLog
	if err := c.Bind(&log); err != nil {
		logger.Error("Failed to bind geofence log request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.geofenceUC.RecordLog(c.Request().Context(), &log); err != nil {
		if isValidationError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to record geofence log",
			logger.String("vehicle_id", log.VehicleID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to record geofence log")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Geofence log recorded successfully", log)
}

// GetLogs handles GET /geofence-logs?date=YYYY-MM-DD
func (h *GeofenceHandler) GetLogs(c echo.Context) error {
	dateParam := c.QueryParam("date")
	if dateParam == "" {
		return utils.BadRequestResponse(c, "date query parameter is required")
	}

	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		return utils.BadRequestResponse(c, "date must be in YYYY-MM-DD format")
	}

	logs, err := h.geofenceUC.GetLogsByDate(c.Request().Context(), date)
	if err != nil {
		logger.Error("Failed to get geofence logs", logger.String("date", dateParam), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get geofence logs")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Geofence logs retrieved successfully", logs)
}

func isValidationError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "required") ||
		strings.Contains(msg, "must be") ||
		strings.Contains(msg, "invalid")
}
