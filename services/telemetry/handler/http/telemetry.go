package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/arexperts/fleettrack/internal/pkg/logger"
	"github.com/arexperts/fleettrack/internal/utils"
	"github.com/arexperts/fleettrack/services/telemetry"
)

// TelemetryHandler handles HTTP requests for telemetry operations
type TelemetryHandler struct {
	telemetryUC telemetry.TelemetryUC
}

// NewTelemetryHandler creates a new telemetry HTTP handler
func NewTelemetryHandler(telemetryUC telemetry.TelemetryUC) *TelemetryHandler {
	return &TelemetryHandler{
		telemetryUC: telemetryUC,
	}
}

// GetVehicleTelemetry handles GET /vehicles/:ident/telemetry
func (h *TelemetryHandler) GetVehicleTelemetry(c echo.Context) error {
	ident := c.Param("ident")
	if ident == "" {
		return utils.BadRequestResponse(c, "device ident is required")
	}

	sample, err := h.telemetryUC.GetVehicleTelemetry(c.Request().Context(), ident)
	if err != nil {
		if errors.Is(err, telemetry.ErrUnauthorized) {
			logger.Error("Telemetry token rejected", logger.String("ident", ident))
			return utils.ErrorResponseHandler(c, http.StatusBadGateway, "telemetry provider rejected credentials")
		}
		logger.Error("Failed to fetch telemetry",
			logger.String("ident", ident), logger.Err(err))
		return utils.ServiceUnavailableResponse(c, "telemetry provider unavailable")
	}

	if sample == nil {
		return utils.NotFoundResponse(c, "no telemetry reported for device")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Telemetry retrieved successfully", sample)
}

// SendCommand handles PUT /devices/:id/commands/:command
func (h *TelemetryHandler) SendCommand(c echo.Context) error {
	deviceID := c.Param("id")
	command := c.Param("command")
	if deviceID == "" || command == "" {
		return utils.BadRequestResponse(c, "device id and command are required")
	}

	if err := h.telemetryUC.SendDeviceCommand(c.Request().Context(), deviceID, command); err != nil {
		if strings.Contains(err.Error(), "unknown device command") {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to send device command",
			logger.String("device_id", deviceID),
			logger.String("command", command),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "failed to deliver command")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Command sent successfully",
		map[string]string{"device_id": deviceID, "command": command})
}

// Geocode handles GET /geocode?latitude=&longitude=
func (h *TelemetryHandler) Geocode(c echo.Context) error {
	latParam := c.QueryParam("latitude")
	lonParam := c.QueryParam("longitude")
	if latParam == "" || lonParam == "" {
		return utils.BadRequestResponse(c, "latitude and longitude are required")
	}

	lat, err := strconv.ParseFloat(latParam, 64)
	if err != nil || lat < -90 || lat > 90 {
		return utils.BadRequestResponse(c, "latitude must be a number between -90 and 90")
	}
	lon, err := strconv.ParseFloat(lonParam, 64)
	if err != nil || lon < -180 || lon > 180 {
		return utils.BadRequestResponse(c, "longitude must be a number between -180 and 180")
	}

	address, err := h.telemetryUC.ReverseGeocode(c.Request().Context(), lat, lon)
	if err != nil {
		logger.Error("Reverse geocoding failed", logger.Err(err))
		return utils.ServiceUnavailableResponse(c, "geocoding provider unavailable")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Address resolved successfully",
		map[string]string{"address": address})
}
