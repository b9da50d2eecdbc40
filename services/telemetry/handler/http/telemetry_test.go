package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/services/telemetry"
	"github.com/arexperts/fleettrack/services/telemetry/mocks"
)

func setup(t *testing.T) (*TelemetryHandler, *mocks.MockTelemetryUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockTelemetryUC(ctrl)
	return NewTelemetryHandler(uc), uc, echo.New()
}

func TestGetVehicleTelemetry(t *testing.T) {
	h, uc, e := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ident")
	c.SetParamValues("veh-1")

	uc.EXPECT().GetVehicleTelemetry(gomock.Any(), "veh-1").
		Return(models.TelemetrySample{"ident": "veh-1", "position.speed": 42.0}, nil)

	require.NoError(t, h.GetVehicleTelemetry(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "position.speed")
}

func TestGetVehicleTelemetry_Unauthorized(t *testing.T) {
	h, uc, e := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ident")
	c.SetParamValues("veh-1")

	uc.EXPECT().GetVehicleTelemetry(gomock.Any(), "veh-1").
		Return(nil, telemetry.ErrUnauthorized)

	require.NoError(t, h.GetVehicleTelemetry(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetVehicleTelemetry_NoMessages(t *testing.T) {
	h, uc, e := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ident")
	c.SetParamValues("veh-1")

	uc.EXPECT().GetVehicleTelemetry(gomock.Any(), "veh-1").Return(nil, nil)

	require.NoError(t, h.GetVehicleTelemetry(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendCommand(t *testing.T) {
	h, uc, e := setup(t)

	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "command")
	c.SetParamValues("dev-1", "lvcanclosealldoors")

	uc.EXPECT().SendDeviceCommand(gomock.Any(), "dev-1", "lvcanclosealldoors").Return(nil)

	require.NoError(t, h.SendCommand(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGeocode_ValidatesCoordinates(t *testing.T) {
	h, _, e := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/geocode?latitude=91&longitude=0", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Geocode(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeocode_ResolvesAddress(t *testing.T) {
	h, uc, e := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/geocode?latitude=51.5&longitude=-0.1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc.EXPECT().ReverseGeocode(gomock.Any(), 51.5, -0.1).Return("1 Main Street", nil)

	require.NoError(t, h.Geocode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1 Main Street")
}
