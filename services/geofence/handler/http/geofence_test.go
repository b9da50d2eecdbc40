package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/services/geofence/mocks"
)

func setup(t *testing.T) (*GeofenceHandler, *mocks.MockGeofenceUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockGeofenceUC(ctrl)
	return NewGeofenceHandler(uc), uc, echo.New()
}

func TestCreateGeofence(t *testing.T) {
	h, uc, e := setup(t)

	body := `{"name":"Depot","latitude":51.5,"longitude":-0.1,"radius_meters":100}`
	req := httptest.NewRequest(http.MethodPost, "/geofences", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc.EXPECT().CreateGeofence(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, h.CreateGeofence(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateGeofence_ValidationError(t *testing.T) {
	h, uc, e := setup(t)

	body := `{"latitude":51.5,"longitude":-0.1,"radius_meters":100}`
	req := httptest.NewRequest(http.MethodPost, "/geofences", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc.EXPECT().CreateGeofence(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fence *models.Geofence) error {
			assert.Empty(t, fence.Name)
			return errors.New("geofence name is required")
		})

	require.NoError(t, h.CreateGeofence(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetLogs_RejectsMalformedDate(t *testing.T) {
	h, _, e := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/geofence-logs?date=01-03-2026", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetLogs(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteGeofence_NotFound(t *testing.T) {
	h, uc, e := setup(t)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	uc.EXPECT().DeleteGeofence(gomock.Any(), "missing").
		Return(errors.New("geofence not found: missing"))

	require.NoError(t, h.DeleteGeofence(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
