package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/services/activity/mocks"
)

func setup(t *testing.T) (*ActivityHandler, *mocks.MockActivityUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockActivityUC(ctrl)
	return NewActivityHandler(uc), uc, echo.New()
}

func TestRecordActivity_Persisted(t *testing.T) {
	h, uc, e := setup(t)

	body := `{"vehicle_id":"veh-1","action":"ON","vehicle_speed":"12"}`
	req := httptest.NewRequest(http.MethodPost, "/vehicle-activity-logs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc.EXPECT().RecordActivity(gomock.Any(), gomock.Any()).Return(true, nil)

	require.NoError(t, h.RecordActivity(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRecordActivity_SuppressedReturns200(t *testing.T) {
	h, uc, e := setup(t)

	body := `{"vehicle_id":"veh-1","action":"ON"}`
	req := httptest.NewRequest(http.MethodPost, "/vehicle-activity-logs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc.EXPECT().RecordActivity(gomock.Any(), gomock.Any()).Return(false, nil)

	require.NoError(t, h.RecordActivity(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"persisted":false`)
}

func TestGetLogs_RequiresDate(t *testing.T) {
	h, _, e := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/vehicle-activity-logs", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetLogs(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetLogs_ReturnsLogsForDay(t *testing.T) {
	h, uc, e := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/vehicle-activity-logs?date=2026-03-01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc.EXPECT().GetLogsByDate(gomock.Any(), gomock.Any()).
		Return([]*models.VehicleActivityLog{{ID: "log-1", VehicleID: "veh-1"}}, nil)

	require.NoError(t, h.GetLogs(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "log-1")
}
