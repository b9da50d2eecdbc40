package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/services/geofence/mocks"
)

func newTestUC(t *testing.T) (*GeofenceUC, *mocks.MockGeofenceRepo, *mocks.MockGeofenceGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockGeofenceRepo(ctrl)
	gw := mocks.NewMockGeofenceGW(ctrl)
	uc := NewGeofenceUC(&models.Config{}, repo, gw)
	return uc, repo, gw
}

func TestCreateGeofence_Validation(t *testing.T) {
	uc, _, _ := newTestUC(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		fence models.Geofence
	}{
		{"Missing name", models.Geofence{Latitude: 51.5, Longitude: -0.1, RadiusMeters: 100}},
		{"Latitude out of range", models.Geofence{Name: "x", Latitude: 91, Longitude: -0.1, RadiusMeters: 100}},
		{"Longitude out of range", models.Geofence{Name: "x", Latitude: 51.5, Longitude: 181, RadiusMeters: 100}},
		{"Zero radius", models.Geofence{Name: "x", Latitude: 51.5, Longitude: -0.1}},
		{"Negative radius", models.Geofence{Name: "x", Latitude: 51.5, Longitude: -0.1, RadiusMeters: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.CreateGeofence(ctx, &tt.fence)
			assert.Error(t, err)
		})
	}
}

func TestCreateGeofence_AssignsIDAndTimestamp(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	ctx := context.Background()

	fence := &models.Geofence{Name: "Depot", Latitude: 51.5, Longitude: -0.1, RadiusMeters: 100}
	repo.EXPECT().CreateGeofence(ctx, fence).Return(nil)

	err := uc.CreateGeofence(ctx, fence)
	require.NoError(t, err)
	assert.NotEmpty(t, fence.ID)
	assert.False(t, fence.CreatedAt.IsZero())
}

func TestRecordLog_ExitRecomputesDuration(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	ctx := context.Background()

	exitTime := time.Date(2026, 3, 1, 10, 5, 0, 0, time.UTC)
	enterTime := exitTime.Add(-90 * time.Second)

	log := &models.GeofenceLog{
		VehicleID:  "veh-1",
		GeofenceID: "fence-1",
		EventType:  models.GeofenceEventExit,
		Timestamp:  exitTime,
		DurationMs: 12345, // client value must be discarded
	}

	repo.EXPECT().GetLatestEnter(ctx, "veh-1", "fence-1", exitTime).Return(&models.GeofenceLog{
		EventType: models.GeofenceEventEnter,
		Timestamp: enterTime,
	}, nil)
	repo.EXPECT().CreateLog(ctx, log).Return(nil)

	err := uc.RecordLog(ctx, log)
	require.NoError(t, err)
	assert.Equal(t, int64(90000), log.DurationMs)
}

func TestRecordLog_ExitWithoutPriorEnter(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	ctx := context.Background()

	log := &models.GeofenceLog{
		VehicleID:  "veh-1",
		GeofenceID: "fence-1",
		EventType:  models.GeofenceEventExit,
		Timestamp:  time.Now(),
		DurationMs: 9999,
	}

	repo.EXPECT().GetLatestEnter(ctx, "veh-1", "fence-1", gomock.Any()).Return(nil, nil)
	repo.EXPECT().CreateLog(ctx, log).Return(nil)

	err := uc.RecordLog(ctx, log)
	require.NoError(t, err)
	assert.Equal(t, int64(0), log.DurationMs)
}

func TestRecordLog_RejectsInvalidEventType(t *testing.T) {
	uc, _, _ := newTestUC(t)

	err := uc.RecordLog(context.Background(), &models.GeofenceLog{
		VehicleID:  "veh-1",
		GeofenceID: "fence-1",
		EventType:  "teleport",
	})
	assert.Error(t, err)
}

func TestEvaluateVehicle_PersistsAndPublishesEvents(t *testing.T) {
	uc, repo, gw := newTestUC(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	fences := []*models.Geofence{{
		ID:           "fence-1",
		Name:         "Depot",
		Latitude:     51.5,
		Longitude:    -0.1,
		RadiusMeters: 100,
	}}

	repo.EXPECT().GetGeofences(ctx).Return(fences, nil)
	repo.EXPECT().CreateLog(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, log *models.GeofenceLog) error {
			assert.Equal(t, models.GeofenceEventEnter, log.EventType)
			assert.NotEmpty(t, log.ID)
			return nil
		})
	gw.EXPECT().PublishGeofenceEvent(ctx, gomock.Any()).Return(nil)

	err := uc.EvaluateVehicle(ctx, "veh-1", models.Position{Latitude: 51.5, Longitude: -0.1}, now)
	require.NoError(t, err)
}

func TestEvaluateVehicle_NoGeofencesIsNoOp(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	ctx := context.Background()

	repo.EXPECT().GetGeofences(ctx).Return(nil, nil)

	err := uc.EvaluateVehicle(ctx, "veh-1", models.Position{Latitude: 51.5, Longitude: -0.1}, time.Now())
	assert.NoError(t, err)
}

func TestEvaluateVehicle_PersistFailureDoesNotFailTick(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	ctx := context.Background()
	now := time.Now()

	fences := []*models.Geofence{{
		ID: "fence-1", Name: "Depot", Latitude: 51.5, Longitude: -0.1, RadiusMeters: 100,
	}}

	repo.EXPECT().GetGeofences(ctx).Return(fences, nil)
	repo.EXPECT().CreateLog(ctx, gomock.Any()).Return(errors.New("db down"))

	err := uc.EvaluateVehicle(ctx, "veh-1", models.Position{Latitude: 51.5, Longitude: -0.1}, now)
	assert.NoError(t, err)

	// Classifier state advanced despite the dropped write: the next tick
	// inside the geofence reports the dwell, not a second enter.
	repo.EXPECT().GetGeofences(ctx).Return(fences, nil)
	repo.EXPECT().CreateLog(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, log *models.GeofenceLog) error {
			assert.Equal(t, models.GeofenceEventInside, log.EventType)
			return nil
		})

	gw := uc.gw.(*mocks.MockGeofenceGW)
	gw.EXPECT().PublishGeofenceEvent(ctx, gomock.Any()).Return(nil)

	err = uc.EvaluateVehicle(ctx, "veh-1", models.Position{Latitude: 51.5, Longitude: -0.1}, now.Add(5*time.Second))
	assert.NoError(t, err)
}

func TestDeleteGeofence_DropsTransitionState(t *testing.T) {
	uc, repo, gw := newTestUC(t)
	ctx := context.Background()
	now := time.Now()

	fences := []*models.Geofence{{
		ID: "fence-1", Name: "Depot", Latitude: 51.5, Longitude: -0.1, RadiusMeters: 100,
	}}

	repo.EXPECT().GetGeofences(ctx).Return(fences, nil)
	repo.EXPECT().CreateLog(ctx, gomock.Any()).Return(nil)
	gw.EXPECT().PublishGeofenceEvent(ctx, gomock.Any()).Return(nil)
	require.NoError(t, uc.EvaluateVehicle(ctx, "veh-1", models.Position{Latitude: 51.5, Longitude: -0.1}, now))

	repo.EXPECT().DeleteGeofence(ctx, "fence-1").Return(nil)
	require.NoError(t, uc.DeleteGeofence(ctx, "fence-1"))

	uc.mu.Lock()
	assert.Empty(t, uc.states)
	uc.mu.Unlock()
}
