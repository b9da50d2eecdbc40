package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/services/activity/mocks"
)

func baseSnapshot(ts time.Time) *models.VehicleActivityLog {
	return &models.VehicleActivityLog{
		VehicleID:    "veh-1",
		Action:       "ON",
		Location:     "1 Main Street",
		EngineAction: "ON",
		Handbrake:    false,
		DoorStatus: models.DoorStatus{
			FrontLeft: false, FrontRight: false, RearLeft: false, RearRight: false, Trunk: false,
		},
		EngineRPM:     "800",
		Odometer:      "120450",
		VehicleSpeed:  "0",
		Acceleration:  "0.00",
		VehicleIdling: "Yes",
		Timestamp:     ts,
	}
}

func newTestUC(t *testing.T) (*ActivityUC, *mocks.MockActivityRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockActivityRepo(ctrl)
	cfg := &models.Config{}
	cfg.Poller.ActivityCooldown = 60
	return NewActivityUC(cfg, repo), repo
}

func TestRecordActivity_FirstSnapshotAlwaysPersisted(t *testing.T) {
	uc, repo := newTestUC(t)
	ctx := context.Background()

	candidate := baseSnapshot(time.Now())
	repo.EXPECT().GetLatestLog(ctx, "veh-1").Return(nil, nil)
	repo.EXPECT().CreateLog(ctx, candidate).Return(nil)

	persisted, err := uc.RecordActivity(ctx, candidate)
	require.NoError(t, err)
	assert.True(t, persisted)
	assert.NotEmpty(t, candidate.ID)
}

func TestRecordActivity_UnchangedWithinCooldownSuppressed(t *testing.T) {
	uc, repo := newTestUC(t)
	ctx := context.Background()

	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	prev := baseSnapshot(t0)
	candidate := baseSnapshot(t0.Add(30 * time.Second))

	repo.EXPECT().GetLatestLog(ctx, "veh-1").Return(prev, nil)

	persisted, err := uc.RecordActivity(ctx, candidate)
	require.NoError(t, err)
	assert.False(t, persisted)
}

func TestRecordActivity_UnchangedAfterCooldownPersisted(t *testing.T) {
	uc, repo := newTestUC(t)
	ctx := context.Background()

	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	prev := baseSnapshot(t0)
	candidate := baseSnapshot(t0.Add(61 * time.Second))

	repo.EXPECT().GetLatestLog(ctx, "veh-1").Return(prev, nil)
	repo.EXPECT().CreateLog(ctx, candidate).Return(nil)

	persisted, err := uc.RecordActivity(ctx, candidate)
	require.NoError(t, err)
	assert.True(t, persisted)
}

func TestRecordActivity_MonitoredFieldChangeBypassesCooldown(t *testing.T) {
	uc, repo := newTestUC(t)
	ctx := context.Background()

	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	prev := baseSnapshot(t0)
	candidate := baseSnapshot(t0.Add(1 * time.Second))
	candidate.Handbrake = true

	repo.EXPECT().GetLatestLog(ctx, "veh-1").Return(prev, nil)
	repo.EXPECT().CreateLog(ctx, candidate).Return(nil)

	persisted, err := uc.RecordActivity(ctx, candidate)
	require.NoError(t, err)
	assert.True(t, persisted)
}

func TestRecordActivity_LocationJitterPersisted(t *testing.T) {
	uc, repo := newTestUC(t)
	ctx := context.Background()

	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	prev := baseSnapshot(t0)
	candidate := baseSnapshot(t0.Add(5 * time.Second))
	candidate.Location = "2 Main Street"

	repo.EXPECT().GetLatestLog(ctx, "veh-1").Return(prev, nil)
	repo.EXPECT().CreateLog(ctx, candidate).Return(nil)

	persisted, err := uc.RecordActivity(ctx, candidate)
	require.NoError(t, err)
	assert.True(t, persisted)
}

func TestRecordActivity_DoorStatusComparedStructurally(t *testing.T) {
	uc, repo := newTestUC(t)
	ctx := context.Background()

	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	prev := baseSnapshot(t0)
	candidate := baseSnapshot(t0.Add(2 * time.Second))
	candidate.DoorStatus.Trunk = true

	repo.EXPECT().GetLatestLog(ctx, "veh-1").Return(prev, nil)
	repo.EXPECT().CreateLog(ctx, candidate).Return(nil)

	persisted, err := uc.RecordActivity(ctx, candidate)
	require.NoError(t, err)
	assert.True(t, persisted)
}

func TestRecordActivity_RequiresVehicleID(t *testing.T) {
	uc, _ := newTestUC(t)

	candidate := baseSnapshot(time.Now())
	candidate.VehicleID = ""

	_, err := uc.RecordActivity(context.Background(), candidate)
	assert.Error(t, err)
}

func TestShouldPersist_BaselineIsPersistedRowNotCandidate(t *testing.T) {
	// Three identical snapshots 30s apart: the second is suppressed, and
	// the third compares against the first persisted row, so the elapsed
	// time crosses the cooldown and it is written.
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	prev := baseSnapshot(t0)

	second := baseSnapshot(t0.Add(30 * time.Second))
	assert.False(t, shouldPersist(prev, second, 60*time.Second))

	third := baseSnapshot(t0.Add(60 * time.Second))
	assert.True(t, shouldPersist(prev, third, 60*time.Second))
}
