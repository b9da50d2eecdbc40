package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arexperts/fleettrack/internal/pkg/logger"
	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/services/activity"
)

// ActivityUC implements the vehicle activity business logic
type ActivityUC struct {
	cfg  *models.Config
	repo activity.ActivityRepo
}

// NewActivityUC creates a new activity usecase
func NewActivityUC(cfg *models.Config, repo activity.ActivityRepo) *ActivityUC {
	return &ActivityUC{
		cfg:  cfg,
		repo: repo,
	}
}

// cooldown returns the minimum interval between unchanged snapshots
func (uc *ActivityUC) cooldown() time.Duration {
	seconds := uc.cfg.Poller.ActivityCooldown
	if seconds <= 0 {
		seconds = 60
	}
	return time.Duration(seconds) * time.Second
}

// RecordActivity gates and persists one candidate snapshot. The comparison
// baseline is always the latest persisted row, never an in-memory candidate,
// so suppressed snapshots leave the gate untouched.
func (uc *ActivityUC) RecordActivity(ctx context.Context, candidate *models.VehicleActivityLog) (bool, error) {
	if candidate.VehicleID == "" {
		return false, fmt.Errorf("vehicle_id is required")
	}
	if candidate.Timestamp.IsZero() {
		candidate.Timestamp = time.Now()
	}

	prev, err := uc.repo.GetLatestLog(ctx, candidate.VehicleID)
	if err != nil {
		return false, fmt.Errorf("failed to load latest activity log: %w", err)
	}

	if !shouldPersist(prev, candidate, uc.cooldown()) {
		logger.Debug("Activity snapshot suppressed by change gate",
			logger.String("vehicle_id", candidate.VehicleID))
		return false, nil
	}

	if candidate.ID == "" {
		candidate.ID = uuid.New().String()
	}
	if err := uc.repo.CreateLog(ctx, candidate); err != nil {
		return false, fmt.Errorf("failed to persist activity log: %w", err)
	}

	return true, nil
}

// GetLogsByDate returns all activity snapshots recorded on the given calendar day
func (uc *ActivityUC) GetLogsByDate(ctx context.Context, date time.Time) ([]*models.VehicleActivityLog, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 0, 1)
	return uc.repo.GetLogsByDateRange(ctx, start, end)
}
