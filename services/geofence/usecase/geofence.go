package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arexperts/fleettrack/internal/pkg/logger"
	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/services/geofence"
)

// GeofenceUC implements the geofence business logic
type GeofenceUC struct {
	cfg  *models.Config
	repo geofence.GeofenceRepo
	gw   geofence.GeofenceGW

	mu     sync.Mutex
	states map[string]*models.TransitionState
}

// NewGeofenceUC creates a new geofence usecase
func NewGeofenceUC(
	cfg *models.Config,
	repo geofence.GeofenceRepo,
	gw geofence.GeofenceGW,
) *GeofenceUC {
	return &GeofenceUC{
		cfg:    cfg,
		repo:   repo,
		gw:     gw,
		states: make(map[string]*models.TransitionState),
	}
}

// CreateGeofence validates and stores a new geofence
func (uc *GeofenceUC) CreateGeofence(ctx context.Context, fence *models.Geofence) error {
	if err := validateGeofence(fence); err != nil {
		return err
	}

	if fence.ID == "" {
		fence.ID = uuid.New().String()
	}
	if fence.CreatedAt.IsZero() {
		fence.CreatedAt = time.Now()
	}

	return uc.repo.CreateGeofence(ctx, fence)
}

// GetGeofences returns all configured geofences
func (uc *GeofenceUC) GetGeofences(ctx context.Context) ([]*models.Geofence, error) {
	return uc.repo.GetGeofences(ctx)
}

// UpdateGeofence validates and updates an existing geofence
func (uc *GeofenceUC) UpdateGeofence(ctx context.Context, fence *models.Geofence) error {
	if fence.ID == "" {
		return fmt.Errorf("geofence id is required")
	}
	if err := validateGeofence(fence); err != nil {
		return err
	}

	return uc.repo.UpdateGeofence(ctx, fence)
}

// DeleteGeofence removes a geofence. Transition state for the deleted
// geofence is dropped so a recreated geofence starts from a clean slate.
func (uc *GeofenceUC) DeleteGeofence(ctx context.Context, id string) error {
	if err := uc.repo.DeleteGeofence(ctx, id); err != nil {
		return err
	}

	uc.mu.Lock()
	for key, st := range uc.states {
		if st.GeofenceID == id {
			delete(uc.states, key)
		}
	}
	uc.mu.Unlock()

	return nil
}

// RecordLog stores a transition event submitted over HTTP. For exit events
// the dwell duration is recomputed on the server from the latest prior enter
// row; any client-supplied duration is discarded.
func (uc *GeofenceUC) RecordLog(ctx context.Context, log *models.GeofenceLog) error {
	if log.VehicleID == "" || log.GeofenceID == "" {
		return fmt.Errorf("vehicle_id and geofence_id are required")
	}
	switch log.EventType {
	case models.GeofenceEventEnter, models.GeofenceEventExit, models.GeofenceEventInside:
	default:
		return fmt.Errorf("invalid event type: %q", log.EventType)
	}

	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}

	if log.EventType == models.GeofenceEventExit {
		log.DurationMs = 0
		enter, err := uc.repo.GetLatestEnter(ctx, log.VehicleID, log.GeofenceID, log.Timestamp)
		if err != nil {
			return fmt.Errorf("failed to resolve matching enter event: %w", err)
		}
		if enter != nil {
			log.DurationMs = log.Timestamp.Sub(enter.Timestamp).Milliseconds()
		}
	}

	return uc.repo.CreateLog(ctx, log)
}

// GetLogsByDate returns all transition events recorded on the given calendar day
func (uc *GeofenceUC) GetLogsByDate(ctx context.Context, date time.Time) ([]*models.GeofenceLog, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 0, 1)
	return uc.repo.GetLogsByDateRange(ctx, start, end)
}

// EvaluateVehicle runs the transition classifier for one vehicle position.
// Persistence and event publishing failures are logged and dropped; they
// never fail the evaluation tick, and classifier state advances regardless.
func (uc *GeofenceUC) EvaluateVehicle(ctx context.Context, vehicleID string, pos models.Position, now time.Time) error {
	fences, err := uc.repo.GetGeofences(ctx)
	if err != nil {
		return fmt.Errorf("failed to load geofences: %w", err)
	}
	if len(fences) == 0 {
		return nil
	}

	uc.mu.Lock()
	events := Evaluate(vehicleID, pos, fences, uc.states, now)
	uc.mu.Unlock()

	for _, event := range events {
		event.ID = uuid.New().String()
		if err := uc.repo.CreateLog(ctx, event); err != nil {
			logger.Error("Failed to persist geofence event",
				logger.String("vehicle_id", event.VehicleID),
				logger.String("geofence_id", event.GeofenceID),
				logger.String("event_type", string(event.EventType)),
				logger.Err(err))
			continue
		}

		if err := uc.gw.PublishGeofenceEvent(ctx, event); err != nil {
			logger.Warn("Failed to publish geofence event",
				logger.String("vehicle_id", event.VehicleID),
				logger.String("event_type", string(event.EventType)),
				logger.Err(err))
		}
	}

	return nil
}

// ResetVehicleState clears the transition state of one vehicle, used when a
// device stops reporting and its cached position expires.
func (uc *GeofenceUC) ResetVehicleState(vehicleID string) {
	uc.mu.Lock()
	for key, st := range uc.states {
		if st.VehicleID == vehicleID {
			delete(uc.states, key)
		}
	}
	uc.mu.Unlock()
}

func validateGeofence(fence *models.Geofence) error {
	if fence.Name == "" {
		return fmt.Errorf("geofence name is required")
	}
	if fence.Latitude < -90 || fence.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if fence.Longitude < -180 || fence.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	if fence.RadiusMeters <= 0 {
		return fmt.Errorf("radius must be positive")
	}
	return nil
}
