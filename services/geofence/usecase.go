package geofence

import (
	"context"
	"time"

	"github.com/arexperts/fleettrack/internal/pkg/models"
)

// GeofenceUC defines the interface for geofence business logic
type GeofenceUC interface {
	// Geofence management
	CreateGeofence(ctx context.Context, fence *models.Geofence) error
	GetGeofences(ctx context.Context) ([]*models.Geofence, error)
	UpdateGeofence(ctx context.Context, fence *models.Geofence) error
	DeleteGeofence(ctx context.Context, id string) error

	// Transition log operations
	RecordLog(ctx context.Context, log *models.GeofenceLog) error
	GetLogsByDate(ctx context.Context, date time.Time) ([]*models.GeofenceLog, error)

	// EvaluateVehicle classifies one vehicle position against every
	// geofence and persists any resulting transition events.
	EvaluateVehicle(ctx context.Context, vehicleID string, pos models.Position, now time.Time) error
}
