package geofence

import (
	"context"
	"time"

	"github.com/arexperts/fleettrack/internal/pkg/models"
)

// GeofenceRepo defines the interface for geofence data access
type GeofenceRepo interface {
	CreateGeofence(ctx context.Context, fence *models.Geofence) error
	GetGeofences(ctx context.Context) ([]*models.Geofence, error)
	UpdateGeofence(ctx context.Context, fence *models.Geofence) error
	DeleteGeofence(ctx context.Context, id string) error

	CreateLog(ctx context.Context, log *models.GeofenceLog) error
	GetLogsByDateRange(ctx context.Context, start, end time.Time) ([]*models.GeofenceLog, error)

	// GetLatestEnter returns the most recent enter event for the pair at or
	// before the given time, or nil when the vehicle has no recorded entry.
	GetLatestEnter(ctx context.Context, vehicleID, geofenceID string, before time.Time) (*models.GeofenceLog, error)
}
