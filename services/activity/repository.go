package activity

import (
	"context"
	"time"

	"github.com/arexperts/fleettrack/internal/pkg/models"
)

// ActivityRepo defines the interface for vehicle activity data access
type ActivityRepo interface {
	CreateLog(ctx context.Context, log *models.VehicleActivityLog) error

	// GetLatestLog returns the most recently persisted snapshot for the
	// vehicle, or nil when the vehicle has no history.
	GetLatestLog(ctx context.Context, vehicleID string) (*models.VehicleActivityLog, error)

	GetLogsByDateRange(ctx context.Context, start, end time.Time) ([]*models.VehicleActivityLog, error)
}
