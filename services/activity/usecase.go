package activity

import (
	"context"
	"time"

	"github.com/arexperts/fleettrack/internal/pkg/models"
)

// ActivityUC defines the interface for vehicle activity business logic
type ActivityUC interface {
	// RecordActivity applies the change gate to a candidate snapshot and
	// persists it when it passes. It reports whether a row was written.
	RecordActivity(ctx context.Context, candidate *models.VehicleActivityLog) (bool, error)

	GetLogsByDate(ctx context.Context, date time.Time) ([]*models.VehicleActivityLog, error)
}
