package geofence

import (
	"context"

	"github.com/arexperts/fleettrack/internal/pkg/models"
)

// GeofenceGW defines the interface for publishing geofence events
type GeofenceGW interface {
	PublishGeofenceEvent(ctx context.Context, log *models.GeofenceLog) error
}
