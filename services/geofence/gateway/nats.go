package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arexperts/fleettrack/internal/pkg/constants"
	"github.com/arexperts/fleettrack/internal/pkg/models"
	natspkg "github.com/arexperts/fleettrack/internal/pkg/nats"
	"github.com/arexperts/fleettrack/services/geofence"
)

// GeofenceGW publishes geofence events to NATS
type GeofenceGW struct {
	natsClient *natspkg.Client
}

// NewGeofenceGW creates a new geofence gateway
func NewGeofenceGW(natsClient *natspkg.Client) geofence.GeofenceGW {
	return &GeofenceGW{
		natsClient: natsClient,
	}
}

// geofenceEventMessage is the wire format for published transition events
type geofenceEventMessage struct {
	VehicleID  string `json:"vehicle_id"`
	GeofenceID string `json:"geofence_id"`
	EventType  string `json:"event_type"`
	Timestamp  string `json:"timestamp"`
	DurationMs int64  `json:"duration_ms,omitempty"`
}

// PublishGeofenceEvent publishes a transition event for downstream consumers
func (g *GeofenceGW) PublishGeofenceEvent(_ context.Context, log *models.GeofenceLog) error {
	data, err := json.Marshal(geofenceEventMessage{
		VehicleID:  log.VehicleID,
		GeofenceID: log.GeofenceID,
		EventType:  string(log.EventType),
		Timestamp:  log.Timestamp.UTC().Format(time.RFC3339),
		DurationMs: log.DurationMs,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal geofence event: %w", err)
	}

	if err := g.natsClient.Publish(constants.SubjectGeofenceEvents, data); err != nil {
		return fmt.Errorf("failed to publish geofence event: %w", err)
	}

	return nil
}
