package telemetry

import (
	"context"

	"github.com/arexperts/fleettrack/internal/pkg/models"
)

// TelemetryGW defines the interface for the device-telemetry provider
type TelemetryGW interface {
	// FetchLatestSample returns the most recent telemetry sample reported
	// by the device, or nil when the device has no messages.
	FetchLatestSample(ctx context.Context, ident string) (models.TelemetrySample, error)

	// SendCommand forwards a device command. It is issued exactly once; the
	// provider offers no idempotency key, so failures are not retried.
	SendCommand(ctx context.Context, deviceID, command string, payload *models.DeviceCommand) error
}

// GeocodeGW defines the interface for the reverse-geocoding provider
type GeocodeGW interface {
	// ReverseGeocode resolves a coordinate to a street address. Lookup
	// failures degrade to a placeholder string rather than an error so the
	// polling loop keeps going.
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}
