package telemetry

import (
	"context"

	"github.com/arexperts/fleettrack/internal/pkg/models"
)

// TelemetryUC defines the interface for telemetry business logic
type TelemetryUC interface {
	// GetVehicleTelemetry fetches the latest sample for a device straight
	// from the provider.
	GetVehicleTelemetry(ctx context.Context, ident string) (models.TelemetrySample, error)

	// SendDeviceCommand forwards a command to the provider. Commands are
	// never retried.
	SendDeviceCommand(ctx context.Context, deviceID, command string) error

	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)

	// ProcessDevice runs one telemetry tick for a device: fetch the latest
	// sample, cache the position, derive an activity candidate and submit
	// it to the change-gated writer, and run the security guard.
	ProcessDevice(ctx context.Context, ident string) error
}
