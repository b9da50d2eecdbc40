package telemetry

import (
	"context"

	"github.com/arexperts/fleettrack/internal/pkg/models"
)

// PositionRepo defines the interface for the last-known position cache
type PositionRepo interface {
	SaveLastPosition(ctx context.Context, ident string, pos models.Position) error

	// GetLastPosition returns the cached position, or nil when the device
	// has not reported yet or the entry expired.
	GetLastPosition(ctx context.Context, ident string) (*models.Position, error)
}
