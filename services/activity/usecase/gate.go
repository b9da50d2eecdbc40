package usecase

import (
	"time"

	"github.com/arexperts/fleettrack/internal/pkg/models"
)

// shouldPersist decides whether a candidate snapshot is written. A write
// happens when the cooldown since the last persisted snapshot has elapsed,
// or when any monitored field changed. Everything else is a no-op: an
// unchanged vehicle produces at most one row per cooldown window.
func shouldPersist(prev, candidate *models.VehicleActivityLog, cooldown time.Duration) bool {
	if prev == nil {
		return true
	}
	if candidate.Timestamp.Sub(prev.Timestamp) >= cooldown {
		return true
	}
	return monitoredFieldsChanged(prev, candidate)
}

// monitoredFieldsChanged compares the monitored field set. Door status is
// compared structurally, door by door.
func monitoredFieldsChanged(prev, candidate *models.VehicleActivityLog) bool {
	return prev.Action != candidate.Action ||
		prev.Location != candidate.Location ||
		prev.EngineAction != candidate.EngineAction ||
		prev.Handbrake != candidate.Handbrake ||
		prev.DoorStatus != candidate.DoorStatus ||
		prev.EngineRPM != candidate.EngineRPM ||
		prev.Odometer != candidate.Odometer ||
		prev.VehicleSpeed != candidate.VehicleSpeed ||
		prev.Acceleration != candidate.Acceleration ||
		prev.VehicleIdling != candidate.VehicleIdling
}
