package usecase

import (
	"fmt"
	"time"

	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/internal/utils"
)

// stateKey identifies one (vehicle, geofence) pair in the transition state map
func stateKey(vehicleID, geofenceID string) string {
	return fmt.Sprintf("%s:%s", vehicleID, geofenceID)
}

// Evaluate classifies a vehicle position against every geofence and returns
// the transition events produced by this tick. Each (vehicle, geofence) pair
// is tracked independently: a vehicle can be inside several overlapping
// geofences at once.
//
// Boundary points (distance exactly equal to the radius) count as inside.
// An inside event is emitted once per dwell, on the first tick after the
// enter where the vehicle is still inside. An exit event carries the dwell
// duration in milliseconds measured from the recorded entry time.
//
// The states map is mutated in place. Re-evaluating the same position
// produces no further events.
func Evaluate(
	vehicleID string,
	pos models.Position,
	fences []*models.Geofence,
	states map[string]*models.TransitionState,
	now time.Time,
) []*models.GeofenceLog {
	var events []*models.GeofenceLog

	for _, fence := range fences {
		key := stateKey(vehicleID, fence.ID)
		st, ok := states[key]
		if !ok {
			st = &models.TransitionState{
				VehicleID:  vehicleID,
				GeofenceID: fence.ID,
			}
			states[key] = st
		}

		inside := utils.IsWithinRadius(fence.Latitude, fence.Longitude,
			pos.Latitude, pos.Longitude, fence.RadiusMeters)

		switch {
		case inside && !st.Inside:
			enteredAt := now
			st.Inside = true
			st.EnteredAt = &enteredAt
			st.LastEvent = models.GeofenceEventEnter
			events = append(events, &models.GeofenceLog{
				VehicleID:  vehicleID,
				GeofenceID: fence.ID,
				EventType:  models.GeofenceEventEnter,
				Timestamp:  now,
			})

		case inside && st.Inside && st.LastEvent != models.GeofenceEventInside:
			st.LastEvent = models.GeofenceEventInside
			events = append(events, &models.GeofenceLog{
				VehicleID:  vehicleID,
				GeofenceID: fence.ID,
				EventType:  models.GeofenceEventInside,
				Timestamp:  now,
			})

		case !inside && st.Inside:
			var durationMs int64
			if st.EnteredAt != nil {
				durationMs = now.Sub(*st.EnteredAt).Milliseconds()
			}
			st.Inside = false
			st.EnteredAt = nil
			st.LastEvent = models.GeofenceEventExit
			events = append(events, &models.GeofenceLog{
				VehicleID:  vehicleID,
				GeofenceID: fence.ID,
				EventType:  models.GeofenceEventExit,
				Timestamp:  now,
				DurationMs: durationMs,
			})
		}
	}

	return events
}
