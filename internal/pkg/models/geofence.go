package models

import "time"

// Geofence is a circular region used to detect vehicle entry and exit
type Geofence struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Latitude     float64   `db:"latitude" json:"latitude"`
	Longitude    float64   `db:"longitude" json:"longitude"`
	RadiusMeters float64   `db:"radius_m" json:"radius_meters"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// GeofenceEventType identifies the kind of geofence transition
type GeofenceEventType string

const (
	GeofenceEventNone   GeofenceEventType = ""
	GeofenceEventEnter  GeofenceEventType = "enter"
	GeofenceEventExit   GeofenceEventType = "exit"
	GeofenceEventInside GeofenceEventType = "inside"
)

// GeofenceLog is a persisted geofence transition event.
// DurationMs is meaningful only for exit events: the dwell time since the
// matching enter. The server recomputes it at write time from the latest
// prior enter row; client-supplied values are not trusted.
type GeofenceLog struct {
	ID         string            `db:"id" json:"id"`
	VehicleID  string            `db:"vehicle_id" json:"vehicle_id"`
	GeofenceID string            `db:"geofence_id" json:"geofence_id"`
	EventType  GeofenceEventType `db:"event_type" json:"event_type"`
	Timestamp  time.Time         `db:"timestamp" json:"timestamp"`
	DurationMs int64             `db:"duration_ms" json:"duration_ms"`
}

// TransitionState is the classifier's working memory for one
// (vehicle, geofence) pair. It is never persisted; it lives for the session
// and is mutated on every evaluation tick.
type TransitionState struct {
	VehicleID  string
	GeofenceID string
	Inside     bool
	EnteredAt  *time.Time
	LastEvent  GeofenceEventType
}
