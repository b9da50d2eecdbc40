package constants

// NATS Subjects
const (
	SubjectGeofenceEvents = "geofence.events"
)
