package constants

// Redis key formats
const (
	KeyVehicleTelemetry = "vehicle:telemetry:%s" // Format: vehicle:telemetry:{ident}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldSpeed     = "speed"
	FieldTimestamp = "ts"
	FieldGeohash   = "geohash"
)
