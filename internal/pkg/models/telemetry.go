package models

import "time"

// Position is a point on the earth with the time it was observed
type Position struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	SpeedKph  float64   `json:"speed_kph"`
	Timestamp time.Time `json:"timestamp"`
}

// TelemetrySample is one flat snapshot of vehicle signals keyed by
// signal name, as returned by the telemetry provider.
type TelemetrySample map[string]interface{}

// Ident returns the device identifier the sample was reported under
func (s TelemetrySample) Ident() string {
	v, _ := s["ident"].(string)
	return v
}

// Float reads a numeric signal; ok is false when the signal is absent
// or not a number.
func (s TelemetrySample) Float(key string) (float64, bool) {
	switch v := s[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Bool reads a boolean signal. Providers report some CAN signals as 0/1,
// so numeric values are accepted too.
func (s TelemetrySample) Bool(key string) (bool, bool) {
	switch v := s[key].(type) {
	case bool:
		return v, true
	case float64:
		return v != 0, true
	default:
		return false, false
	}
}

// String reads a string signal
func (s TelemetrySample) String(key string) (string, bool) {
	v, ok := s[key].(string)
	return v, ok
}

// DeviceCommand is an opaque command payload forwarded to the device
// provider. There is no idempotency key; a command must not be re-sent
// on the assumption that retrying is safe.
type DeviceCommand struct {
	Properties map[string]interface{} `json:"properties"`
	Address    string                 `json:"address"`
}
