package models

import "time"

// DoorStatus holds the open/closed state of each door
type DoorStatus struct {
	FrontLeft  bool `db:"door_front_left" json:"frontLeft"`
	FrontRight bool `db:"door_front_right" json:"frontRight"`
	RearLeft   bool `db:"door_rear_left" json:"rearLeft"`
	RearRight  bool `db:"door_rear_right" json:"rearRight"`
	Trunk      bool `db:"door_trunk" json:"trunk"`
}

// VehicleActivityLog is one persisted snapshot of vehicle activity.
// Entries are append-only; there are no updates or deletes.
type VehicleActivityLog struct {
	ID            string     `db:"id" json:"id"`
	VehicleID     string     `db:"vehicle_id" json:"vehicle_id"`
	Action        string     `db:"action" json:"action"`
	Location      string     `db:"location" json:"location"`
	EngineAction  string     `db:"engine_action" json:"engine_action"`
	Handbrake     bool       `db:"handbrake" json:"handbrake"`
	DoorStatus    DoorStatus `db:"-" json:"door_status"`
	EngineRPM     string     `db:"engine_rpm" json:"engine_rpm,omitempty"`
	Odometer      string     `db:"odometer" json:"odometer,omitempty"`
	VehicleSpeed  string     `db:"vehicle_speed" json:"vehicle_speed"`
	Acceleration  string     `db:"acceleration" json:"acceleration"`
	VehicleIdling string     `db:"vehicle_idling" json:"vehicle_idling"`
	Timestamp     time.Time  `db:"timestamp" json:"timestamp"`
}
