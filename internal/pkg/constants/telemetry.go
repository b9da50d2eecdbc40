package constants

// Telemetry signal names as reported by the device provider
const (
	SignalLatitude       = "position.latitude"
	SignalLongitude      = "position.longitude"
	SignalPositionSpeed  = "position.speed"
	SignalIgnition       = "can.engine.ignition.status"
	SignalHandbrake      = "can.handbrake.status"
	SignalEngineRPM      = "can.engine.rpm"
	SignalMileage        = "can.vehicle.mileage"
	SignalVehicleSpeed   = "can.vehicle.speed"
	SignalDoorOpen       = "door.open.status"
	SignalCarClosed      = "can.car.closed.status"
	SignalEngineIgnition = "engine.ignition.status"
)

// Device commands accepted by the provider
const (
	CommandCloseAllDoors = "lvcanclosealldoors"
	CommandBlockEngine   = "lvcanblockengine"
	CommandSetDigout     = "setdigout_3"
)
