package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/arexperts/fleettrack/internal/pkg/constants"
	"github.com/arexperts/fleettrack/internal/pkg/logger"
	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/services/activity"
	"github.com/arexperts/fleettrack/services/telemetry"
)

// TelemetryUC implements the telemetry business logic
type TelemetryUC struct {
	cfg        *models.Config
	gw         telemetry.TelemetryGW
	geocodeGW  telemetry.GeocodeGW
	posRepo    telemetry.PositionRepo
	activityUC activity.ActivityUC
	guard      *securityGuard
}

// NewTelemetryUC creates a new telemetry usecase
func NewTelemetryUC(
	cfg *models.Config,
	gw telemetry.TelemetryGW,
	geocodeGW telemetry.GeocodeGW,
	posRepo telemetry.PositionRepo,
	activityUC activity.ActivityUC,
) *TelemetryUC {
	return &TelemetryUC{
		cfg:        cfg,
		gw:         gw,
		geocodeGW:  geocodeGW,
		posRepo:    posRepo,
		activityUC: activityUC,
		guard:      newSecurityGuard(),
	}
}

// GetVehicleTelemetry fetches the latest sample for a device
func (uc *TelemetryUC) GetVehicleTelemetry(ctx context.Context, ident string) (models.TelemetrySample, error) {
	return uc.gw.FetchLatestSample(ctx, ident)
}

// SendDeviceCommand forwards a known command to the provider
func (uc *TelemetryUC) SendDeviceCommand(ctx context.Context, deviceID, command string) error {
	payload, err := buildCommandPayload(command)
	if err != nil {
		return err
	}
	return uc.gw.SendCommand(ctx, deviceID, command, payload)
}

// ReverseGeocode resolves a coordinate to a street address
func (uc *TelemetryUC) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	return uc.geocodeGW.ReverseGeocode(ctx, lat, lon)
}

// buildCommandPayload maps a command name to its provider payload
func buildCommandPayload(command string) (*models.DeviceCommand, error) {
	switch command {
	case constants.CommandCloseAllDoors, constants.CommandBlockEngine:
		return &models.DeviceCommand{
			Properties: map[string]interface{}{},
			Address:    "connection",
		}, nil
	case constants.CommandSetDigout:
		return &models.DeviceCommand{
			Properties: map[string]interface{}{
				"out1": map[string]interface{}{"state": "1"},
			},
			Address: "connection",
		}, nil
	default:
		return nil, fmt.Errorf("unknown device command: %q", command)
	}
}

// ProcessDevice runs one telemetry tick for a device: fetch the newest
// sample, cache its position, derive and submit an activity-log candidate,
// and run the security guard.
func (uc *TelemetryUC) ProcessDevice(ctx context.Context, ident string) error {
	sample, err := uc.gw.FetchLatestSample(ctx, ident)
	if err != nil {
		return fmt.Errorf("failed to fetch telemetry for %s: %w", ident, err)
	}
	if sample == nil {
		logger.Debug("Device has no telemetry messages", logger.String("ident", ident))
		return nil
	}

	now := time.Now()

	prev, err := uc.posRepo.GetLastPosition(ctx, ident)
	if err != nil {
		logger.Warn("Failed to read cached position",
			logger.String("ident", ident), logger.Err(err))
		prev = nil
	}

	lat, hasLat := sample.Float(constants.SignalLatitude)
	lon, hasLon := sample.Float(constants.SignalLongitude)
	speed, _ := sample.Float(constants.SignalPositionSpeed)

	if hasLat && hasLon {
		pos := models.Position{Latitude: lat, Longitude: lon, SpeedKph: speed, Timestamp: now}
		if err := uc.posRepo.SaveLastPosition(ctx, ident, pos); err != nil {
			logger.Warn("Failed to cache position",
				logger.String("ident", ident), logger.Err(err))
		}
	}

	candidate := uc.deriveCandidate(ctx, ident, sample, prev, now)
	persisted, err := uc.activityUC.RecordActivity(ctx, candidate)
	if err != nil {
		logger.Error("Failed to record activity candidate",
			logger.String("ident", ident), logger.Err(err))
	} else if persisted {
		logger.Debug("Activity snapshot persisted", logger.String("ident", ident))
	}

	uc.runGuard(ctx, ident, sample, now)

	return nil
}

// deriveCandidate builds an activity-log candidate from one telemetry sample
func (uc *TelemetryUC) deriveCandidate(
	ctx context.Context,
	ident string,
	sample models.TelemetrySample,
	prev *models.Position,
	now time.Time,
) *models.VehicleActivityLog {
	candidate := &models.VehicleActivityLog{
		VehicleID: ident,
		Timestamp: now,
	}

	ignition, hasIgnition := sample.Bool(constants.SignalIgnition)
	switch {
	case !hasIgnition:
		candidate.Action = "IDLE"
	case ignition:
		candidate.Action = "ON"
	default:
		candidate.Action = "OFF"
	}

	if engineIgnition, ok := sample.Bool(constants.SignalEngineIgnition); ok {
		if engineIgnition {
			candidate.EngineAction = "ON"
		} else {
			candidate.EngineAction = "OFF"
		}
	}

	if handbrake, ok := sample.Bool(constants.SignalHandbrake); ok {
		candidate.Handbrake = handbrake
	}
	candidate.DoorStatus = decodeDoorStatus(sample)

	if rpm, ok := sample.Float(constants.SignalEngineRPM); ok {
		candidate.EngineRPM = strconv.FormatFloat(rpm, 'f', -1, 64)
	}
	if mileage, ok := sample.Float(constants.SignalMileage); ok {
		candidate.Odometer = strconv.FormatFloat(mileage, 'f', -1, 64)
	}

	speed, hasSpeed := sample.Float(constants.SignalVehicleSpeed)
	if !hasSpeed {
		speed, hasSpeed = sample.Float(constants.SignalPositionSpeed)
	}
	if hasSpeed {
		candidate.VehicleSpeed = strconv.FormatFloat(speed, 'f', -1, 64)
	}

	candidate.Acceleration = uc.deriveAcceleration(speed, prev)
	candidate.VehicleIdling = deriveIdling(hasIgnition && ignition, speed)

	if lat, ok := sample.Float(constants.SignalLatitude); ok {
		if lon, okLon := sample.Float(constants.SignalLongitude); okLon {
			address, err := uc.geocodeGW.ReverseGeocode(ctx, lat, lon)
			if err == nil {
				candidate.Location = address
			}
		}
	}

	return candidate
}

// deriveAcceleration approximates acceleration in kph per second over the
// poll interval
func (uc *TelemetryUC) deriveAcceleration(speed float64, prev *models.Position) string {
	interval := uc.cfg.Poller.TelemetryInterval
	if interval <= 0 {
		interval = 60
	}
	if prev == nil {
		return "0.00"
	}
	accel := (speed - prev.SpeedKph) / float64(interval)
	return strconv.FormatFloat(accel, 'f', 2, 64)
}

func deriveIdling(engineOn bool, speed float64) string {
	if engineOn && speed == 0 {
		return "Yes"
	}
	return "No"
}

// decodeDoorStatus expands the provider's door bitmask: bit 0 front left,
// bit 1 front right, bit 2 rear left, bit 3 rear right, bit 4 trunk.
func decodeDoorStatus(sample models.TelemetrySample) models.DoorStatus {
	mask, ok := sample.Float(constants.SignalDoorOpen)
	if !ok {
		return models.DoorStatus{}
	}

	bits := int(mask)
	return models.DoorStatus{
		FrontLeft:  bits&1 != 0,
		FrontRight: bits&2 != 0,
		RearLeft:   bits&4 != 0,
		RearRight:  bits&8 != 0,
		Trunk:      bits&16 != 0,
	}
}

// runGuard evaluates the anti-theft conditions and fires the lockdown
// command sequence when one latches
func (uc *TelemetryUC) runGuard(ctx context.Context, ident string, sample models.TelemetrySample, now time.Time) {
	commands := uc.guard.Evaluate(ident, sample, now)
	for _, command := range commands {
		if err := uc.SendDeviceCommand(ctx, ident, command); err != nil {
			logger.Error("Failed to send guard command",
				logger.String("ident", ident),
				logger.String("command", command),
				logger.Err(err))
		}
	}
}
