package usecase

import (
	"sync"
	"time"

	"github.com/arexperts/fleettrack/internal/pkg/constants"
	"github.com/arexperts/fleettrack/internal/pkg/logger"
	"github.com/arexperts/fleettrack/internal/pkg/models"
)

// doorClosedWindow is how recently a door must have closed for the
// parked-and-unlocked condition to fire.
const doorClosedWindow = 7 * time.Second

// guardState tracks per-vehicle door history and condition latches
type guardState struct {
	doorWasOpen  bool
	lastDoorSeen bool
	doorClosedAt time.Time

	latchedClosedAfterOpen bool
	latchedDoorOpen        bool
	latchedUnlocked        bool
}

// securityGuard watches telemetry samples for theft-risk conditions and
// decides when to fire the lockdown command sequence. Each condition latches
// once and re-arms only after it clears, so a persisting condition does not
// flood the device with commands.
type securityGuard struct {
	mu     sync.Mutex
	states map[string]*guardState
}

func newSecurityGuard() *securityGuard {
	return &securityGuard{
		states: make(map[string]*guardState),
	}
}

// lockdownCommands is the sequence sent when any condition latches
var lockdownCommands = []string{
	constants.CommandCloseAllDoors,
	constants.CommandBlockEngine,
	constants.CommandSetDigout,
}

// Evaluate inspects one sample and returns the commands to send, if any
func (g *securityGuard) Evaluate(ident string, sample models.TelemetrySample, now time.Time) []string {
	engineOn, _ := sample.Bool(constants.SignalIgnition)
	speed, _ := sample.Float(constants.SignalPositionSpeed)
	carLocked, hasLock := sample.Bool(constants.SignalCarClosed)
	doors := decodeDoorStatus(sample)
	anyDoorOpen := doors.FrontLeft || doors.FrontRight || doors.RearLeft ||
		doors.RearRight || doors.Trunk

	g.mu.Lock()
	defer g.mu.Unlock()

	st, ok := g.states[ident]
	if !ok {
		st = &guardState{}
		g.states[ident] = st
	}

	if anyDoorOpen {
		st.doorWasOpen = true
	}
	if st.lastDoorSeen && !anyDoorOpen {
		st.doorClosedAt = now
	}
	st.lastDoorSeen = anyDoorOpen

	stopped := speed == 0
	recentlyClosed := !st.doorClosedAt.IsZero() && now.Sub(st.doorClosedAt) <= doorClosedWindow

	condClosedAfterOpen := engineOn && stopped && !anyDoorOpen && st.doorWasOpen
	condDoorOpen := engineOn && stopped && anyDoorOpen
	condUnlocked := !engineOn && stopped && recentlyClosed && hasLock && !carLocked

	trigger := false

	if condClosedAfterOpen && !st.latchedClosedAfterOpen {
		st.latchedClosedAfterOpen = true
		trigger = true
		logger.Warn("Guard: door closed after opening with engine running",
			logger.String("ident", ident))
	} else if !condClosedAfterOpen {
		st.latchedClosedAfterOpen = false
	}

	if condDoorOpen && !st.latchedDoorOpen {
		st.latchedDoorOpen = true
		trigger = true
		logger.Warn("Guard: door open with engine running",
			logger.String("ident", ident))
	} else if !condDoorOpen {
		st.latchedDoorOpen = false
	}

	if condUnlocked && !st.latchedUnlocked {
		st.latchedUnlocked = true
		trigger = true
		logger.Warn("Guard: vehicle parked and left unlocked",
			logger.String("ident", ident))
	} else if !condUnlocked {
		st.latchedUnlocked = false
	}

	if !trigger {
		return nil
	}
	return lockdownCommands
}
