package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/arexperts/fleettrack/internal/pkg/logger"
	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/services/geofence"
	"github.com/arexperts/fleettrack/services/telemetry"
)

// Poller drives the background loops: one telemetry fetch loop per
// configured device and one shared geofence classifier loop over the cached
// positions.
type Poller struct {
	cfg         *models.Config
	telemetryUC telemetry.TelemetryUC
	geofenceUC  geofence.GeofenceUC
	posRepo     telemetry.PositionRepo

	mu       sync.Mutex
	inFlight map[string]bool

	wg sync.WaitGroup
}

// NewPoller creates a new poller
func NewPoller(
	cfg *models.Config,
	telemetryUC telemetry.TelemetryUC,
	geofenceUC geofence.GeofenceUC,
	posRepo telemetry.PositionRepo,
) *Poller {
	return &Poller{
		cfg:         cfg,
		telemetryUC: telemetryUC,
		geofenceUC:  geofenceUC,
		posRepo:     posRepo,
		inFlight:    make(map[string]bool),
	}
}

// Start launches the polling goroutines. They run until ctx is cancelled.
func (p *Poller) Start(ctx context.Context) {
	telemetryInterval := time.Duration(p.cfg.Poller.TelemetryInterval) * time.Second
	if telemetryInterval <= 0 {
		telemetryInterval = 60 * time.Second
	}
	geofenceInterval := time.Duration(p.cfg.Poller.GeofenceInterval) * time.Second
	if geofenceInterval <= 0 {
		geofenceInterval = 5 * time.Second
	}

	for _, ident := range p.cfg.Telemetry.DeviceIdent {
		p.wg.Add(1)
		go p.runTelemetryLoop(ctx, ident, telemetryInterval)
	}

	p.wg.Add(1)
	go p.runGeofenceLoop(ctx, geofenceInterval)

	logger.Info("Pollers started",
		logger.Int("devices", len(p.cfg.Telemetry.DeviceIdent)),
		logger.Duration("telemetry_interval", telemetryInterval),
		logger.Duration("geofence_interval", geofenceInterval))
}

// Wait blocks until all polling goroutines have stopped
func (p *Poller) Wait() {
	p.wg.Wait()
}

func (p *Poller) runTelemetryLoop(ctx context.Context, ident string, interval time.Duration) {
	defer p.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p.pollDevice(ctx, ident)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Telemetry poller stopped", logger.String("ident", ident))
			return
		case <-ticker.C:
			p.pollDevice(ctx, ident)
		}
	}
}

// pollDevice runs one telemetry tick with per-device single-flight: when the
// previous fetch is still running the tick is skipped, so decide-then-persist
// for one vehicle is never concurrent with itself.
func (p *Poller) pollDevice(ctx context.Context, ident string) {
	p.mu.Lock()
	if p.inFlight[ident] {
		p.mu.Unlock()
		logger.Debug("Previous fetch still in flight, skipping tick",
			logger.String("ident", ident))
		return
	}
	p.inFlight[ident] = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		delete(p.inFlight, ident)
		p.mu.Unlock()
	}()

	if err := p.telemetryUC.ProcessDevice(ctx, ident); err != nil {
		logger.Error("Telemetry tick failed",
			logger.String("ident", ident), logger.Err(err))
	}
}

func (p *Poller) runGeofenceLoop(ctx context.Context, interval time.Duration) {
	defer p.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Geofence classifier stopped")
			return
		case <-ticker.C:
			p.classifyAll(ctx)
		}
	}
}

// classifyAll runs the transition classifier over every cached position. A
// vehicle without a cached position skips the tick with a single log line.
func (p *Poller) classifyAll(ctx context.Context) {
	now := time.Now()

	for _, ident := range p.cfg.Telemetry.DeviceIdent {
		pos, err := p.posRepo.GetLastPosition(ctx, ident)
		if err != nil {
			logger.Warn("Failed to read cached position for classifier",
				logger.String("ident", ident), logger.Err(err))
			continue
		}
		if pos == nil {
			logger.Debug("No cached position, skipping classifier tick",
				logger.String("ident", ident))
			continue
		}

		if err := p.geofenceUC.EvaluateVehicle(ctx, ident, *pos, now); err != nil {
			logger.Error("Geofence evaluation failed",
				logger.String("ident", ident), logger.Err(err))
		}
	}
}
