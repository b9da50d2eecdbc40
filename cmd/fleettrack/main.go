package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/arexperts/fleettrack/internal/pkg/config"
	"github.com/arexperts/fleettrack/internal/pkg/database"
	"github.com/arexperts/fleettrack/internal/pkg/logger"
	natspkg "github.com/arexperts/fleettrack/internal/pkg/nats"
	"github.com/arexperts/fleettrack/internal/pkg/server"

	activityhandler "github.com/arexperts/fleettrack/services/activity/handler"
	activityrepo "github.com/arexperts/fleettrack/services/activity/repository"
	activityusecase "github.com/arexperts/fleettrack/services/activity/usecase"
	geofencegateway "github.com/arexperts/fleettrack/services/geofence/gateway"
	geofencehandler "github.com/arexperts/fleettrack/services/geofence/handler"
	geofencerepo "github.com/arexperts/fleettrack/services/geofence/repository"
	geofenceusecase "github.com/arexperts/fleettrack/services/geofence/usecase"
	telemetrygateway "github.com/arexperts/fleettrack/services/telemetry/gateway"
	telemetryhandler "github.com/arexperts/fleettrack/services/telemetry/handler"
	telemetryrepo "github.com/arexperts/fleettrack/services/telemetry/repository"
	telemetryusecase "github.com/arexperts/fleettrack/services/telemetry/usecase"
)

func main() {
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Postgres
	pgClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to Postgres", logger.Err(err))
	}
	defer pgClient.Close()
	db := pgClient.GetDB()

	// Redis
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Repositories
	geofenceRepo := geofencerepo.NewGeofenceRepository(db)
	activityRepo := activityrepo.NewActivityRepository(db)
	positionRepo := telemetryrepo.NewPositionRepository(redisClient)

	// Gateways
	geofenceGW := geofencegateway.NewGeofenceGW(natsClient)
	telemetryGW := telemetrygateway.NewTelemetryGW(configs)
	geocodeGW := telemetrygateway.NewGeocodeGW(configs)

	// Usecases
	geofenceUC := geofenceusecase.NewGeofenceUC(configs, geofenceRepo, geofenceGW)
	activityUC := activityusecase.NewActivityUC(configs, activityRepo)
	telemetryUC := telemetryusecase.NewTelemetryUC(configs, telemetryGW, geocodeGW, positionRepo, activityUC)

	// Background pollers
	pollerCtx, stopPollers := context.WithCancel(context.Background())
	poller := telemetryusecase.NewPoller(configs, telemetryUC, geofenceUC, positionRepo)
	poller.Start(pollerCtx)

	// HTTP router
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = server.NewHTTPErrorHandler(configs.App.Environment)
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	geofencehandler.NewHTTPHandler(geofenceUC, configs).RegisterRoutes(e)
	activityhandler.NewHTTPHandler(activityUC, configs).RegisterRoutes(e)
	telemetryhandler.NewHTTPHandler(telemetryUC, configs).RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "app": configs.App.Name})
	})

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		stopPollers()
		return waitWithContext(ctx, poller.Wait)
	})

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		logger.Error("Component shutdown failed", logger.Err(err))
	}
}

func waitWithContext(ctx context.Context, wait func()) error {
	done := make(chan struct{})
	go func() {
		wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("pollers did not stop before shutdown deadline: %w", ctx.Err())
	}
}
