package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/services/geofence"
)

// PostgresGeofenceRepo implements the GeofenceRepo interface
type PostgresGeofenceRepo struct {
	db *sqlx.DB
}

// NewGeofenceRepository creates a new geofence repository
func NewGeofenceRepository(db *sqlx.DB) geofence.GeofenceRepo {
	return &PostgresGeofenceRepo{
		db: db,
	}
}

// CreateGeofence inserts a new geofence record
func (r *PostgresGeofenceRepo) CreateGeofence(ctx context.Context, fence *models.Geofence) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO geofences (id, name, latitude, longitude, radius_m, created_at)
		VALUES (:id, :name, :latitude, :longitude, :radius_m, :created_at)
	`, fence)
	if err != nil {
		return fmt.Errorf("failed to create geofence: %w", err)
	}

	return nil
}

// GetGeofences returns all geofences, newest first
func (r *PostgresGeofenceRepo) GetGeofences(ctx context.Context) ([]*models.Geofence, error) {
	var fences []*models.Geofence
	err := r.db.SelectContext(ctx, &fences, `
		SELECT id, name, latitude, longitude, radius_m, created_at
		FROM geofences
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get geofences: %w", err)
	}

	return fences, nil
}

// UpdateGeofence updates an existing geofence in place
func (r *PostgresGeofenceRepo) UpdateGeofence(ctx context.Context, fence *models.Geofence) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE geofences
		SET name = $1, latitude = $2, longitude = $3, radius_m = $4
		WHERE id = $5
	`, fence.Name, fence.Latitude, fence.Longitude, fence.RadiusMeters, fence.ID)
	if err != nil {
		return fmt.Errorf("failed to update geofence: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("geofence not found: %s", fence.ID)
	}

	return nil
}

// DeleteGeofence removes a geofence record
func (r *PostgresGeofenceRepo) DeleteGeofence(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM geofences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete geofence: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("geofence not found: %s", id)
	}

	return nil
}

// CreateLog inserts a transition event record
func (r *PostgresGeofenceRepo) CreateLog(ctx context.Context, log *models.GeofenceLog) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO geofence_logs (id, vehicle_id, geofence_id, event_type, timestamp, duration_ms)
		VALUES (:id, :vehicle_id, :geofence_id, :event_type, :timestamp, :duration_ms)
	`, log)
	if err != nil {
		return fmt.Errorf("failed to create geofence log: %w", err)
	}

	return nil
}

// GetLogsByDateRange returns transition events in [start, end), newest first
func (r *PostgresGeofenceRepo) GetLogsByDateRange(ctx context.Context, start, end time.Time) ([]*models.GeofenceLog, error) {
	var logs []*models.GeofenceLog
	err := r.db.SelectContext(ctx, &logs, `
		SELECT id, vehicle_id, geofence_id, event_type, timestamp, duration_ms
		FROM geofence_logs
		WHERE timestamp >= $1 AND timestamp < $2
		ORDER BY timestamp DESC
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get geofence logs: %w", err)
	}

	return logs, nil
}

// GetLatestEnter returns the most recent enter event for the pair at or
// before the given time
func (r *PostgresGeofenceRepo) GetLatestEnter(ctx context.Context, vehicleID, geofenceID string, before time.Time) (*models.GeofenceLog, error) {
	var log models.GeofenceLog
	err := r.db.GetContext(ctx, &log, `
		SELECT id, vehicle_id, geofence_id, event_type, timestamp, duration_ms
		FROM geofence_logs
		WHERE vehicle_id = $1 AND geofence_id = $2 AND event_type = 'enter' AND timestamp <= $3
		ORDER BY timestamp DESC
		LIMIT 1
	`, vehicleID, geofenceID, before)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest enter event: %w", err)
	}

	return &log, nil
}
