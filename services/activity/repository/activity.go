package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/services/activity"
)

// PostgresActivityRepo implements the ActivityRepo interface
type PostgresActivityRepo struct {
	db *sqlx.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *sqlx.DB) activity.ActivityRepo {
	return &PostgresActivityRepo{
		db: db,
	}
}

// activityLogRow flattens the door status into the table's columns
type activityLogRow struct {
	models.VehicleActivityLog
	DoorFrontLeft  bool `db:"door_front_left"`
	DoorFrontRight bool `db:"door_front_right"`
	DoorRearLeft   bool `db:"door_rear_left"`
	DoorRearRight  bool `db:"door_rear_right"`
	DoorTrunk      bool `db:"door_trunk"`
}

func toRow(log *models.VehicleActivityLog) *activityLogRow {
	return &activityLogRow{
		VehicleActivityLog: *log,
		DoorFrontLeft:      log.DoorStatus.FrontLeft,
		DoorFrontRight:     log.DoorStatus.FrontRight,
		DoorRearLeft:       log.DoorStatus.RearLeft,
		DoorRearRight:      log.DoorStatus.RearRight,
		DoorTrunk:          log.DoorStatus.Trunk,
	}
}

func (r *activityLogRow) toModel() *models.VehicleActivityLog {
	log := r.VehicleActivityLog
	log.DoorStatus = models.DoorStatus{
		FrontLeft:  r.DoorFrontLeft,
		FrontRight: r.DoorFrontRight,
		RearLeft:   r.DoorRearLeft,
		RearRight:  r.DoorRearRight,
		Trunk:      r.DoorTrunk,
	}
	return &log
}

const activityLogColumns = `id, vehicle_id, action, location, engine_action, handbrake,
		door_front_left, door_front_right, door_rear_left, door_rear_right, door_trunk,
		engine_rpm, odometer, vehicle_speed, acceleration, vehicle_idling, timestamp`

// CreateLog appends one activity snapshot
func (r *PostgresActivityRepo) CreateLog(ctx context.Context, log *models.VehicleActivityLog) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO vehicle_activity_logs (
			id, vehicle_id, action, location, engine_action, handbrake,
			door_front_left, door_front_right, door_rear_left, door_rear_right, door_trunk,
			engine_rpm, odometer, vehicle_speed, acceleration, vehicle_idling, timestamp
		) VALUES (
			:id, :vehicle_id, :action, :location, :engine_action, :handbrake,
			:door_front_left, :door_front_right, :door_rear_left, :door_rear_right, :door_trunk,
			:engine_rpm, :odometer, :vehicle_speed, :acceleration, :vehicle_idling, :timestamp
		)
	`, toRow(log))
	if err != nil {
		return fmt.Errorf("failed to create activity log: %w", err)
	}

	return nil
}

// GetLatestLog returns the newest snapshot for the vehicle
func (r *PostgresActivityRepo) GetLatestLog(ctx context.Context, vehicleID string) (*models.VehicleActivityLog, error) {
	var row activityLogRow
	err := r.db.GetContext(ctx, &row, `
		SELECT `+activityLogColumns+`
		FROM vehicle_activity_logs
		WHERE vehicle_id = $1
		ORDER BY timestamp DESC, id DESC
		LIMIT 1
	`, vehicleID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest activity log: %w", err)
	}

	return row.toModel(), nil
}

// GetLogsByDateRange returns snapshots in [start, end), newest first
func (r *PostgresActivityRepo) GetLogsByDateRange(ctx context.Context, start, end time.Time) ([]*models.VehicleActivityLog, error) {
	var rows []activityLogRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+activityLogColumns+`
		FROM vehicle_activity_logs
		WHERE timestamp >= $1 AND timestamp < $2
		ORDER BY timestamp DESC
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity logs: %w", err)
	}

	logs := make([]*models.VehicleActivityLog, 0, len(rows))
	for i := range rows {
		logs = append(logs, rows[i].toModel())
	}

	return logs, nil
}
