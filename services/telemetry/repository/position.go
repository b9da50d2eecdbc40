package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/arexperts/fleettrack/internal/pkg/constants"
	"github.com/arexperts/fleettrack/internal/pkg/database"
	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/internal/utils"
	"github.com/arexperts/fleettrack/services/telemetry"
)

// positionTTL bounds how long a stale position keeps feeding the classifier
// after a device stops reporting.
const positionTTL = 10 * time.Minute

// RedisPositionRepo implements the PositionRepo interface
type RedisPositionRepo struct {
	client *database.RedisClient
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(client *database.RedisClient) telemetry.PositionRepo {
	return &RedisPositionRepo{
		client: client,
	}
}

// SaveLastPosition caches the device's latest position with a geohash for
// proximity lookups
func (r *RedisPositionRepo) SaveLastPosition(ctx context.Context, ident string, pos models.Position) error {
	key := fmt.Sprintf(constants.KeyVehicleTelemetry, ident)

	err := r.client.HSet(ctx, key, map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(pos.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(pos.Longitude, 'f', -1, 64),
		constants.FieldSpeed:     strconv.FormatFloat(pos.SpeedKph, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(pos.Timestamp.Unix(), 10),
		constants.FieldGeohash:   utils.EncodeGeohashWithPrecision(pos.Latitude, pos.Longitude, 9),
	})
	if err != nil {
		return fmt.Errorf("failed to cache position: %w", err)
	}

	if err := r.client.Expire(ctx, key, positionTTL); err != nil {
		return fmt.Errorf("failed to set position TTL: %w", err)
	}

	return nil
}

// GetLastPosition reads the cached position; nil when the device has not
// reported or the entry expired
func (r *RedisPositionRepo) GetLastPosition(ctx context.Context, ident string) (*models.Position, error) {
	key := fmt.Sprintf(constants.KeyVehicleTelemetry, ident)

	vals, err := r.client.HMGet(ctx, key,
		constants.FieldLatitude, constants.FieldLongitude,
		constants.FieldSpeed, constants.FieldTimestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to read cached position: %w", err)
	}

	if vals[0] == "" || vals[1] == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(vals[0], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt cached latitude %q: %w", vals[0], err)
	}
	lon, err := strconv.ParseFloat(vals[1], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt cached longitude %q: %w", vals[1], err)
	}

	pos := &models.Position{Latitude: lat, Longitude: lon}
	if vals[2] != "" {
		if speed, err := strconv.ParseFloat(vals[2], 64); err == nil {
			pos.SpeedKph = speed
		}
	}
	if vals[3] != "" {
		if unix, err := strconv.ParseInt(vals[3], 10, 64); err == nil {
			pos.Timestamp = time.Unix(unix, 0)
		}
	}

	return pos, nil
}
