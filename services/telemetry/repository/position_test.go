package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arexperts/fleettrack/internal/pkg/constants"
	"github.com/arexperts/fleettrack/internal/pkg/database"
	"github.com/arexperts/fleettrack/internal/pkg/models"
)

func newTestRepo(t *testing.T) (*RedisPositionRepo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &RedisPositionRepo{
		client: &database.RedisClient{Client: client},
	}, mr
}

func TestSaveAndGetLastPosition(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	pos := models.Position{Latitude: 51.5, Longitude: -0.1, SpeedKph: 42.5, Timestamp: ts}

	require.NoError(t, repo.SaveLastPosition(ctx, "veh-1", pos))

	got, err := repo.GetLastPosition(ctx, "veh-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 51.5, got.Latitude)
	assert.Equal(t, -0.1, got.Longitude)
	assert.Equal(t, 42.5, got.SpeedKph)
	assert.True(t, got.Timestamp.Equal(ts))
}

func TestSaveLastPosition_WritesGeohash(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	pos := models.Position{Latitude: -6.2088, Longitude: 106.8456, Timestamp: time.Now()}
	require.NoError(t, repo.SaveLastPosition(ctx, "veh-1", pos))

	key := fmt.Sprintf(constants.KeyVehicleTelemetry, "veh-1")
	hash := mr.HGet(key, constants.FieldGeohash)
	assert.Len(t, hash, 9)
}

func TestSaveLastPosition_SetsTTL(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveLastPosition(ctx, "veh-1", models.Position{
		Latitude: 51.5, Longitude: -0.1, Timestamp: time.Now(),
	}))

	key := fmt.Sprintf(constants.KeyVehicleTelemetry, "veh-1")
	assert.Greater(t, mr.TTL(key), time.Duration(0))

	// After expiry the position is gone and the classifier skips the vehicle
	mr.FastForward(positionTTL + time.Second)
	got, err := repo.GetLastPosition(ctx, "veh-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetLastPosition_UnknownDevice(t *testing.T) {
	repo, _ := newTestRepo(t)

	got, err := repo.GetLastPosition(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveLastPosition_OverwritesPrevious(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveLastPosition(ctx, "veh-1", models.Position{
		Latitude: 51.5, Longitude: -0.1, SpeedKph: 10, Timestamp: time.Now(),
	}))
	require.NoError(t, repo.SaveLastPosition(ctx, "veh-1", models.Position{
		Latitude: 51.6, Longitude: -0.2, SpeedKph: 20, Timestamp: time.Now(),
	}))

	got, err := repo.GetLastPosition(ctx, "veh-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 51.6, got.Latitude)
	assert.Equal(t, 20.0, got.SpeedKph)
}
