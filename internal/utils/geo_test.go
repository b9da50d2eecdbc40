package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name      string
		lat1      float64
		lon1      float64
		lat2      float64
		lon2      float64
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			lat1:      51.5,
			lon1:      -0.1,
			lat2:      51.5,
			lon2:      -0.1,
			expected:  0,
			tolerance: 0.001,
		},
		{
			name:      "Jakarta to Bandung",
			lat1:      -6.2088,
			lon1:      106.8456,
			lat2:      -6.9175,
			lon2:      107.6191,
			expected:  117000,
			tolerance: 2000,
		},
		{
			name:      "Short distance within city",
			lat1:      51.5000,
			lon1:      -0.1000,
			lat2:      51.5009,
			lon2:      -0.1000,
			expected:  100.1,
			tolerance: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDistance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expected, got, tt.tolerance)
		})
	}
}

func TestIsWithinRadius(t *testing.T) {
	centerLat, centerLon := 51.5, -0.1

	t.Run("Point inside radius", func(t *testing.T) {
		assert.True(t, IsWithinRadius(centerLat, centerLon, 51.5005, -0.1, 100))
	})

	t.Run("Point outside radius", func(t *testing.T) {
		assert.False(t, IsWithinRadius(centerLat, centerLon, 51.51, -0.1, 100))
	})

	t.Run("Point exactly at center counts as inside", func(t *testing.T) {
		assert.True(t, IsWithinRadius(centerLat, centerLon, centerLat, centerLon, 100))
	})
}

func TestEncodeGeohash(t *testing.T) {
	hash := EncodeGeohashWithPrecision(-6.2088, 106.8456, 9)
	assert.Len(t, hash, 9)

	nearby := EncodeGeohashWithPrecision(-6.2089, 106.8457, 5)
	assert.Equal(t, hash[:5], nearby)
}
