package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

const earthRadiusMeters = 6371000.0

// CalculateDistance computes the great-circle distance in meters between
// two coordinates using the haversine formula.
func CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// IsWithinRadius reports whether the point lies inside or exactly on the
// circle of radiusMeters around the center.
func IsWithinRadius(centerLat, centerLon, pointLat, pointLon, radiusMeters float64) bool {
	return CalculateDistance(centerLat, centerLon, pointLat, pointLon) <= radiusMeters
}

// EncodeGeohash returns the geohash of the coordinate at standard precision.
func EncodeGeohash(lat, lon float64) string {
	return geohash.Encode(lat, lon)
}

// EncodeGeohashWithPrecision returns the geohash truncated to the given
// number of characters.
func EncodeGeohashWithPrecision(lat, lon float64, precision uint) string {
	return geohash.EncodeWithPrecision(lat, lon, precision)
}
