package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/arexperts/fleettrack/internal/pkg/logger"
	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/services/telemetry"
)

const (
	addressNotFound    = "Address not found"
	addressUnavailable = "Unable to fetch address"
)

// GeocodeGW resolves coordinates to street addresses
type GeocodeGW struct {
	cfg        *models.Config
	httpClient *http.Client
}

// NewGeocodeGW creates a new geocoding gateway
func NewGeocodeGW(cfg *models.Config) telemetry.GeocodeGW {
	return &GeocodeGW{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// geocodeResponse is the provider's reverse-geocoding envelope
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
}

// ReverseGeocode resolves a coordinate to an address. Failures degrade to a
// placeholder string and a nil error so polling loops keep going.
func (g *GeocodeGW) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	endpoint := fmt.Sprintf("%s/maps/api/geocode/json?latlng=%f,%f&key=%s",
		g.cfg.Geocode.BaseURL, lat, lon, g.cfg.Geocode.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return addressUnavailable, nil
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		logger.Warn("Geocoding request failed", logger.Err(err))
		return addressUnavailable, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Geocoding provider returned error status",
			logger.Int("status", resp.StatusCode))
		return addressUnavailable, nil
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Warn("Failed to decode geocoding response", logger.Err(err))
		return addressUnavailable, nil
	}

	switch payload.Status {
	case "OK":
		if len(payload.Results) == 0 {
			return addressNotFound, nil
		}
		return payload.Results[0].FormattedAddress, nil
	case "ZERO_RESULTS":
		return addressNotFound, nil
	default:
		logger.Warn("Geocoding provider returned error status",
			logger.String("status", payload.Status))
		return addressUnavailable, nil
	}
}
