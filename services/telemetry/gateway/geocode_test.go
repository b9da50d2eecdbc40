package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arexperts/fleettrack/internal/pkg/models"
)

func geocodeConfig(baseURL string) *models.Config {
	cfg := &models.Config{}
	cfg.Geocode.BaseURL = baseURL
	cfg.Geocode.APIKey = "test-key"
	return cfg
}

func TestReverseGeocode_ReturnsFirstAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"formatted_address": "1 Main Street, Springfield"},
				{"formatted_address": "Springfield"}
			]
		}`))
	}))
	defer server.Close()

	gw := NewGeocodeGW(geocodeConfig(server.URL))
	address, err := gw.ReverseGeocode(context.Background(), 51.5, -0.1)
	require.NoError(t, err)
	assert.Equal(t, "1 Main Street, Springfield", address)
}

func TestReverseGeocode_ZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	gw := NewGeocodeGW(geocodeConfig(server.URL))
	address, err := gw.ReverseGeocode(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Address not found", address)
}

func TestReverseGeocode_ProviderErrorDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gw := NewGeocodeGW(geocodeConfig(server.URL))
	address, err := gw.ReverseGeocode(context.Background(), 51.5, -0.1)
	require.NoError(t, err)
	assert.Equal(t, "Unable to fetch address", address)
}

func TestReverseGeocode_DeniedStatusDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "results": []}`))
	}))
	defer server.Close()

	gw := NewGeocodeGW(geocodeConfig(server.URL))
	address, err := gw.ReverseGeocode(context.Background(), 51.5, -0.1)
	require.NoError(t, err)
	assert.Equal(t, "Unable to fetch address", address)
}
