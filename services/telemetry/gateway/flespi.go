package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/arexperts/fleettrack/internal/pkg/logger"
	"github.com/arexperts/fleettrack/internal/pkg/models"
	"github.com/arexperts/fleettrack/internal/pkg/retry"
	"github.com/arexperts/fleettrack/services/telemetry"
)

// TelemetryGW talks to the flespi-shaped device-telemetry provider
type TelemetryGW struct {
	cfg        *models.Config
	httpClient *http.Client
	retrier    *retry.Retrier
}

// NewTelemetryGW creates a new telemetry gateway
func NewTelemetryGW(cfg *models.Config) telemetry.TelemetryGW {
	maxRetries := cfg.Telemetry.MaxRetries - 1
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &TelemetryGW{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retrier: retry.New(retry.Config{
			MaxRetries:    maxRetries,
			BaseDelay:     1 * time.Second,
			MaxDelay:      60 * time.Second,
			Multiplier:    2.0,
			Jitter:        true,
			RetryableFunc: isRetryableFetchError,
		}),
	}
}

// isRetryableFetchError permits retries for rate limiting, server errors and
// network failures. Auth rejections and malformed payloads stop immediately.
func isRetryableFetchError(err error) bool {
	return !errors.Is(err, telemetry.ErrUnauthorized) && !errors.Is(err, telemetry.ErrMalformedResponse)
}

// messagesResponse is the provider's channel-messages envelope
type messagesResponse struct {
	Result *[]models.TelemetrySample `json:"result"`
}

// FetchLatestSample fetches the device's messages and returns the newest one
func (g *TelemetryGW) FetchLatestSample(ctx context.Context, ident string) (models.TelemetrySample, error) {
	endpoint := fmt.Sprintf("%s/gw/channels/%s/messages?data.ident=%s",
		g.cfg.Telemetry.BaseURL, g.cfg.Telemetry.ChannelID, url.QueryEscape(ident))

	var sample models.TelemetrySample
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		var fetchErr error
		sample, fetchErr = g.fetchOnce(ctx, endpoint)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}

	return sample, nil
}

func (g *TelemetryGW) fetchOnce(ctx context.Context, endpoint string) (models.TelemetrySample, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build telemetry request: %w", err)
	}
	req.Header.Set("Authorization", "FlespiToken "+g.cfg.Telemetry.Token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("telemetry request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		logger.Error("Telemetry provider rejected token",
			logger.Int("status", resp.StatusCode))
		return nil, telemetry.ErrUnauthorized

	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &telemetry.RateLimitError{Delay: parseRetryAfter(resp.Header.Get("Retry-After"))}

	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("telemetry provider returned status %d: %s", resp.StatusCode, body)
	}

	var envelope messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", telemetry.ErrMalformedResponse, err)
	}
	if envelope.Result == nil {
		return nil, telemetry.ErrMalformedResponse
	}

	messages := *envelope.Result
	if len(messages) == 0 {
		return nil, nil
	}

	return messages[len(messages)-1], nil
}

// parseRetryAfter reads a Retry-After header in seconds; zero means absent
// or unparseable, letting the retrier fall back to its own backoff.
func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// SendCommand forwards a device command. Issued exactly once: the provider
// offers no idempotency key, so a failed command is surfaced, not retried.
func (g *TelemetryGW) SendCommand(ctx context.Context, deviceID, command string, payload *models.DeviceCommand) error {
	endpoint := fmt.Sprintf("%s/gw/devices/%s/settings/%s",
		g.cfg.Telemetry.BaseURL, url.PathEscape(deviceID), url.PathEscape(command))

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal device command: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build command request: %w", err)
	}
	req.Header.Set("Authorization", "FlespiToken "+g.cfg.Telemetry.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("command request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return telemetry.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("command %s returned status %d: %s", command, resp.StatusCode, respBody)
	}

	logger.Info("Device command sent",
		logger.String("device_id", deviceID),
		logger.String("command", command))

	return nil
}
