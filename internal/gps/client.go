package gps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"fuel-dispatch-monitor/internal/config"
	"fuel-dispatch-monitor/internal/logger"

	"go.uber.org/zap"
)

// RequestError is returned when the provider answers with a non-2xx status.
type RequestError struct {
	StatusCode int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("GPS API request failed with status %d", e.StatusCode)
}

// ShapeError is returned when the provider body is not the expected
// top-level array.
type ShapeError struct{}

func (e *ShapeError) Error() string {
	return "unexpected GPS API response shape"
}

// RecordError pairs a skipped provider record with the reason it failed
// validation.
type RecordError struct {
	Index int    `json:"index"`
	IMEI  string `json:"imei,omitempty"`
	Error string `json:"error"`
}

// FetchResult is a partial-success fetch: valid records plus the list of
// records the validator skipped. A skipped record never fails the batch.
type FetchResult struct {
	Vehicles []Vehicle     `json:"vehicles"`
	Skipped  []RecordError `json:"skipped,omitempty"`
}

// Client fetches live vehicle telemetry from the tracking provider.
type Client struct {
	httpClient *http.Client
	requestURL string
}

func NewClient(cfg *config.GPSConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		requestURL: cfg.RequestURL(),
	}
}

// FetchVehicles issues one GET to the provider and validates each record.
// Non-2xx responses and non-array bodies fail the whole call; individual
// bad records are reported in the result's Skipped list.
func (c *Client) FetchVehicles(ctx context.Context) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build GPS request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GPS request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read GPS response: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &ShapeError{}
	}

	result := &FetchResult{Vehicles: make([]Vehicle, 0, len(raw))}
	for i, record := range raw {
		var vehicle Vehicle
		if err := json.Unmarshal(record, &vehicle); err != nil {
			result.Skipped = append(result.Skipped, RecordError{Index: i, Error: err.Error()})
			continue
		}
		if err := ValidateVehicle(&vehicle); err != nil {
			result.Skipped = append(result.Skipped, RecordError{
				Index: i,
				IMEI:  vehicle.IMEI,
				Error: err.Error(),
			})
			continue
		}
		result.Vehicles = append(result.Vehicles, vehicle)
	}

	if len(result.Skipped) > 0 {
		logger.Warn("GPS fetch skipped invalid records",
			zap.Int("valid", len(result.Vehicles)),
			zap.Int("skipped", len(result.Skipped)),
		)
	}

	return result, nil
}
