package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// HourlyObservation is one upstream forecast record converted to typed
// values. A metric absent upstream is zero; the observation still counts
// toward window averages.
type HourlyObservation struct {
	Time                     time.Time
	Temperature              float64
	PrecipitationProbability float64
	CloudCover               float64
}

// Fetcher retrieves the hourly forecast series for a location.
type Fetcher interface {
	FetchHourly(ctx context.Context, location string) ([]HourlyObservation, error)
}

// Client fetches hourly forecasts from Tomorrow.io. One GET per call, no
// retries; retry policy belongs to the caller.
type Client struct {
	cfg    Config
	client *http.Client
}

var _ Fetcher = (*Client)(nil)

// NewClient validates the credential up front and fails construction on a
// malformed key.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("weather client config: %w", err)
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// FetchHourly issues the forecast request and parses timelines.hourly.
// A response body without that path yields an empty slice, not an error;
// absence of data is handled uniformly downstream.
func (c *Client) FetchHourly(ctx context.Context, location string) ([]HourlyObservation, error) {
	params := url.Values{}
	params.Set("location", location)
	params.Set("timesteps", "1h")
	params.Set("units", "imperial")
	params.Set("apikey", c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	slog.InfoContext(ctx, "requesting weather forecast", "location", location)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request: %w", redactKey(err, c.cfg.APIKey))
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("forecast http status: %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("forecast response is not valid JSON")
	}
	return parseHourly(body), nil
}

// parseHourly converts the raw response body into typed observations. Shape
// problems are contained here: a missing or non-array timelines.hourly comes
// back empty, and an entry with an unparseable timestamp is dropped rather
// than failing the batch.
func parseHourly(body []byte) []HourlyObservation {
	hours := gjson.GetBytes(body, "timelines.hourly")
	if !hours.IsArray() {
		return nil
	}
	entries := hours.Array()
	out := make([]HourlyObservation, 0, len(entries))
	for _, entry := range entries {
		ts, err := time.Parse(time.RFC3339, entry.Get("time").String())
		if err != nil {
			continue
		}
		values := entry.Get("values")
		out = append(out, HourlyObservation{
			Time:                     ts,
			Temperature:              values.Get("temperature").Float(),
			PrecipitationProbability: values.Get("precipitationProbability").Float(),
			CloudCover:               values.Get("cloudCover").Float(),
		})
	}
	return out
}

// redactKey strips the API credential from transport error text. url.Error
// includes the full request URL, query string and all, and the key must not
// leak into messages that reach a user or a model.
func redactKey(err error, key string) error {
	msg := err.Error()
	if key != "" && strings.Contains(msg, key) {
		return errors.New(strings.ReplaceAll(msg, key, "[REDACTED]"))
	}
	return err
}
