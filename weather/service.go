package weather

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"
)

const maxLocationLen = 256

// sanitizePattern strips anything outside the characters a location query
// legitimately needs before the value reaches the upstream URL.
var sanitizePattern = regexp.MustCompile(`[^a-zA-Z0-9 ,'.-]`)

// Service turns raw hourly telemetry into a compact morning/afternoon/evening
// summary. One deterministic transformation per call; nothing persists
// between invocations, so concurrent callers are independent.
type Service struct {
	fetcher Fetcher
	loc     *time.Location
	now     func() time.Time
}

type ServiceOption func(*Service)

// WithLocation overrides the time zone used to bucket observations.
// Defaults to the process-local zone.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *Service) {
		s.loc = loc
	}
}

// WithClock overrides the "today" reference clock.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(fetcher Fetcher, opts ...ServiceOption) *Service {
	s := &Service{
		fetcher: fetcher,
		loc:     time.Local,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetWeatherSummary is the single entry point the agent layer calls as a
// tool. Input is validated and sanitized before any network traffic; every
// failure mode comes back as a Result with an error kind.
func (s *Service) GetWeatherSummary(ctx context.Context, location string) Result {
	if len(location) > maxLocationLen {
		return failure(location, ErrInvalidInput, "Location input is too long.")
	}
	sanitized := sanitizePattern.ReplaceAllString(location, "")
	if strings.TrimSpace(sanitized) == "" {
		return failure(location, ErrInvalidInput, "Invalid location input.")
	}

	hourly, err := s.fetcher.FetchHourly(ctx, sanitized)
	if err != nil {
		slog.ErrorContext(ctx, "forecast fetch failed", "location", location, "error", err)
		return failure(location, ErrUpstreamFailure, err.Error())
	}
	if len(hourly) == 0 {
		slog.WarnContext(ctx, "no hourly weather data", "location", location)
		return failure(location, ErrNoHourlyData, "No hourly weather data available.")
	}

	today := s.now().In(s.loc)
	periods := make([]*PeriodSummary, 0, len(windows))
	for _, w := range windows {
		periods = append(periods, summarizePeriod(hourly, w, today, s.loc))
	}
	forecast, ok := assemble(periods)
	if !ok {
		slog.WarnContext(ctx, "no forecast data for today", "location", location)
		return failure(location, ErrNoForecastData, "No forecast data available for today.")
	}
	slog.InfoContext(ctx, "assembled forecast", "location", location, "forecast", forecast)
	return success(location, forecast)
}
