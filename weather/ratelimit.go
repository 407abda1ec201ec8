package weather

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedFetcher wraps a Fetcher with a token-bucket limiter so a chatty
// agent can't burn through the upstream quota.
type RateLimitedFetcher struct {
	fetcher Fetcher
	limiter *rate.Limiter
}

var _ Fetcher = (*RateLimitedFetcher)(nil)

// NewRateLimitedFetcher creates a rate limited fetcher.
// rps is the maximum requests per second allowed (can be fractional for less
// than 1 request per second); burst is the maximum burst size allowed.
func NewRateLimitedFetcher(fetcher Fetcher, rps float64, burst int) *RateLimitedFetcher {
	return &RateLimitedFetcher{
		fetcher: fetcher,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// FetchHourly fetches hourly data, respecting rate limits.
func (r *RateLimitedFetcher) FetchHourly(ctx context.Context, location string) ([]HourlyObservation, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.fetcher.FetchHourly(ctx, location)
}
