package weather

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitedFetcherPassesThrough(t *testing.T) {
	fetcher := &fakeFetcher{obs: []HourlyObservation{obsAt(8, 70, 0, 0)}}
	limited := NewRateLimitedFetcher(fetcher, 1, 1)

	obs, err := limited.FetchHourly(context.Background(), "Boise")
	require.NoError(t, err)
	assert.Len(t, obs, 1)
	assert.Equal(t, 1, fetcher.calls)
}

func TestRateLimitedFetcherHonorsCancellation(t *testing.T) {
	fetcher := &fakeFetcher{}
	limited := NewRateLimitedFetcher(fetcher, 0.001, 1)

	// Consume the single burst token.
	_, err := limited.FetchHourly(context.Background(), "Boise")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = limited.FetchHourly(ctx, "Boise")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit wait canceled")
	assert.Equal(t, 1, fetcher.calls)
}
