package builtin

import (
	"context"
	"encoding/json"
	"testing"

	"dayplanner/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSummarizer struct {
	result weather.Result
	got    string
}

func (s *stubSummarizer) GetWeatherSummary(_ context.Context, location string) weather.Result {
	s.got = location
	return s.result
}

func TestWeatherSummaryToolSuccess(t *testing.T) {
	stub := &stubSummarizer{result: weather.Result{
		Status:   weather.StatusSuccess,
		Location: "Boise",
		Forecast: "Today's forecast - Morning (8am-12pm): Avg 70F, 15% rain chance, partly cloudy.",
	}}
	tool := NewWeatherSummaryTool(stub)
	assert.Equal(t, "get_weather_summary", tool.Name)

	out, err := tool.Handler(context.Background(), `{"location": "Boise"}`)
	require.NoError(t, err)
	assert.Equal(t, "Boise", stub.got)

	var decoded weather.Result
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, stub.result, decoded)
}

func TestWeatherSummaryToolErrorResultStaysData(t *testing.T) {
	stub := &stubSummarizer{result: weather.Result{
		Status:       weather.StatusError,
		Location:     "",
		ErrorKind:    weather.ErrInvalidInput,
		ErrorMessage: "Invalid location input.",
	}}
	tool := NewWeatherSummaryTool(stub)

	// A failed summary is still a successful tool call; the model reads the
	// status out of the payload.
	out, err := tool.Handler(context.Background(), `{"location": ""}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"status":"error"`)
	assert.Contains(t, out, "Invalid location input.")
}

func TestWeatherSummaryToolRejectsBadArgs(t *testing.T) {
	tool := NewWeatherSummaryTool(&stubSummarizer{})
	_, err := tool.Handler(context.Background(), `{"location":`)
	assert.Error(t, err)
}
