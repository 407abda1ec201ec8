package builtin

import (
	"context"
	"encoding/json"
	"fmt"

	"dayplanner/agent/tools"
	"dayplanner/weather"
)

// WeatherSummarizer is what this tool needs from the weather service.
type WeatherSummarizer interface {
	GetWeatherSummary(ctx context.Context, location string) weather.Result
}

// NewWeatherSummaryTool exposes the forecast summarizer to the model. The
// service never fails with a raw error; success and failure both come back
// as a JSON document the model can read the status and message out of.
func NewWeatherSummaryTool(svc WeatherSummarizer) tools.Tool {
	return tools.New(
		"get_weather_summary",
		func(ctx context.Context, args string) (string, error) {
			var input struct {
				Location string `json:"location"`
			}
			if err := json.Unmarshal([]byte(args), &input); err != nil {
				return "", fmt.Errorf("parse args: %w", err)
			}
			result := svc.GetWeatherSummary(ctx, input.Location)
			payload, err := json.Marshal(result)
			if err != nil {
				return "", fmt.Errorf("marshal result: %w", err)
			}
			return string(payload), nil
		},
		tools.WithDescription("Get today's weather summary for a location, bucketed into morning, afternoon and evening."),
		tools.WithParameters(tools.ObjectSchema(map[string]any{
			"location": tools.StringProperty("City name, 'lat,long' pair, or zip code."),
		}, "location")),
	)
}
