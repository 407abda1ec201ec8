package builtin

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"dayplanner/agent/tools"
)

func NewCurrentTimeTool() tools.Tool {
	return tools.New(
		"get_current_time",
		func(ctx context.Context, args string) (string, error) {
			var input struct {
				Timezone string `json:"timezone"`
			}
			if err := json.Unmarshal([]byte(args), &input); err != nil {
				return "", fmt.Errorf("parse args: %w", err)
			}
			if strings.TrimSpace(input.Timezone) == "" {
				return "", fmt.Errorf("timezone is required")
			}
			loc, err := time.LoadLocation(input.Timezone)
			if err != nil {
				return "", fmt.Errorf("load location: %w", err)
			}
			return time.Now().In(loc).Format("Mon Jan 2 15:04:05 MST 2006"), nil
		},
		tools.WithDescription("Get the current local time for a specified time zone."),
		tools.WithParameters(tools.ObjectSchema(map[string]any{
			"timezone": tools.StringProperty("A valid IANA time zone (e.g., 'America/New_York', 'Europe/London')."),
		}, "timezone")),
	)
}
