package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"dayplanner/agent/tools"
)

// Invoker is the calling surface a supervisor needs from a sub-agent.
type Invoker interface {
	Invoke(ctx context.Context, userQuery string) (string, error)
}

// AgentTool exposes a sub-agent as a callable tool so a supervisor agent can
// delegate a whole query to it and fold the answer back into its own turn.
func AgentTool(name, description string, sub Invoker) tools.Tool {
	return tools.New(
		name,
		func(ctx context.Context, args string) (string, error) {
			var input struct {
				Query string `json:"query"`
			}
			if err := json.Unmarshal([]byte(args), &input); err != nil {
				return "", fmt.Errorf("parse args: %w", err)
			}
			if strings.TrimSpace(input.Query) == "" {
				return "", fmt.Errorf("query is required")
			}
			return sub.Invoke(ctx, input.Query)
		},
		tools.WithDescription(description),
		tools.WithParameters(tools.ObjectSchema(map[string]any{
			"query": tools.StringProperty("The full user request to delegate to this agent."),
		}, "query")),
	)
}
