package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInvoker struct {
	got   string
	reply string
	err   error
}

func (s *stubInvoker) Invoke(_ context.Context, userQuery string) (string, error) {
	s.got = userQuery
	return s.reply, s.err
}

func TestAgentToolDelegates(t *testing.T) {
	stub := &stubInvoker{reply: "delegated answer"}
	tool := AgentTool("day_planner", "plans the day", stub)
	assert.Equal(t, "day_planner", tool.Name)
	assert.Equal(t, "plans the day", tool.Description)

	out, err := tool.Handler(context.Background(), `{"query": "plan my day in Boise"}`)
	require.NoError(t, err)
	assert.Equal(t, "delegated answer", out)
	assert.Equal(t, "plan my day in Boise", stub.got)
}

func TestAgentToolRequiresQuery(t *testing.T) {
	tool := AgentTool("day_planner", "plans the day", &stubInvoker{})

	_, err := tool.Handler(context.Background(), `{"query": "  "}`)
	assert.Error(t, err)

	_, err = tool.Handler(context.Background(), `{"query":`)
	assert.Error(t, err)
}
