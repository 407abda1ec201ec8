package agent

import (
	"context"
	"testing"

	"github.com/openai/openai-go"
	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseKeepsSharedPoolAlive(t *testing.T) {
	pool, err := ants.NewPool(2)
	require.NoError(t, err)
	defer pool.Release()

	a, err := New(DefaultConfig(), WithToolPool(pool))
	require.NoError(t, err)
	b, err := New(DefaultConfig(), WithToolPool(pool))
	require.NoError(t, err)

	a.Close()
	assert.False(t, pool.IsClosed(), "closing one agent must not tear down the shared pool")
	b.Close()
	assert.False(t, pool.IsClosed())
}

func TestCloseReleasesOwnedPool(t *testing.T) {
	a, err := New(DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, a.pool)

	a.Close()
	assert.True(t, a.pool.IsClosed())
}

func TestExecToolCallsKeepsCallOrder(t *testing.T) {
	a, err := New(DefaultConfig())
	require.NoError(t, err)
	defer a.Close()

	a.RegisterToolFunc("echo", func(_ context.Context, args string) (string, error) {
		return args, nil
	})

	calls := []openai.ChatCompletionMessageToolCall{
		{ID: "call_1", Function: openai.ChatCompletionMessageToolCallFunction{Name: "echo", Arguments: "first"}},
		{ID: "call_2", Function: openai.ChatCompletionMessageToolCallFunction{Name: "echo", Arguments: "second"}},
		{ID: "call_3", Function: openai.ChatCompletionMessageToolCallFunction{Name: "echo", Arguments: "third"}},
		{ID: "call_4", Function: openai.ChatCompletionMessageToolCallFunction{Name: "echo", Arguments: "fourth"}},
		{ID: "call_5", Function: openai.ChatCompletionMessageToolCallFunction{Name: "echo", Arguments: "fifth"}},
	}
	results := a.execToolCalls(context.Background(), calls)
	assert.Equal(t, []string{"first", "second", "third", "fourth", "fifth"}, results)
}

func TestExecToolCallsUnknownTool(t *testing.T) {
	a, err := New(DefaultConfig())
	require.NoError(t, err)
	defer a.Close()

	calls := []openai.ChatCompletionMessageToolCall{
		{ID: "call_1", Function: openai.ChatCompletionMessageToolCallFunction{Name: "missing", Arguments: "{}"}},
	}
	results := a.execToolCalls(context.Background(), calls)
	require.Len(t, results, 1)
	assert.Contains(t, results[0], "not registered")
}
