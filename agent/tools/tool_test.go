package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesOptions(t *testing.T) {
	handler := func(ctx context.Context, args string) (string, error) { return "ok", nil }
	params := ObjectSchema(map[string]any{"q": StringProperty("query")}, "q")

	tool := New("echo", handler, WithDescription("echoes"), WithParameters(params))
	assert.Equal(t, "echo", tool.Name)
	assert.Equal(t, "echoes", tool.Description)
	assert.Equal(t, params, tool.Parameters)

	out, err := tool.Handler(context.Background(), "{}")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

func TestObjectSchema(t *testing.T) {
	schema := ObjectSchema(map[string]any{
		"name":  StringProperty("a name"),
		"count": IntProperty("a count"),
		"ratio": NumberProperty(""),
	}, "name")

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []string{"name"}, schema["required"])

	props := schema["properties"].(map[string]any)
	assert.Equal(t, "string", props["name"].(map[string]any)["type"])
	assert.Equal(t, "integer", props["count"].(map[string]any)["type"])
	ratio := props["ratio"].(map[string]any)
	assert.Equal(t, "number", ratio["type"])
	_, hasDesc := ratio["description"]
	assert.False(t, hasDesc)

	bare := ObjectSchema(map[string]any{})
	_, hasRequired := bare["required"]
	assert.False(t, hasRequired)
}
