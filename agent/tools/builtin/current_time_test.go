package builtin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentTimeTool(t *testing.T) {
	tool := NewCurrentTimeTool()

	out, err := tool.Handler(context.Background(), `{"timezone": "UTC"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "UTC")

	_, err = tool.Handler(context.Background(), `{"timezone": ""}`)
	assert.Error(t, err)

	_, err = tool.Handler(context.Background(), `{"timezone": "Not/AZone"}`)
	assert.Error(t, err)
}
