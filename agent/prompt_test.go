package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptWrapperSkipsBlankSegments(t *testing.T) {
	w := DefaultPromptWrapper()
	w.AddSystemPrompt("   ")
	w.AddUserPrompt("")
	w.AddMemory("\t")
	w.AddToolUsage("")

	assert.Empty(t, w.systemPrompts)
	assert.Empty(t, w.userPrompts)
	assert.Empty(t, w.Memory)
	assert.Empty(t, w.ToolUsage)
}

func TestWrapMessages(t *testing.T) {
	w := DefaultPromptWrapper()
	w.AddSystemPrompt("be helpful")
	w.AddUserPrompt("plan my day")
	msgs := w.WrapMessages("day_planner", "plans days")
	assert.Len(t, msgs, 2)

	systemOnly := DefaultPromptWrapper()
	systemOnly.AddSystemPrompt("be helpful")
	assert.Len(t, systemOnly.WrapMessages("", ""), 1)

	empty := DefaultPromptWrapper()
	assert.Empty(t, empty.WrapMessages("", ""))
}

func TestSystemMessageComposition(t *testing.T) {
	w := DefaultPromptWrapper()
	w.AddSystemPrompt("Plan days around the weather.")
	w.AddToolUsage("Call get_weather_summary before answering.")
	w.AddMemory("The user asked about Boise.")

	system := w.systemMessage("day_planner", "Helps users plan their day.")
	assert.True(t, strings.HasPrefix(system, "You are day_planner. Helps users plan their day."))
	assert.Contains(t, system, "Plan days around the weather.")
	assert.Contains(t, system, "Tool usage:\nCall get_weather_summary before answering.")
	// Session memory comes after the instructions.
	assert.True(t, strings.HasSuffix(system, "Earlier answers from this session:\nThe user asked about Boise."))
}

func TestSystemMessageIdentityLine(t *testing.T) {
	w := DefaultPromptWrapper()
	assert.Equal(t, "You are researcher.", w.systemMessage("researcher", ""))
	assert.Equal(t, "Answers questions.", w.systemMessage("", "Answers questions."))
	assert.Empty(t, w.systemMessage("", ""))
}
