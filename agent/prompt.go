package agent

import (
	"fmt"
	"strings"

	"github.com/openai/openai-go"
)

// PromptWrapper stores prompt segments for system and user messages.
type PromptWrapper struct {
	Memory        []string
	ToolUsage     []string
	systemPrompts []string
	userPrompts   []string
}

func DefaultPromptWrapper() PromptWrapper {
	return PromptWrapper{}
}

// AddSystemPrompt appends an extra system-role prompt segment.
func (w *PromptWrapper) AddSystemPrompt(prompt string) {
	if strings.TrimSpace(prompt) == "" {
		return
	}
	w.systemPrompts = append(w.systemPrompts, prompt)
}

// AddUserPrompt appends an extra user-role prompt segment.
func (w *PromptWrapper) AddUserPrompt(prompt string) {
	if strings.TrimSpace(prompt) == "" {
		return
	}
	w.userPrompts = append(w.userPrompts, prompt)
}

// AddMemory appends a memory segment for the system prompt.
func (w *PromptWrapper) AddMemory(memory string) {
	if strings.TrimSpace(memory) == "" {
		return
	}
	w.Memory = append(w.Memory, memory)
}

// AddToolUsage appends a tool-usage segment for the system prompt.
func (w *PromptWrapper) AddToolUsage(toolUsage string) {
	if strings.TrimSpace(toolUsage) == "" {
		return
	}
	w.ToolUsage = append(w.ToolUsage, toolUsage)
}

// WrapMessages builds the chat messages for one invocation: a system message
// describing who the agent is and how it works, then the user query.
func (w *PromptWrapper) WrapMessages(name, desc string) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if system := w.systemMessage(name, desc); system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	if user := w.userMessage(); user != "" {
		messages = append(messages, openai.UserMessage(user))
	}
	return messages
}

// systemMessage composes the identity line, the instruction segments, the
// tool-usage guidance and the session memory, in that order. Memory goes
// last so fresh instructions are never buried under old replies.
func (w *PromptWrapper) systemMessage(name, desc string) string {
	parts := make([]string, 0, len(w.systemPrompts)+3)
	switch {
	case name != "" && desc != "":
		parts = append(parts, fmt.Sprintf("You are %s. %s", name, desc))
	case name != "":
		parts = append(parts, fmt.Sprintf("You are %s.", name))
	case desc != "":
		parts = append(parts, desc)
	}
	parts = append(parts, w.systemPrompts...)
	if len(w.ToolUsage) > 0 {
		parts = append(parts, "Tool usage:\n"+strings.Join(w.ToolUsage, "\n"))
	}
	if len(w.Memory) > 0 {
		parts = append(parts, "Earlier answers from this session:\n"+strings.Join(w.Memory, "\n"))
	}
	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}

func (w *PromptWrapper) userMessage() string {
	return strings.TrimSpace(strings.Join(w.userPrompts, "\n\n"))
}
