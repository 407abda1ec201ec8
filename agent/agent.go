package agent

import (
	"context"
	"fmt"
	"log"
	"sync"

	"dayplanner/agent/tools"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/panjf2000/ants/v2"
)

const (
	DefaultName         string  = "base_agent"
	DefaultDescription  string  = "General-purpose assistant agent"
	DefaultSystemPrompt string  = "You are a helpful assistant. Use the available tools when they can ground your answer in real data."
	DefaultMaxTurns     int     = 5
	DefaultTemperature  float32 = 0.5

	// defaultToolWorkers bounds how many tool calls from one assistant turn
	// run at once.
	defaultToolWorkers = 4
)

// Agent runs an openai-go chat-completion loop with tool calling. Tool calls
// issued in a single assistant turn execute concurrently on a shared worker
// pool; results are appended back in call order.
type Agent struct {
	Name          string
	Description   string
	client        openai.Client
	model         string
	tools         map[string]tools.Tool
	apiTools      []openai.ChatCompletionToolParam
	promptWrapper PromptWrapper
	systemPrompt  string
	pool          *ants.Pool
	ownsPool      bool
	MaxTurns      int
	Temperature   float32
	AllowTools    bool
}

type Option func(*Agent)

// WithToolPool shares an externally managed worker pool between agents.
// Close never releases a shared pool; its owner does.
func WithToolPool(pool *ants.Pool) Option {
	return func(a *Agent) {
		a.pool = pool
		a.ownsPool = false
	}
}

func New(cfg Config, opts ...Option) (*Agent, error) {
	options := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		options = append(options, option.WithBaseURL(cfg.BaseURL))
	}
	a := &Agent{
		Name:          DefaultName,
		Description:   DefaultDescription,
		client:        openai.NewClient(options...),
		model:         cfg.Model,
		tools:         map[string]tools.Tool{},
		apiTools:      []openai.ChatCompletionToolParam{},
		promptWrapper: DefaultPromptWrapper(),
		systemPrompt:  DefaultSystemPrompt,
		MaxTurns:      cfg.MaxTurns,
		Temperature:   cfg.Temperature,
		AllowTools:    cfg.AllowTools,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.pool == nil {
		pool, err := ants.NewPool(defaultToolWorkers)
		if err != nil {
			return nil, fmt.Errorf("tool worker pool: %w", err)
		}
		a.pool = pool
		a.ownsPool = true
	}
	return a, nil
}

// Close releases the tool worker pool if this agent owns it.
func (a *Agent) Close() {
	if a.ownsPool && a.pool != nil {
		a.pool.Release()
	}
}

func (a *Agent) SetName(name string) {
	a.Name = name
}

func (a *Agent) SetDescription(description string) {
	a.Description = description
}

func (a *Agent) SetSystemPrompt(systemPrompt string) {
	a.systemPrompt = systemPrompt
}

func (a *Agent) SetPromptWrapper(wrapper PromptWrapper) {
	a.promptWrapper = wrapper
}

func (a *Agent) AddSystemPrompt(prompt string) {
	a.promptWrapper.AddSystemPrompt(prompt)
}

func (a *Agent) AddUserPrompt(prompt string) {
	a.promptWrapper.AddUserPrompt(prompt)
}

func (a *Agent) AddMemory(memory string) {
	a.promptWrapper.AddMemory(memory)
}

func (a *Agent) AddToolUsage(toolUsage string) {
	a.promptWrapper.AddToolUsage(toolUsage)
}

func (a *Agent) ListTools() []tools.Tool {
	items := make([]tools.Tool, 0, len(a.tools))
	for _, tool := range a.tools {
		items = append(items, tool)
	}
	return items
}

func (a *Agent) RegisterTool(tool tools.Tool) {
	if tool.Name == "" {
		return
	}
	a.tools[tool.Name] = tool
	functionDef := openai.FunctionDefinitionParam{
		Name: tool.Name,
	}
	if tool.Description != "" {
		functionDef.Description = openai.String(tool.Description)
	}
	if tool.Parameters != nil {
		functionDef.Parameters = openai.FunctionParameters(tool.Parameters)
	}
	a.apiTools = append(a.apiTools, openai.ChatCompletionToolParam{
		Function: functionDef,
	})
}

func (a *Agent) RegisterToolFunc(name string, handler tools.ToolHandler, opts ...tools.Option) {
	a.RegisterTool(tools.New(name, handler, opts...))
}

// Invoke runs the agent loop until the model answers without tool calls or
// MaxTurns is exhausted.
func (a *Agent) Invoke(ctx context.Context, userQuery string) (string, error) {
	wrapper := a.promptWrapper
	wrapper.AddSystemPrompt(a.systemPrompt)
	wrapper.AddUserPrompt(userQuery)
	messages := wrapper.WrapMessages(a.Name, a.Description)
	for turn := 1; turn <= a.MaxTurns; turn++ {
		req := openai.ChatCompletionNewParams{
			Model:    a.model,
			Messages: messages,
		}
		req.Temperature = openai.Float(float64(a.Temperature))
		if a.AllowTools && len(a.apiTools) > 0 {
			req.Tools = a.apiTools
		}
		resp, err := a.client.Chat.Completions.New(ctx, req)
		if err != nil {
			return "", fmt.Errorf("llm error: %w", err)
		}
		msg := resp.Choices[0].Message
		messages = append(messages, msg.ToParam())
		if !a.AllowTools {
			if len(msg.ToolCalls) > 0 {
				return "", fmt.Errorf("tool calls disabled but received %d tool calls", len(msg.ToolCalls))
			}
			return msg.Content, nil
		}
		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}
		for i, result := range a.execToolCalls(ctx, msg.ToolCalls) {
			messages = append(messages, openai.ToolMessage(result, msg.ToolCalls[i].ID))
		}
	}
	return "", fmt.Errorf("agent loop limit exceeded")
}

// execToolCalls runs every tool call from one assistant turn on the worker
// pool and returns the results in call order. A pool submit failure degrades
// to running the call inline.
func (a *Agent) execToolCalls(ctx context.Context, calls []openai.ChatCompletionMessageToolCall) []string {
	results := make([]string, len(calls))
	var wg sync.WaitGroup
	for i, call := range calls {
		i, call := i, call
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = a.execTool(ctx, call)
		}
		if err := a.pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()
	return results
}

func (a *Agent) execTool(ctx context.Context, call openai.ChatCompletionMessageToolCall) string {
	tool, exists := a.tools[call.Function.Name]
	if !exists {
		log.Printf("Tool %s not found", call.Function.Name)
		return fmt.Sprintf("Error: tool %q is not registered", call.Function.Name)
	}
	log.Printf("Agent calling tool: %s with args: %s", call.Function.Name, call.Function.Arguments)
	result, err := tool.Handler(ctx, call.Function.Arguments)
	if err != nil {
		return fmt.Sprintf("Error executing tool: %v", err)
	}
	return result
}
