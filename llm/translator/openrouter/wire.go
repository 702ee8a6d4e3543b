// Package openrouter implements the Translator for OpenRouter's OpenAI-compatible
// Chat Completions API: POST /api/v1/chat/completions.
package openrouter

import "encoding/json"

type wireRequest struct {
	Model             string          `json:"model"`
	Messages          []wireMessage   `json:"messages"`
	Tools             []wireTool      `json:"tools,omitempty"`
	ToolChoice        any             `json:"tool_choice,omitempty"`
	Temperature       *float64        `json:"temperature,omitempty"`
	TopP              *float64        `json:"top_p,omitempty"`
	MaxCompletionTokens *int64        `json:"max_completion_tokens,omitempty"`
	Stop              []string        `json:"stop,omitempty"`
	ResponseFormat    *wireRespFormat `json:"response_format,omitempty"`
	Stream            bool            `json:"stream"`

	// Adapter-private routing options, never part of the canonical surface.
	Models             []string       `json:"models,omitempty"`
	Provider           map[string]any `json:"provider,omitempty"`
	Plugins            []any          `json:"plugins,omitempty"`
	ParallelToolCalls  *bool          `json:"parallel_tool_calls,omitempty"`
	FrequencyPenalty   *float64       `json:"frequency_penalty,omitempty"`
	PresencePenalty    *float64       `json:"presence_penalty,omitempty"`
	LogitBias          map[string]float64 `json:"logit_bias,omitempty"`
	Logprobs           *bool          `json:"logprobs,omitempty"`
	TopLogprobs        *int64         `json:"top_logprobs,omitempty"`
	Reasoning          map[string]any `json:"reasoning,omitempty"`
	Seed               *int64         `json:"seed,omitempty"`
	User               string         `json:"user,omitempty"`
	SessionID          string         `json:"session_id,omitempty"`
	Trace              *bool          `json:"trace,omitempty"`
}

type wireRespFormat struct {
	Type       string          `json:"type"`
	JsonSchema *wireJsonSchema `json:"json_schema,omitempty"`
}

type wireJsonSchema struct {
	Name   string         `json:"name"`
	Strict bool           `json:"strict"`
	Schema map[string]any `json:"schema"`
}

type wireMessage struct {
	Role       string         `json:"role"`
	Content    *string        `json:"content"`
	ToolCalls  []wireToolCall `json:"tool_calls,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
}

type wireToolCall struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Function wireFunctionCall `json:"function"`
}

type wireFunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type wireTool struct {
	Type     string       `json:"type"`
	Function wireFunction `json:"function"`
}

type wireFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters"`
}

type wireToolChoiceFunction struct {
	Type     string                         `json:"type"`
	Function wireToolChoiceFunctionPayload  `json:"function"`
}

type wireToolChoiceFunctionPayload struct {
	Name string `json:"name"`
}

// wireResponse is the subset of the OpenAI-compatible chat completions response this
// translator reads.
type wireResponse struct {
	Model   string        `json:"model"`
	Choices []wireChoice  `json:"choices"`
	Usage   *wireUsage    `json:"usage"`
	Error   *wireError    `json:"error"`
}

type wireError struct {
	Message string `json:"message"`
	Code    any    `json:"code"`
	Type    string `json:"type"`
}

type wireChoice struct {
	Message      wireRespMessage `json:"message"`
	FinishReason *string         `json:"finish_reason"`
	Error        *wireError      `json:"error,omitempty"`
}

type wireRespMessage struct {
	Role             string            `json:"role"`
	Content          *string           `json:"content"`
	ToolCalls        []wireToolCall    `json:"tool_calls,omitempty"`
	Reasoning        string            `json:"reasoning,omitempty"`
	ReasoningDetails []json.RawMessage `json:"reasoning_details,omitempty"`
	Refusal          *string           `json:"refusal,omitempty"`
}

type wireUsage struct {
	PromptTokens            int64                  `json:"prompt_tokens"`
	CompletionTokens        int64                  `json:"completion_tokens"`
	TotalTokens             int64                  `json:"total_tokens"`
	PromptTokensDetails     *wirePromptDetails     `json:"prompt_tokens_details"`
	CompletionTokensDetails *wireCompletionDetails `json:"completion_tokens_details"`
}

type wirePromptDetails struct {
	CachedTokens int64 `json:"cached_tokens"`
}

type wireCompletionDetails struct {
	ReasoningTokens int64 `json:"reasoning_tokens"`
}
