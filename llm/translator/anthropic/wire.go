// Package anthropic implements the Translator for Anthropic's Messages API
//: POST /v1/messages.
package anthropic

import "encoding/json"

type wireRequest struct {
	Model         string            `json:"model"`
	MaxTokens     int64             `json:"max_tokens"`
	Messages      []wireMessage     `json:"messages"`
	System        []wireTextBlock   `json:"system,omitempty"`
	Tools         []wireTool        `json:"tools,omitempty"`
	ToolChoice    *wireToolChoice   `json:"tool_choice,omitempty"`
	OutputConfig  *wireOutputConfig `json:"output_config,omitempty"`
	StopSequences []string          `json:"stop_sequences,omitempty"`
	Temperature   *float64          `json:"temperature,omitempty"`
	TopP          *float64          `json:"top_p,omitempty"`
	Metadata      *wireMetadata     `json:"metadata,omitempty"`
}

type wireMetadata struct {
	UserID string `json:"user_id,omitempty"`
}

type wireMessage struct {
	Role    string       `json:"role"`
	Content []wireBlock  `json:"content"`
}

// wireBlock is a tagged union over text | tool_use | tool_result | thinking |
// redacted_thinking.
type wireBlock struct {
	Type string `json:"type"`

	// text / thinking / redacted_thinking
	Text string `json:"text,omitempty"`

	// tool_use
	ID    string          `json:"id,omitempty"`
	Name  string          `json:"name,omitempty"`
	Input json.RawMessage `json:"input,omitempty"`

	// tool_result
	ToolUseID string      `json:"tool_use_id,omitempty"`
	Content   []wireBlock `json:"content,omitempty"`
}

type wireTextBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type wireTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	InputSchema map[string]any `json:"input_schema"`
}

type wireToolChoice struct {
	Type                 string `json:"type"`
	Name                 string `json:"name,omitempty"`
	DisableParallelToolUse *bool `json:"disable_parallel_tool_use,omitempty"`
}

type wireOutputConfig struct {
	Format wireOutputFormat `json:"format"`
}

type wireOutputFormat struct {
	Type   string         `json:"type"`
	Schema map[string]any `json:"schema"`
}

// wireResponse is the subset of the Messages API response this translator reads.
type wireResponse struct {
	Type       string      `json:"type"` // "error" for an embedded error body
	Error      *wireError  `json:"error,omitempty"`
	Role       string      `json:"role"`
	Model      string      `json:"model"`
	Content    []wireBlock `json:"content"`
	StopReason string      `json:"stop_reason"`
	Usage      *wireUsage  `json:"usage"`
}

type wireError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type wireUsage struct {
	InputTokens              int64 `json:"input_tokens"`
	OutputTokens             int64 `json:"output_tokens"`
	CacheCreationInputTokens int64 `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int64 `json:"cache_read_input_tokens"`
}
