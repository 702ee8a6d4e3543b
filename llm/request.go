package llm

// ProviderRequest is the canonical, provider-agnostic representation of a single-turn
// LLM call. Zero value ToolChoice/ResponseFormat behave as their documented defaults
// (Auto, Text).
type ProviderRequest struct {
	Model           ModelRef         `json:"model" validate:"required"`
	Messages        []Message        `json:"messages" validate:"required,min=1"`
	Tools           []ToolDefinition `json:"tools,omitempty"`
	ToolChoice      ToolChoice       `json:"tool_choice,omitempty"`
	ResponseFormat  ResponseFormat   `json:"response_format,omitempty"`
	Temperature     *float64         `json:"temperature,omitempty"`
	TopP            *float64         `json:"top_p,omitempty"`
	MaxOutputTokens *int64           `json:"max_output_tokens,omitempty"`
	Stop            []string         `json:"stop,omitempty"`
	Metadata        Metadata         `json:"metadata,omitempty"`
}

// RequestContext is threaded into Translator.Decode alongside the raw wire payload. It
// carries whatever the original request needs decode to see without a parallel side
// channel.
type RequestContext struct {
	ResponseFormat ResponseFormat
}
