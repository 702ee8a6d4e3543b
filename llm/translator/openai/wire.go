// Package openai implements the Translator for OpenAI's Responses API
//: POST /v1/responses.
package openai

// wireRequest is the subset of the Responses API request body this translator reads
// and writes.
type wireRequest struct {
	Model           string          `json:"model"`
	Input           []wireInputItem `json:"input"`
	Text            *wireTextConfig `json:"text,omitempty"`
	Tools           []wireTool      `json:"tools,omitempty"`
	ToolChoice      any             `json:"tool_choice,omitempty"`
	Temperature     *float64        `json:"temperature,omitempty"`
	TopP            *float64        `json:"top_p,omitempty"`
	MaxOutputTokens *int64          `json:"max_output_tokens,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	Store           bool            `json:"store"`
}

type wireTextConfig struct {
	Format wireTextFormat `json:"format"`
}

// wireTextFormat is text.format: {type:"text"} | {type:"json_object"} |
// {type:"json_schema", name, schema, strict}.
type wireTextFormat struct {
	Type   string         `json:"type"`
	Name   string         `json:"name,omitempty"`
	Schema map[string]any `json:"schema,omitempty"`
	Strict *bool          `json:"strict,omitempty"`
}

type wireTool struct {
	Type        string         `json:"type"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters"`
	Strict      *bool          `json:"strict,omitempty"`
}

// wireToolChoiceSpecific is {type:"function", name}, the encoding of ToolChoice::Specific.
type wireToolChoiceSpecific struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// wireInputItem is a tagged union over {type:"message"} | {type:"function_call"} |
// {type:"function_call_output"}.
type wireInputItem struct {
	Type string `json:"type"`

	// message
	Role    string            `json:"role,omitempty"`
	Content []wireContentPart `json:"content,omitempty"`

	// function_call
	CallID    string `json:"call_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`

	// function_call_output
	Output string `json:"output,omitempty"`
}

type wireContentPart struct {
	Type string `json:"type"` // input_text | output_text
	Text string `json:"text"`
}

// wireResponse is the subset of the Responses API response body this translator reads.
type wireResponse struct {
	Status            string               `json:"status"`
	Model             string               `json:"model"`
	Output             []wireOutputItem    `json:"output"`
	Usage              *wireUsage          `json:"usage"`
	IncompleteDetails  *wireIncomplete     `json:"incomplete_details"`
	Error              *wireError          `json:"error"`
}

type wireIncomplete struct {
	Reason string `json:"reason"`
}

type wireError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Type    string `json:"type"`
}

// wireOutputItem is a tagged union over {type:"message"} | {type:"function_call"} |
// {type:"reasoning"}.
type wireOutputItem struct {
	Type string `json:"type"`

	// message
	Role    string               `json:"role,omitempty"`
	Content []wireOutputContent  `json:"content,omitempty"`

	// function_call
	CallID    string `json:"call_id,omitempty"`
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`

	// reasoning
	Summary []wireOutputContent `json:"summary,omitempty"`
}

type wireOutputContent struct {
	Type string `json:"type"` // output_text
	Text string `json:"text"`
}

type wireUsage struct {
	InputTokens         int64               `json:"input_tokens"`
	OutputTokens        int64               `json:"output_tokens"`
	TotalTokens         int64               `json:"total_tokens"`
	InputTokensDetails  *wireInputDetails   `json:"input_tokens_details"`
	OutputTokensDetails *wireOutputDetails  `json:"output_tokens_details"`
}

type wireInputDetails struct {
	CachedTokens int64 `json:"cached_tokens"`
}

type wireOutputDetails struct {
	ReasoningTokens int64 `json:"reasoning_tokens"`
}
