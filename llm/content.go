package llm

import "encoding/json"

// ContentKind discriminates the closed set of ContentPart variants. Implementations
// must exhaustively switch on it rather than relying on virtual dispatch.
type ContentKind string

const (
	ContentText       ContentKind = "text"
	ContentThinking   ContentKind = "thinking"
	ContentToolCall   ContentKind = "tool_call"
	ContentToolResult ContentKind = "tool_result"
)

// ContentPart is the tagged union of the message-content variants. Exactly one of the
// variant fields matching Kind is populated; the rest are nil/zero and omitted on
// serialization.
type ContentPart struct {
	Kind ContentKind `json:"kind"`

	// Text holds the Text{text} variant's payload.
	Text string `json:"text,omitempty"`

	// Thinking holds the Thinking{text, provider?} variant's payload.
	Thinking *ThinkingPart `json:"thinking,omitempty"`

	// ToolCall holds the ToolCall{id, name, arguments_json} variant's payload. ToolCall
	// parts must only appear in Assistant messages.
	ToolCall *ToolCallPart `json:"tool_call,omitempty"`

	// ToolResult holds the ToolResult{tool_call_id, content} variant's payload.
	// ToolResult parts must only appear in Tool messages.
	ToolResult *ToolResultPart `json:"tool_result,omitempty"`
}

// ThinkingPart carries a model's reasoning trace. Provider records which translator
// produced it, so handoff (§4.6) knows when a cross-provider conversion is needed.
type ThinkingPart struct {
	Text     string     `json:"text"`
	Provider ProviderId `json:"provider,omitempty"`
}

// ToolCallPart is an assistant-issued function invocation request.
type ToolCallPart struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ArgumentsJSON json.RawMessage `json:"arguments_json"`
}

// ToolResultPart is the caller-supplied outcome of a prior ToolCallPart, ferried back
// to the provider bit-faithfully.
type ToolResultPart struct {
	ToolCallID string        `json:"tool_call_id"`
	Content    []ContentPart `json:"content"`
}

// Text builds a Text content part.
func Text(text string) ContentPart {
	return ContentPart{Kind: ContentText, Text: text}
}

// Thinking builds a Thinking content part.
func Thinking(text string, provider ProviderId) ContentPart {
	return ContentPart{Kind: ContentThinking, Thinking: &ThinkingPart{Text: text, Provider: provider}}
}

// ToolCall builds a ToolCall content part.
func ToolCall(id, name string, argumentsJSON json.RawMessage) ContentPart {
	return ContentPart{
		Kind:     ContentToolCall,
		ToolCall: &ToolCallPart{ID: id, Name: name, ArgumentsJSON: argumentsJSON},
	}
}

// ToolResult builds a ToolResult content part.
func ToolResult(toolCallID string, content []ContentPart) ContentPart {
	return ContentPart{
		Kind:       ContentToolResult,
		ToolResult: &ToolResultPart{ToolCallID: toolCallID, Content: content},
	}
}

// JoinText concatenates every Text part of a content sequence in order, ignoring
// non-text parts. Several translators need "the text of this message" to validate or
// derive wire fields (e.g. OpenAI's JsonObject "JSON" substring check).
func JoinText(parts []ContentPart) string {
	var out string

	for _, p := range parts {
		if p.Kind == ContentText {
			out += p.Text
		}
	}

	return out
}
