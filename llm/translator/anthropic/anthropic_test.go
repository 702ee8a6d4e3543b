package anthropic

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/squee72564/provider-runtime/llm"
)

func TestEncode_SpecificToolChoiceDisablesParallelCalls(t *testing.T) {
	req := llm.ProviderRequest{
		Model:      llm.ModelRef{ModelID: "claude-opus"},
		Messages:   []llm.Message{{Role: llm.RoleUser, Content: []llm.ContentPart{llm.Text("hi")}}},
		Tools:      []llm.ToolDefinition{{Name: "lookup", ParametersSchema: map[string]any{"type": "object"}}},
		ToolChoice: llm.NewToolChoiceSpecific("lookup"),
	}

	wire, _, err := Encode(req)
	require.NoError(t, err)

	var parsed wireRequest
	require.NoError(t, json.Unmarshal(wire, &parsed))

	require.Equal(t, "tool", parsed.ToolChoice.Type)
	require.Equal(t, "lookup", parsed.ToolChoice.Name)
	require.NotNil(t, parsed.ToolChoice.DisableParallelToolUse)
	require.True(t, *parsed.ToolChoice.DisableParallelToolUse)
}

func TestEncode_DefaultsMaxTokensWithWarning(t *testing.T) {
	req := llm.ProviderRequest{
		Model:    llm.ModelRef{ModelID: "claude-opus"},
		Messages: []llm.Message{{Role: llm.RoleUser, Content: []llm.ContentPart{llm.Text("hi")}}},
	}

	wire, warnings, err := Encode(req)
	require.NoError(t, err)

	var parsed wireRequest
	require.NoError(t, json.Unmarshal(wire, &parsed))
	require.Equal(t, int64(1024), parsed.MaxTokens)

	found := false
	for _, w := range warnings {
		if w.Code == warnDefaultMaxTokensApplied {
			found = true
		}
	}
	require.True(t, found)
}

func TestEncode_SplitsSystemMessagesOut(t *testing.T) {
	req := llm.ProviderRequest{
		Model: llm.ModelRef{ModelID: "claude-opus"},
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: []llm.ContentPart{llm.Text("be concise")}},
			{Role: llm.RoleUser, Content: []llm.ContentPart{llm.Text("hi")}},
		},
	}

	wire, _, err := Encode(req)
	require.NoError(t, err)

	var parsed wireRequest
	require.NoError(t, json.Unmarshal(wire, &parsed))
	require.Len(t, parsed.System, 1)
	require.Equal(t, "be concise", parsed.System[0].Text)
	require.Len(t, parsed.Messages, 1)
}

func TestDecode_RedactedThinkingBecomesPlaceholderWithWarning(t *testing.T) {
	wire := []byte(`{
		"role": "assistant",
		"model": "claude-opus",
		"stop_reason": "end_turn",
		"content": [{"type": "redacted_thinking"}],
		"usage": {"input_tokens": 1, "output_tokens": 1}
	}`)

	resp, err := Decode(wire, llm.RequestContext{})

	require.NoError(t, err)
	require.Equal(t, llm.ContentThinking, resp.Output.Content[0].Kind)
	require.Equal(t, "<redacted>", resp.Output.Content[0].Thinking.Text)
	require.Len(t, resp.Warnings, 1)
	require.Equal(t, warnRedactedThinking, resp.Warnings[0].Code)
}

func TestDecode_ToolUseFinishReason(t *testing.T) {
	wire := []byte(`{
		"role": "assistant",
		"model": "claude-opus",
		"stop_reason": "tool_use",
		"content": [{"type": "tool_use", "id": "call_1", "name": "lookup", "input": {"q": "x"}}],
		"usage": {"input_tokens": 1, "output_tokens": 1}
	}`)

	resp, err := Decode(wire, llm.RequestContext{})

	require.NoError(t, err)
	require.Equal(t, llm.FinishToolCalls, resp.FinishReason)
	require.Equal(t, "lookup", resp.Output.Content[0].ToolCall.Name)
}

func TestDecode_CachedTokensFoldIntoBilledInput(t *testing.T) {
	wire := []byte(`{
		"role": "assistant",
		"model": "claude-opus",
		"stop_reason": "end_turn",
		"content": [{"type": "text", "text": "hi"}],
		"usage": {"input_tokens": 10, "output_tokens": 5, "cache_read_input_tokens": 3}
	}`)

	resp, err := Decode(wire, llm.RequestContext{})

	require.NoError(t, err)
	require.Equal(t, int64(13), *resp.Usage.InputTokens)
	require.Equal(t, int64(3), *resp.Usage.CachedInputTokens)
}

func TestDecode_EmbeddedErrorIsProtocolError(t *testing.T) {
	wire := []byte(`{"type": "error", "error": {"type": "invalid_request_error", "message": "bad"}}`)

	_, err := Decode(wire, llm.RequestContext{})
	require.Error(t, err)
}
