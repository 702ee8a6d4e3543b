package openai

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/squee72564/provider-runtime/llm"
)

func TestEncode_BasicTextRequest(t *testing.T) {
	req := llm.ProviderRequest{
		Model:    llm.ModelRef{ModelID: "gpt-5"},
		Messages: []llm.Message{{Role: llm.RoleUser, Content: []llm.ContentPart{llm.Text("hello there")}}},
	}

	wire, warnings, err := Encode(req)

	require.NoError(t, err)
	require.Empty(t, warnings)

	var parsed wireRequest
	require.NoError(t, json.Unmarshal(wire, &parsed))
	require.Equal(t, "gpt-5", parsed.Model)
	require.Len(t, parsed.Input, 1)
	require.Equal(t, "message", parsed.Input[0].Type)
	require.Equal(t, "hello there", parsed.Input[0].Content[0].Text)
}

func TestEncode_IsDeterministic(t *testing.T) {
	req := llm.ProviderRequest{
		Model:    llm.ModelRef{ModelID: "gpt-5"},
		Messages: []llm.Message{{Role: llm.RoleUser, Content: []llm.ContentPart{llm.Text("hi")}}},
		Metadata: llm.Metadata{"z": "1", "a": "2"},
	}

	first, _, err := Encode(req)
	require.NoError(t, err)

	second, _, err := Encode(req)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestEncode_RejectsMismatchedProviderHint(t *testing.T) {
	hint := llm.Anthropic
	req := llm.ProviderRequest{
		Model:    llm.ModelRef{ProviderHint: &hint, ModelID: "gpt-5"},
		Messages: []llm.Message{{Role: llm.RoleUser, Content: []llm.ContentPart{llm.Text("hi")}}},
	}

	_, _, err := Encode(req)
	require.Error(t, err)
}

func TestDecode_BasicTextResponse(t *testing.T) {
	wire := []byte(`{
		"status": "completed",
		"model": "gpt-5",
		"output": [
			{"type": "message", "role": "assistant", "content": [{"type": "output_text", "text": "hi there"}]}
		],
		"usage": {"input_tokens": 10, "output_tokens": 5, "total_tokens": 15}
	}`)

	resp, err := Decode(wire, llm.RequestContext{})

	require.NoError(t, err)
	require.Equal(t, llm.FinishStop, resp.FinishReason)
	require.Equal(t, "hi there", llm.JoinText(resp.Output.Content))
	require.Equal(t, int64(15), *resp.Usage.TotalTokens)
}

func TestDecode_ToolCallSetsFinishToolCalls(t *testing.T) {
	wire := []byte(`{
		"status": "completed",
		"model": "gpt-5",
		"output": [
			{"type": "function_call", "call_id": "call_1", "name": "lookup", "arguments": "{\"q\":\"x\"}"}
		]
	}`)

	resp, err := Decode(wire, llm.RequestContext{})

	require.NoError(t, err)
	require.Equal(t, llm.FinishToolCalls, resp.FinishReason)
	require.Equal(t, llm.ContentToolCall, resp.Output.Content[0].Kind)
	require.Equal(t, "lookup", resp.Output.Content[0].ToolCall.Name)
}

func TestDecode_MalformedToolArgumentsWarnsInsteadOfFailing(t *testing.T) {
	wire := []byte(`{
		"status": "completed",
		"model": "gpt-5",
		"output": [
			{"type": "function_call", "call_id": "call_1", "name": "lookup", "arguments": "{not json"}
		],
		"usage": {"input_tokens": 1, "output_tokens": 1, "total_tokens": 2}
	}`)

	resp, err := Decode(wire, llm.RequestContext{})

	require.NoError(t, err)
	require.Len(t, resp.Warnings, 1)
	require.Equal(t, warnToolArgumentsInvalidJSON, resp.Warnings[0].Code)
}

func TestDecode_EmbeddedErrorIsProtocolError(t *testing.T) {
	wire := []byte(`{"error": {"message": "bad request", "type": "invalid_request_error"}}`)

	_, err := Decode(wire, llm.RequestContext{})

	require.Error(t, err)
}

func TestEncode_StrictToolSchemaAndDefaultToolChoice(t *testing.T) {
	req := llm.ProviderRequest{
		Model: llm.ModelRef{ModelID: "gpt-5"},
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: []llm.ContentPart{llm.Text("what's the weather")}},
		},
		Tools: []llm.ToolDefinition{
			{
				Name: "get_weather",
				ParametersSchema: map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []any{"city"},
					"properties":           map[string]any{"city": map[string]any{"type": "string"}},
				},
			},
		},
	}

	wire, _, err := Encode(req)
	require.NoError(t, err)

	var parsed wireRequest
	require.NoError(t, json.Unmarshal(wire, &parsed))
	require.True(t, *parsed.Tools[0].Strict)

	if diff := cmp.Diff("auto", parsed.ToolChoice); diff != "" {
		t.Errorf("unexpected default tool_choice (-want +got):\n%s", diff)
	}
}
