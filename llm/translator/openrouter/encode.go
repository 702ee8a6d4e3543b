package openrouter

import (
	"encoding/json"

	"github.com/squee72564/provider-runtime/llm"
	"github.com/squee72564/provider-runtime/llm/translator"
)

// Encode implements translator.Translator for OpenRouter's Chat Completions API
//.
func Encode(req llm.ProviderRequest) ([]byte, []llm.RuntimeWarning, error) {
	if req.Model.ProviderHint != nil && *req.Model.ProviderHint != llm.Openrouter {
		return nil, nil, translator.InvalidRequest("provider_hint %q does not match openrouter", *req.Model.ProviderHint)
	}

	if req.Model.ModelID == "" {
		return nil, nil, translator.InvalidRequest("model_id must not be empty")
	}

	if len(req.Metadata) > 16 {
		return nil, nil, translator.InvalidRequest("metadata has %d pairs, max 16", len(req.Metadata))
	}

	if len(req.Stop) > 4 {
		return nil, nil, translator.InvalidRequest("stop has %d entries, max 4", len(req.Stop))
	}

	if req.Temperature != nil && (*req.Temperature < 0 || *req.Temperature > 2) {
		return nil, nil, translator.InvalidRequest("temperature %v out of range [0,2]", *req.Temperature)
	}

	if req.TopP != nil && (*req.TopP < 0 || *req.TopP > 1) {
		return nil, nil, translator.InvalidRequest("top_p %v out of range [0,1]", *req.TopP)
	}

	if req.MaxOutputTokens != nil && *req.MaxOutputTokens < 1 {
		return nil, nil, translator.InvalidRequest("max_output_tokens must be >= 1")
	}

	var warnings []llm.RuntimeWarning

	if req.Temperature != nil && req.TopP != nil {
		warnings = append(warnings, warning(warnBothTemperatureAndTopP,
			"both temperature and top_p were set; the provider may apply both"))
	}

	toolNames := make(map[string]bool, len(req.Tools))
	for _, t := range req.Tools {
		toolNames[t.Name] = true
	}

	messages, hasToolRole, err := encodeMessages(req.Messages)
	if err != nil {
		return nil, nil, err
	}

	if hasToolRole && len(req.Tools) == 0 {
		return nil, nil, translator.InvalidRequest("a tool-role message is present but no tools are declared")
	}

	toolChoice, err := encodeToolChoice(req.ToolChoice, toolNames)
	if err != nil {
		return nil, nil, err
	}

	wire := &wireRequest{
		Model:               req.Model.ModelID,
		Messages:            messages,
		Tools:               encodeTools(req.Tools),
		ToolChoice:          toolChoice,
		Temperature:         req.Temperature,
		TopP:                req.TopP,
		MaxCompletionTokens: req.MaxOutputTokens,
		Stop:                req.Stop,
		Stream:              false,
	}

	switch req.ResponseFormat.EffectiveKind() {
	case llm.ResponseFormatJsonObject:
		wire.ResponseFormat = &wireRespFormat{Type: "json_object"}
	case llm.ResponseFormatJsonSchema:
		wire.ResponseFormat = &wireRespFormat{
			Type: "json_schema",
			JsonSchema: &wireJsonSchema{
				Name:   req.ResponseFormat.JsonSchema.Name,
				Strict: true,
				Schema: req.ResponseFormat.JsonSchema.Schema,
			},
		}
	}

	b, err := json.Marshal(wire)
	if err != nil {
		return nil, nil, translator.InvalidRequest("marshal wire request: %v", err)
	}

	return b, warnings, nil
}

func encodeMessages(messages []llm.Message) ([]wireMessage, bool, error) {
	var (
		out         []wireMessage
		hasToolRole bool
	)

	for _, m := range messages {
		switch m.Role {
		case llm.RoleTool:
			hasToolRole = true

			for _, p := range m.Content {
				if p.Kind != llm.ContentToolResult {
					return nil, false, translator.InvalidRequest("tool message contains non-tool-result content part")
				}

				text := llm.JoinText(p.ToolResult.Content)
				out = append(out, wireMessage{
					Role:       "tool",
					Content:    &text,
					ToolCallID: p.ToolResult.ToolCallID,
				})
			}

		case llm.RoleAssistant:
			msg, err := encodeAssistantMessage(m)
			if err != nil {
				return nil, false, err
			}
			out = append(out, msg)

		default:
			text := llm.JoinText(m.Content)
			out = append(out, wireMessage{Role: string(m.Role), Content: &text})
		}
	}

	return out, hasToolRole, nil
}

func encodeAssistantMessage(m llm.Message) (wireMessage, error) {
	var (
		text      string
		toolCalls []wireToolCall
	)

	for _, p := range m.Content {
		switch p.Kind {
		case llm.ContentText:
			text += p.Text
		case llm.ContentToolCall:
			args, err := translator.CanonicalJSONString(p.ToolCall.ArgumentsJSON)
			if err != nil {
				return wireMessage{}, translator.InvalidRequest("tool_call %q arguments not valid JSON: %v", p.ToolCall.ID, err)
			}

			toolCalls = append(toolCalls, wireToolCall{
				ID:   p.ToolCall.ID,
				Type: "function",
				Function: wireFunctionCall{
					Name:      p.ToolCall.Name,
					Arguments: args,
				},
			})
		}
	}

	msg := wireMessage{Role: "assistant", ToolCalls: toolCalls}
	if text != "" || len(toolCalls) == 0 {
		msg.Content = &text
	}

	return msg, nil
}

func encodeTools(tools []llm.ToolDefinition) []wireTool {
	out := make([]wireTool, 0, len(tools))

	for _, t := range tools {
		out = append(out, wireTool{
			Type: "function",
			Function: wireFunction{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.ParametersSchema,
			},
		})
	}

	return out
}

func encodeToolChoice(choice llm.ToolChoice, toolNames map[string]bool) (any, error) {
	switch choice.EffectiveKind() {
	case llm.ToolChoiceNone:
		return "none", nil
	case llm.ToolChoiceAuto:
		return "auto", nil
	case llm.ToolChoiceRequired:
		return "required", nil
	case llm.ToolChoiceSpecific:
		if !toolNames[choice.Name] {
			return nil, translator.InvalidRequest("tool_choice references undeclared tool %q", choice.Name)
		}
		return wireToolChoiceFunction{Type: "function", Function: wireToolChoiceFunctionPayload{Name: choice.Name}}, nil
	default:
		return "auto", nil
	}
}
