package anthropic

import (
	"encoding/json"

	"github.com/samber/lo"

	"github.com/squee72564/provider-runtime/llm"
	"github.com/squee72564/provider-runtime/llm/translator"
)

// Encode implements translator.Translator for Anthropic's Messages API.
func Encode(req llm.ProviderRequest) ([]byte, []llm.RuntimeWarning, error) {
	if req.Model.ProviderHint != nil && *req.Model.ProviderHint != llm.Anthropic {
		return nil, nil, translator.InvalidRequest("provider_hint %q does not match anthropic", *req.Model.ProviderHint)
	}

	if req.Model.ModelID == "" {
		return nil, nil, translator.InvalidRequest("model_id must not be empty")
	}

	var warnings []llm.RuntimeWarning

	system, rest, err := splitSystemPrefix(req.Messages)
	if err != nil {
		return nil, nil, err
	}

	rawMessages, w, err := encodeMessages(rest)
	if err != nil {
		return nil, nil, err
	}
	warnings = append(warnings, w...)

	merged := mergeConsecutiveSameRole(rawMessages)

	if len(merged) > 0 && merged[len(merged)-1].Role == "assistant" && !req.ResponseFormat.IsText() {
		return nil, nil, translator.InvalidRequest(
			"JSON response formats are incompatible with a trailing assistant (prefill) message")
	}

	wire := &wireRequest{
		Model:       req.Model.ModelID,
		Messages:    merged,
		System:      system,
		Temperature: req.Temperature,
		TopP:        req.TopP,
	}

	if req.Temperature != nil && req.TopP != nil {
		warnings = append(warnings, warning(warnBothTemperatureAndTopP,
			"both temperature and top_p were set; the provider may apply both"))
	}

	if req.MaxOutputTokens != nil {
		wire.MaxTokens = *req.MaxOutputTokens
	} else {
		wire.MaxTokens = 1024
		warnings = append(warnings, warning(warnDefaultMaxTokensApplied, "max_tokens defaulted to 1024"))
	}

	if len(req.Stop) > 0 {
		wire.StopSequences = req.Stop
	}

	if userID, ok, extraKeys := extractUserID(req.Metadata); ok || len(extraKeys) > 0 {
		if ok {
			wire.Metadata = &wireMetadata{UserID: userID}
		}
		if len(extraKeys) > 0 {
			warnings = append(warnings, warning(warnDroppedUnsupportedMetadataKeys,
				"dropped unsupported metadata keys"))
		}
	}

	tools, err := encodeTools(req.Tools)
	if err != nil {
		return nil, nil, err
	}
	wire.Tools = tools

	toolNames := make(map[string]bool, len(req.Tools))
	for _, t := range req.Tools {
		toolNames[t.Name] = true
	}

	choice, err := encodeToolChoice(req.ToolChoice, toolNames)
	if err != nil {
		return nil, nil, err
	}
	wire.ToolChoice = choice

	if err := encodeOutputConfig(wire, req.ResponseFormat); err != nil {
		return nil, nil, err
	}

	b, err := json.Marshal(wire)
	if err != nil {
		return nil, nil, translator.InvalidRequest("marshal wire request: %v", err)
	}

	return b, warnings, nil
}

func splitSystemPrefix(messages []llm.Message) ([]wireTextBlock, []llm.Message, error) {
	i := 0
	for i < len(messages) && messages[i].Role == llm.RoleSystem {
		i++
	}

	for _, m := range messages[i:] {
		if m.Role == llm.RoleSystem {
			return nil, nil, translator.InvalidRequest("system messages must form a contiguous prefix")
		}
	}

	var system []wireTextBlock
	for _, m := range messages[:i] {
		system = append(system, wireTextBlock{Type: "text", Text: llm.JoinText(m.Content)})
	}

	return system, messages[i:], nil
}

func roleToWire(role llm.Role) string {
	switch role {
	case llm.RoleAssistant:
		return "assistant"
	default: // User, Tool
		return "user"
	}
}

func encodeMessages(messages []llm.Message) ([]wireMessage, []llm.RuntimeWarning, error) {
	var (
		out      []wireMessage
		warnings []llm.RuntimeWarning
	)

	for _, m := range messages {
		blocks, w, err := encodeContent(m.Content)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, w...)

		out = append(out, wireMessage{Role: roleToWire(m.Role), Content: blocks})
	}

	return out, warnings, nil
}

func encodeContent(parts []llm.ContentPart) ([]wireBlock, []llm.RuntimeWarning, error) {
	var (
		out      []wireBlock
		warnings []llm.RuntimeWarning
	)

	for _, p := range parts {
		switch p.Kind {
		case llm.ContentText:
			out = append(out, wireBlock{Type: "text", Text: p.Text})

		case llm.ContentToolCall:
			input, err := translator.CanonicalJSON(p.ToolCall.ArgumentsJSON)
			if err != nil {
				return nil, nil, translator.InvalidRequest("tool_call %q arguments not valid JSON: %v", p.ToolCall.ID, err)
			}

			var probe any
			if err := json.Unmarshal(input, &probe); err != nil {
				return nil, nil, translator.InvalidRequest("tool_call %q arguments must be JSON", p.ToolCall.ID)
			}
			if _, ok := probe.(map[string]any); !ok {
				return nil, nil, translator.InvalidRequest("tool_call %q arguments must be a JSON object", p.ToolCall.ID)
			}

			out = append(out, wireBlock{Type: "tool_use", ID: p.ToolCall.ID, Name: p.ToolCall.Name, Input: input})

		case llm.ContentToolResult:
			inner, _, err := encodeContent(p.ToolResult.Content)
			if err != nil {
				return nil, nil, err
			}
			out = append(out, wireBlock{Type: "tool_result", ToolUseID: p.ToolResult.ToolCallID, Content: inner})

		case llm.ContentThinking:
			warnings = append(warnings, warning(warnDroppedThinkingOnEncode, "thinking content dropped on encode"))
		}
	}

	return out, warnings, nil
}

// mergeConsecutiveSameRole merges adjacent wire messages sharing a role into one,
// placing tool_result blocks before any other block when merging user messages
//.
func mergeConsecutiveSameRole(messages []wireMessage) []wireMessage {
	if len(messages) == 0 {
		return messages
	}

	merged := []wireMessage{messages[0]}

	for _, m := range messages[1:] {
		last := &merged[len(merged)-1]
		if last.Role == m.Role {
			last.Content = append(last.Content, m.Content...)
			if last.Role == "user" {
				last.Content = toolResultsFirst(last.Content)
			}
			continue
		}
		merged = append(merged, m)
	}

	return merged
}

func toolResultsFirst(blocks []wireBlock) []wireBlock {
	results := lo.Filter(blocks, func(b wireBlock, _ int) bool { return b.Type == "tool_result" })
	others := lo.Filter(blocks, func(b wireBlock, _ int) bool { return b.Type != "tool_result" })
	return append(results, others...)
}

func extractUserID(metadata llm.Metadata) (userID string, ok bool, extraKeys []string) {
	for k, v := range metadata {
		if k == "user_id" {
			userID, ok = v, true
			continue
		}
		extraKeys = append(extraKeys, k)
	}
	return userID, ok, extraKeys
}

func encodeTools(tools []llm.ToolDefinition) ([]wireTool, error) {
	out := make([]wireTool, 0, len(tools))

	for _, t := range tools {
		if len(t.Name) < 1 || len(t.Name) > 128 {
			return nil, translator.InvalidRequest("tool name %q must be 1-128 characters", t.Name)
		}

		out = append(out, wireTool{Name: t.Name, Description: t.Description, InputSchema: t.ParametersSchema})
	}

	return out, nil
}

func encodeToolChoice(choice llm.ToolChoice, toolNames map[string]bool) (*wireToolChoice, error) {
	switch choice.EffectiveKind() {
	case llm.ToolChoiceNone:
		return &wireToolChoice{Type: "none"}, nil
	case llm.ToolChoiceAuto:
		return &wireToolChoice{Type: "auto"}, nil
	case llm.ToolChoiceRequired:
		return &wireToolChoice{Type: "any"}, nil
	case llm.ToolChoiceSpecific:
		if !toolNames[choice.Name] {
			return nil, translator.InvalidRequest("tool_choice references undeclared tool %q", choice.Name)
		}
		return &wireToolChoice{Type: "tool", Name: choice.Name, DisableParallelToolUse: lo.ToPtr(true)}, nil
	default:
		return &wireToolChoice{Type: "auto"}, nil
	}
}

func encodeOutputConfig(wire *wireRequest, format llm.ResponseFormat) error {
	switch format.EffectiveKind() {
	case llm.ResponseFormatText:
		return nil
	case llm.ResponseFormatJsonObject:
		wire.OutputConfig = &wireOutputConfig{Format: wireOutputFormat{
			Type:   "json_schema",
			Schema: map[string]any{"type": "object"},
		}}
		return nil
	case llm.ResponseFormatJsonSchema:
		wire.OutputConfig = &wireOutputConfig{Format: wireOutputFormat{
			Type:   "json_schema",
			Schema: format.JsonSchema.Schema,
		}}
		return nil
	default:
		return nil
	}
}
