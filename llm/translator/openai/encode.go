package openai

import (
	"encoding/json"
	"strings"

	"github.com/samber/lo"

	"github.com/squee72564/provider-runtime/llm"
	"github.com/squee72564/provider-runtime/llm/internal/pkg/xjson"
	"github.com/squee72564/provider-runtime/llm/translator"
)

// Encode implements translator.Translator for OpenAI's Responses API.
func Encode(req llm.ProviderRequest) ([]byte, []llm.RuntimeWarning, error) {
	if req.Model.ProviderHint != nil && *req.Model.ProviderHint != llm.Openai {
		return nil, nil, translator.InvalidRequest("provider_hint %q does not match openai", *req.Model.ProviderHint)
	}

	if req.Model.ModelID == "" {
		return nil, nil, translator.InvalidRequest("model_id must not be empty")
	}

	if len(req.Metadata) > 16 {
		return nil, nil, translator.InvalidRequest("metadata has %d pairs, max 16", len(req.Metadata))
	}

	for k, v := range req.Metadata {
		if len(k) > 64 {
			return nil, nil, translator.InvalidRequest("metadata key %q exceeds 64 chars", k)
		}
		if len(v) > 512 {
			return nil, nil, translator.InvalidRequest("metadata value for key %q exceeds 512 chars", k)
		}
	}

	if req.Temperature != nil && (*req.Temperature < 0 || *req.Temperature > 2) {
		return nil, nil, translator.InvalidRequest("temperature %v out of range [0,2]", *req.Temperature)
	}

	if req.TopP != nil && (*req.TopP < 0 || *req.TopP > 1) {
		return nil, nil, translator.InvalidRequest("top_p %v out of range [0,1]", *req.TopP)
	}

	if len(req.Stop) > 0 {
		return nil, nil, translator.InvalidRequest("stop sequences are unsupported by the Responses API")
	}

	var warnings []llm.RuntimeWarning

	if req.Temperature != nil && req.TopP != nil {
		warnings = append(warnings, warning(warnBothTemperatureAndTopP,
			"both temperature and top_p were set; the provider may apply both"))
	}

	wire := &wireRequest{
		Model:           req.Model.ModelID,
		Temperature:     req.Temperature,
		TopP:            req.TopP,
		MaxOutputTokens: req.MaxOutputTokens,
		Store:           false,
	}

	if len(req.Metadata) > 0 {
		wire.Metadata = map[string]string(req.Metadata)
	}

	textFormat, err := encodeResponseFormat(req.ResponseFormat, req.Messages)
	if err != nil {
		return nil, nil, err
	}
	wire.Text = &wireTextConfig{Format: textFormat}

	toolNames := make(map[string]bool, len(req.Tools))
	for _, t := range req.Tools {
		toolNames[t.Name] = true
	}

	tools, toolWarnings := encodeTools(req.Tools)
	wire.Tools = tools
	warnings = append(warnings, toolWarnings...)

	toolChoice, err := encodeToolChoice(req.ToolChoice, toolNames)
	if err != nil {
		return nil, nil, err
	}
	wire.ToolChoice = toolChoice

	input, msgWarnings, err := encodeMessages(req.Messages)
	if err != nil {
		return nil, nil, err
	}
	wire.Input = input
	warnings = append(warnings, msgWarnings...)

	b, err := json.Marshal(wire)
	if err != nil {
		return nil, nil, translator.InvalidRequest("marshal wire request: %v", err)
	}

	return b, warnings, nil
}

func encodeResponseFormat(format llm.ResponseFormat, messages []llm.Message) (wireTextFormat, error) {
	switch format.EffectiveKind() {
	case llm.ResponseFormatText:
		return wireTextFormat{Type: "text"}, nil
	case llm.ResponseFormatJsonObject:
		var joined strings.Builder
		for _, m := range messages {
			joined.WriteString(llm.JoinText(m.Content))
		}
		if !strings.Contains(joined.String(), "JSON") {
			return wireTextFormat{}, translator.InvalidRequest(
				"response_format json_object requires the literal substring \"JSON\" in the message text")
		}
		return wireTextFormat{Type: "json_object"}, nil
	case llm.ResponseFormatJsonSchema:
		strict := true
		return wireTextFormat{
			Type:   "json_schema",
			Name:   format.JsonSchema.Name,
			Schema: format.JsonSchema.Schema,
			Strict: &strict,
		}, nil
	default:
		return wireTextFormat{Type: "text"}, nil
	}
}

func encodeTools(tools []llm.ToolDefinition) ([]wireTool, []llm.RuntimeWarning) {
	var warnings []llm.RuntimeWarning

	out := make([]wireTool, 0, len(tools))
	for _, t := range tools {
		schema := cleanParametersSchema(t.ParametersSchema)
		strict := translator.IsStrictCompatible(schema)

		wt := wireTool{
			Type:        "function",
			Name:        t.Name,
			Description: t.Description,
			Parameters:  schema,
		}

		if strict {
			wt.Strict = lo.ToPtr(true)
		} else {
			warnings = append(warnings, warning(warnToolSchemaStrictDisabled,
				"tool \""+t.Name+"\" parameters_schema is not strict-compatible"))
		}

		out = append(out, wt)
	}

	return out, warnings
}

// cleanParametersSchema strips draft metadata ($schema, $id) a caller's JSON Schema may
// carry but that OpenAI's strict tool mode rejects. Falls back to the schema unchanged
// if it cannot round-trip through jsonschema.Schema.
func cleanParametersSchema(schema map[string]any) map[string]any {
	if schema == nil {
		return nil
	}

	raw, err := json.Marshal(schema)
	if err != nil {
		return schema
	}

	cleaned, err := xjson.CleanSchema(raw, "$schema", "$id")
	if err != nil {
		return schema
	}

	var out map[string]any
	if err := json.Unmarshal(cleaned, &out); err != nil {
		return schema
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
		return wireToolChoiceSpecific{Type: "function", Name: choice.Name}, nil
	default:
		return "auto", nil
	}
}

func encodeMessages(messages []llm.Message) ([]wireInputItem, []llm.RuntimeWarning, error) {
	var (
		items    []wireInputItem
		warnings []llm.RuntimeWarning
	)

	for _, m := range messages {
		switch m.Role {
		case llm.RoleTool:
			toolItems, err := encodeToolResultMessage(m)
			if err != nil {
				return nil, nil, err
			}
			items = append(items, toolItems...)

		case llm.RoleAssistant:
			assistantItems, w, err := encodeAssistantMessage(m)
			if err != nil {
				return nil, nil, err
			}
			items = append(items, assistantItems...)
			warnings = append(warnings, w...)

		default:
			content, w := encodeTextContent(m.Content)
			warnings = append(warnings, w...)
			items = append(items, wireInputItem{
				Type:    "message",
				Role:    string(m.Role),
				Content: content,
			})
		}
	}

	return items, warnings, nil
}

func encodeTextContent(parts []llm.ContentPart) ([]wireContentPart, []llm.RuntimeWarning) {
	var (
		out      []wireContentPart
		warnings []llm.RuntimeWarning
	)

	for _, p := range parts {
		switch p.Kind {
		case llm.ContentText:
			out = append(out, wireContentPart{Type: "input_text", Text: p.Text})
		case llm.ContentThinking:
			warnings = append(warnings, warning(warnDroppedThinkingOnEncode, "thinking content dropped on encode"))
		}
	}

	return out, warnings
}

func encodeAssistantMessage(m llm.Message) ([]wireInputItem, []llm.RuntimeWarning, error) {
	var (
		items       []wireInputItem
		textParts   []llm.ContentPart
		warnings    []llm.RuntimeWarning
	)

	flushText := func() {
		if len(textParts) == 0 {
			return
		}
		content, w := encodeTextContent(textParts)
		warnings = append(warnings, w...)
		items = append(items, wireInputItem{Type: "message", Role: "assistant", Content: content})
		textParts = nil
	}

	for _, p := range m.Content {
		switch p.Kind {
		case llm.ContentToolCall:
			flushText()

			argsStr, err := translator.CanonicalJSONString(p.ToolCall.ArgumentsJSON)
			if err != nil {
				return nil, nil, translator.InvalidRequest("tool_call %q arguments not valid JSON: %v", p.ToolCall.ID, err)
			}

			items = append(items, wireInputItem{
				Type:      "function_call",
				CallID:    p.ToolCall.ID,
				Name:      p.ToolCall.Name,
				Arguments: argsStr,
			})
		case llm.ContentThinking:
			warnings = append(warnings, warning(warnDroppedThinkingOnEncode, "thinking content dropped on encode"))
		default:
			textParts = append(textParts, p)
		}
	}

	flushText()

	return items, warnings, nil
}

func encodeToolResultMessage(m llm.Message) ([]wireInputItem, error) {
	var items []wireInputItem

	for _, p := range m.Content {
		if p.Kind != llm.ContentToolResult {
			return nil, translator.InvalidRequest("tool message contains non-tool-result content part")
		}

		for _, c := range p.ToolResult.Content {
			if c.Kind != llm.ContentText {
				return nil, translator.InvalidRequest("tool_result content must be text-only for the Responses API")
			}
		}

		items = append(items, wireInputItem{
			Type:   "function_call_output",
			CallID: p.ToolResult.ToolCallID,
			Output: llm.JoinText(p.ToolResult.Content),
		})
	}

	return items, nil
}
