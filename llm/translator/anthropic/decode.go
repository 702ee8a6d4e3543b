package anthropic

import (
	"encoding/json"

	"github.com/squee72564/provider-runtime/llm"
	"github.com/squee72564/provider-runtime/llm/translator"
)

// Decode implements translator.Translator for Anthropic's Messages API.
func Decode(wire []byte, reqCtx llm.RequestContext) (*llm.ProviderResponse, error) {
	var resp wireResponse
	if err := json.Unmarshal(wire, &resp); err != nil {
		return nil, &llm.Serialization{Location: llm.SerializationDecode, Message: err.Error()}
	}

	if resp.Type == "error" && resp.Error != nil {
		return nil, translator.Protocol(llm.Anthropic, "%s", resp.Error.Message)
	}

	var warnings []llm.RuntimeWarning

	content, w, err := decodeContent(resp.Content)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, w...)

	finishReason, finishWarnings := decodeFinishReason(resp.StopReason)
	warnings = append(warnings, finishWarnings...)

	usage, usageWarning := decodeUsage(resp.Usage)
	if usageWarning != nil {
		warnings = append(warnings, *usageWarning)
	}

	output := llm.AssistantOutput{Content: content}

	if !reqCtx.ResponseFormat.IsText() {
		text := llm.JoinText(content)

		if json.Valid([]byte(text)) {
			output.StructuredOutput = json.RawMessage(text)
		} else {
			warnings = append(warnings, warning(warnStructuredOutputParseFail, "structured output text was not valid JSON"))
		}
	}

	return &llm.ProviderResponse{
		Output:       output,
		Usage:        usage,
		Provider:     llm.Anthropic,
		Model:        resp.Model,
		FinishReason: finishReason,
		Warnings:     warnings,
	}, nil
}

func decodeContent(blocks []wireBlock) ([]llm.ContentPart, []llm.RuntimeWarning, error) {
	var (
		out      []llm.ContentPart
		warnings []llm.RuntimeWarning
	)

	for _, b := range blocks {
		switch b.Type {
		case "text":
			out = append(out, llm.Text(b.Text))

		case "tool_use":
			var probe any
			if len(b.Input) > 0 {
				if err := json.Unmarshal(b.Input, &probe); err != nil {
					return nil, nil, translator.Protocol(llm.Anthropic, "tool_use %q input is not valid JSON", b.ID)
				}
			}
			if probe != nil {
				if _, ok := probe.(map[string]any); !ok {
					return nil, nil, translator.Protocol(llm.Anthropic, "tool_use %q input is not a JSON object", b.ID)
				}
			}

			args := b.Input
			if len(args) == 0 {
				args = json.RawMessage("{}")
			}

			out = append(out, llm.ToolCall(b.ID, b.Name, args))

		case "thinking":
			out = append(out, llm.Thinking(b.Text, llm.Anthropic))

		case "redacted_thinking":
			out = append(out, llm.Thinking("<redacted>", llm.Anthropic))
			warnings = append(warnings, warning(warnRedactedThinking, "redacted_thinking block replaced with a placeholder"))

		default:
			out = append(out, llm.Text(b.Text))
			warnings = append(warnings, warning(warnUnknownContentBlock, "unknown content block type "+b.Type))
		}
	}

	return out, warnings, nil
}

func decodeFinishReason(stopReason string) (llm.FinishReason, []llm.RuntimeWarning) {
	switch stopReason {
	case "end_turn", "stop_sequence":
		return llm.FinishStop, nil
	case "max_tokens":
		return llm.FinishLength, nil
	case "tool_use":
		return llm.FinishToolCalls, nil
	case "refusal":
		return llm.FinishContentFilter, []llm.RuntimeWarning{warning(warnRefusalFinish, "provider refused the request")}
	case "pause_turn":
		return llm.FinishOther, []llm.RuntimeWarning{warning(warnPauseTurnFinish, "provider paused mid-turn")}
	default:
		return llm.FinishOther, []llm.RuntimeWarning{warning(warnUnknownFinish, "unrecognized stop_reason "+stopReason)}
	}
}

func decodeUsage(u *wireUsage) (llm.Usage, *llm.RuntimeWarning) {
	if u == nil {
		w := warning(warnUsageMissing, "usage was absent from the response")
		return llm.Usage{}, &w
	}

	billedInput := u.InputTokens + u.CacheCreationInputTokens + u.CacheReadInputTokens
	total := billedInput + u.OutputTokens

	return llm.Usage{
		InputTokens:       &billedInput,
		OutputTokens:      &u.OutputTokens,
		CachedInputTokens: &u.CacheReadInputTokens,
		TotalTokens:       &total,
	}, nil
}
