package openai

import (
	"encoding/json"

	"github.com/squee72564/provider-runtime/llm"
	"github.com/squee72564/provider-runtime/llm/internal/pkg/xjson"
	"github.com/squee72564/provider-runtime/llm/translator"
)

// Decode implements translator.Translator for OpenAI's Responses API.
func Decode(wire []byte, reqCtx llm.RequestContext) (*llm.ProviderResponse, error) {
	var resp wireResponse
	if err := json.Unmarshal(wire, &resp); err != nil {
		return nil, &llm.Serialization{Location: llm.SerializationDecode, Message: err.Error()}
	}

	if resp.Error != nil {
		return nil, translator.Protocol(llm.Openai, "%s", resp.Error.Message)
	}

	switch resp.Status {
	case "failed", "cancelled", "queued", "in_progress":
		return nil, translator.Protocol(llm.Openai, "response status %q", resp.Status)
	}

	var warnings []llm.RuntimeWarning

	content := make([]llm.ContentPart, 0, len(resp.Output))
	trailingToolCall := false

	for _, item := range resp.Output {
		switch item.Type {
		case "message":
			for _, c := range item.Content {
				if c.Type != "output_text" {
					return nil, translator.Protocol(llm.Openai, "unsupported message content type %q", c.Type)
				}
				content = append(content, llm.Text(c.Text))
			}
			trailingToolCall = false

		case "function_call":
			args := xjson.SafeJSONRawMessage(item.Arguments)
			if !json.Valid([]byte(item.Arguments)) {
				warnings = append(warnings, warning(warnToolArgumentsInvalidJSON,
					"function_call "+item.CallID+" arguments were not valid JSON"))
			}

			content = append(content, llm.ToolCall(item.CallID, item.Name, args))
			trailingToolCall = true

		case "reasoning":
			var text string
			for _, s := range item.Summary {
				text += s.Text
			}
			content = append(content, llm.Thinking(text, llm.Openai))
			trailingToolCall = false

		default:
			return nil, translator.Protocol(llm.Openai, "unknown output item type %q", item.Type)
		}
	}

	finishReason := llm.FinishStop

	switch {
	case resp.Status == "incomplete" && resp.IncompleteDetails != nil && resp.IncompleteDetails.Reason == "max_output_tokens":
		finishReason = llm.FinishLength
	case resp.Status == "incomplete" && resp.IncompleteDetails != nil && resp.IncompleteDetails.Reason == "content_filter":
		finishReason = llm.FinishContentFilter
	case resp.Status == "incomplete":
		finishReason = llm.FinishOther
		warnings = append(warnings, warning(warnUnexpectedIncompleteOther, "incomplete response with unrecognized reason"))
	case resp.Status == "completed" && trailingToolCall:
		finishReason = llm.FinishToolCalls
	}

	usage, usageWarning := decodeUsage(resp.Usage)
	if usageWarning != nil {
		warnings = append(warnings, *usageWarning)
	}

	output := llm.AssistantOutput{Content: content}

	if !reqCtx.ResponseFormat.IsText() {
		text := llm.JoinText(content)

		var parsed json.RawMessage
		if json.Valid([]byte(text)) {
			parsed = json.RawMessage(text)
			output.StructuredOutput = parsed
		} else {
			warnings = append(warnings, warning(warnStructuredOutputParseFail, "structured output text was not valid JSON"))
		}
	}

	return &llm.ProviderResponse{
		Output:       output,
		Usage:        usage,
		Provider:     llm.Openai,
		Model:        resp.Model,
		FinishReason: finishReason,
		Warnings:     warnings,
	}, nil
}

func decodeUsage(u *wireUsage) (llm.Usage, *llm.RuntimeWarning) {
	if u == nil {
		w := warning(warnUsageMissing, "usage was absent from the response")
		return llm.Usage{}, &w
	}

	usage := llm.Usage{
		InputTokens:  ptrInt64(u.InputTokens),
		OutputTokens: ptrInt64(u.OutputTokens),
		TotalTokens:  ptrInt64(u.TotalTokens),
	}

	if u.OutputTokensDetails != nil {
		usage.ReasoningTokens = ptrInt64(u.OutputTokensDetails.ReasoningTokens)
	}
	if u.InputTokensDetails != nil {
		usage.CachedInputTokens = ptrInt64(u.InputTokensDetails.CachedTokens)
	}

	return usage, nil
}

func ptrInt64(v int64) *int64 {
	return &v
}
