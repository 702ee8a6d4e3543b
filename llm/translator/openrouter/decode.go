package openrouter

import (
	"encoding/json"

	"github.com/squee72564/provider-runtime/llm"
	"github.com/squee72564/provider-runtime/llm/internal/pkg/xjson"
	"github.com/squee72564/provider-runtime/llm/translator"
)

// Decode implements translator.Translator for OpenRouter's Chat Completions API.
// A 200 OK response carrying an embedded error is always treated as a protocol
// error rather than a successful response.
func Decode(wire []byte, reqCtx llm.RequestContext) (*llm.ProviderResponse, error) {
	var resp wireResponse
	if err := json.Unmarshal(wire, &resp); err != nil {
		return nil, &llm.Serialization{Location: llm.SerializationDecode, Message: err.Error()}
	}

	if resp.Error != nil {
		return nil, translator.Protocol(llm.Openrouter, "%s", resp.Error.Message)
	}

	if len(resp.Choices) == 0 {
		return nil, translator.Protocol(llm.Openrouter, "response contained no choices")
	}

	choice := resp.Choices[0]

	if choice.Error != nil {
		return nil, translator.Protocol(llm.Openrouter, "%s", choice.Error.Message)
	}

	if choice.FinishReason != nil && *choice.FinishReason == "error" {
		return nil, translator.Protocol(llm.Openrouter, "choice finish_reason was \"error\"")
	}

	var warnings []llm.RuntimeWarning

	var content []llm.ContentPart

	if choice.Message.Content != nil {
		content = append(content, llm.Text(*choice.Message.Content))
	}

	for _, tc := range choice.Message.ToolCalls {
		args := xjson.SafeJSONRawMessage(tc.Function.Arguments)
		if !json.Valid([]byte(tc.Function.Arguments)) {
			warnings = append(warnings, warning(warnToolArgumentsInvalidJSON,
				"tool_call "+tc.ID+" arguments were not valid JSON"))
		}

		content = append(content, llm.ToolCall(tc.ID, tc.Function.Name, args))
	}

	if choice.Message.Reasoning != "" {
		content = append(content, llm.Thinking(choice.Message.Reasoning, llm.Openrouter))
	}

	finishReason, finishWarning := decodeFinishReason(choice.FinishReason)
	if finishWarning != nil {
		warnings = append(warnings, *finishWarning)
	}

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
		Provider:     llm.Openrouter,
		Model:        resp.Model,
		FinishReason: finishReason,
		Warnings:     warnings,
	}, nil
}

func decodeFinishReason(reason *string) (llm.FinishReason, *llm.RuntimeWarning) {
	if reason == nil {
		w := warning(warnUnknownFinish, "finish_reason was absent")
		return llm.FinishOther, &w
	}

	switch *reason {
	case "stop":
		return llm.FinishStop, nil
	case "length":
		return llm.FinishLength, nil
	case "tool_calls":
		return llm.FinishToolCalls, nil
	case "content_filter":
		return llm.FinishContentFilter, nil
	default:
		w := warning(warnUnknownFinish, "unrecognized finish_reason "+*reason)
		return llm.FinishOther, &w
	}
}

func decodeUsage(u *wireUsage) (llm.Usage, *llm.RuntimeWarning) {
	if u == nil {
		w := warning(warnUsageMissing, "usage was absent from the response")
		return llm.Usage{}, &w
	}

	usage := llm.Usage{
		InputTokens:  &u.PromptTokens,
		OutputTokens: &u.CompletionTokens,
		TotalTokens:  &u.TotalTokens,
	}

	if u.PromptTokensDetails != nil {
		usage.CachedInputTokens = &u.PromptTokensDetails.CachedTokens
	}
	if u.CompletionTokensDetails != nil {
		usage.ReasoningTokens = &u.CompletionTokensDetails.ReasoningTokens
	}

	return usage, nil
}
