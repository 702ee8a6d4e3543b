package anthropic

import "github.com/squee72564/provider-runtime/llm"

const (
	warnDroppedUnsupportedMetadataKeys = "dropped_unsupported_metadata_keys"
	warnDroppedThinkingOnEncode        = "dropped_thinking_on_encode"
	warnDefaultMaxTokensApplied        = "default_max_tokens_applied"
	warnBothTemperatureAndTopP         = "both_temperature_and_top_p_set"
	warnRedactedThinking               = "redacted_thinking"
	warnUnknownContentBlock            = "unknown_content_block"
	warnRefusalFinish                  = "refusal_finish"
	warnPauseTurnFinish                = "pause_turn_finish"
	warnUnknownFinish                  = "unknown_finish_reason"
	warnUsageMissing                   = "usage_missing"
	warnStructuredOutputParseFail      = "structured_output_parse_failed"
)

func warning(code, message string) llm.RuntimeWarning {
	return llm.RuntimeWarning{Code: code, Message: message}
}
