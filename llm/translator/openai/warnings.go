package openai

import "github.com/squee72564/provider-runtime/llm"

// Warning codes this translator emits, enumerated centrally rather than scattered
// as string literals at each call site.
const (
	warnToolSchemaStrictDisabled  = "tool_schema_strict_disabled"
	warnDroppedThinkingOnEncode   = "dropped_thinking_on_encode"
	warnBothTemperatureAndTopP    = "both_temperature_and_top_p_set"
	warnToolArgumentsInvalidJSON  = "tool_arguments_invalid_json"
	warnUsageMissing              = "usage_missing"
	warnStructuredOutputParseFail = "structured_output_parse_failed"
	warnUnexpectedIncompleteOther = "unexpected_incomplete_status"
)

func warning(code, message string) llm.RuntimeWarning {
	return llm.RuntimeWarning{Code: code, Message: message}
}
