package openrouter

import "github.com/squee72564/provider-runtime/llm"

const (
	warnBothTemperatureAndTopP    = "both_temperature_and_top_p_set"
	warnToolArgumentsInvalidJSON  = "tool_arguments_invalid_json"
	warnUsageMissing              = "usage_missing"
	warnUnknownFinish             = "unknown_finish_reason"
	warnStructuredOutputParseFail = "structured_output_parse_failed"
)

func warning(code, message string) llm.RuntimeWarning {
	return llm.RuntimeWarning{Code: code, Message: message}
}
