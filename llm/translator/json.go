package translator

import "encoding/json"

// CanonicalJSON re-marshals raw into a byte-identical-across-calls form: object keys
// sorted (encoding/json already sorts map[string]... keys on Marshal), no insignificant
// whitespace. Used whenever a translator must emit tool-call arguments as a JSON string
// with deterministic key order.
func CanonicalJSON(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 {
		return json.RawMessage("{}"), nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}

	return json.Marshal(v)
}

// CanonicalJSONString is CanonicalJSON rendered as a Go string, the shape OpenAI and
// OpenRouter both want for a stringified arguments field.
func CanonicalJSONString(raw json.RawMessage) (string, error) {
	b, err := CanonicalJSON(raw)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
