package translator

// IsStrictCompatible walks a JSON Schema document (already decoded into Go values by
// encoding/json, i.e. map[string]any/[]any/string/float64/bool/nil) and reports whether
// it satisfies OpenAI's `strict` mode: every object-typed (sub)schema
// sets `additionalProperties: false` and `required` equals its full property key set,
// recursively. A schema using `anyOf`/`oneOf`/`allOf` anywhere is never strict.
func IsStrictCompatible(schema map[string]any) bool {
	if _, ok := schema["anyOf"]; ok {
		return false
	}
	if _, ok := schema["oneOf"]; ok {
		return false
	}
	if _, ok := schema["allOf"]; ok {
		return false
	}

	props, hasProps := schema["properties"].(map[string]any)
	if hasProps || schema["type"] == "object" {
		addl, ok := schema["additionalProperties"].(bool)
		if !ok || addl != false {
			return false
		}

		required, _ := schema["required"].([]any)
		requiredSet := make(map[string]bool, len(required))
		for _, r := range required {
			if s, ok := r.(string); ok {
				requiredSet[s] = true
			}
		}

		if len(requiredSet) != len(props) {
			return false
		}

		for key, sub := range props {
			if !requiredSet[key] {
				return false
			}

			if subSchema, ok := sub.(map[string]any); ok {
				if !IsStrictCompatible(subSchema) {
					return false
				}
			}
		}
	}

	if items, ok := schema["items"].(map[string]any); ok {
		if !IsStrictCompatible(items) {
			return false
		}
	}

	return true
}
