// Package handoff implements the pure message transform for cross-provider
// conversation history.
package handoff

import "github.com/squee72564/provider-runtime/llm"

// NormalizeHandoffMessages rewrites messages so they are safe to hand to target.
// Same-provider Thinking parts pass through unchanged; a Thinking part produced by a
// different provider is converted to plain Text wrapped in <thinking>...</thinking>
// tags. User, tool, tool-call, and tool-result content pass through untouched.
// Idempotent: calling it twice with the same target yields the same result.
func NormalizeHandoffMessages(messages []llm.Message, target llm.ProviderId) []llm.Message {
	out := make([]llm.Message, len(messages))

	for i, m := range messages {
		out[i] = llm.Message{Role: m.Role, Content: normalizeContent(m.Content, target)}
	}

	return out
}

func normalizeContent(parts []llm.ContentPart, target llm.ProviderId) []llm.ContentPart {
	out := make([]llm.ContentPart, len(parts))

	for i, p := range parts {
		switch p.Kind {
		case llm.ContentThinking:
			if p.Thinking.Provider == target {
				out[i] = p
			} else {
				out[i] = llm.Text("<thinking>" + p.Thinking.Text + "</thinking>")
			}

		case llm.ContentToolResult:
			out[i] = llm.ToolResult(p.ToolResult.ToolCallID, normalizeContent(p.ToolResult.Content, target))

		default:
			out[i] = p
		}
	}

	return out
}
