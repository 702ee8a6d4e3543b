// Package llm defines the canonical, provider-agnostic request/response schema shared
// by every translator, adapter, and the runtime. Values in this package are immutable
// once produced; nothing here performs I/O.
package llm

import "fmt"

// ProviderId is the closed set of providers this module knows how to route to.
type ProviderId string

const (
	Openai     ProviderId = "openai"
	Anthropic  ProviderId = "anthropic"
	Openrouter ProviderId = "openrouter"
)

// String implements fmt.Stringer.
func (p ProviderId) String() string {
	return string(p)
}

// Valid reports whether p is a member of the closed ProviderId set.
func (p ProviderId) Valid() bool {
	switch p {
	case Openai, Anthropic, Openrouter:
		return true
	default:
		return false
	}
}

// ModelRef identifies the model a request targets, optionally hinting at the provider
// that should serve it.
type ModelRef struct {
	ProviderHint *ProviderId `json:"provider_hint,omitempty"`
	ModelID      string      `json:"model_id"`
}

// Validate checks the invariants placed on ModelRef.
func (m ModelRef) Validate() error {
	if m.ModelID == "" {
		return fmt.Errorf("model_id must not be empty")
	}

	if m.ProviderHint != nil && !m.ProviderHint.Valid() {
		return fmt.Errorf("provider_hint %q is not a known provider", *m.ProviderHint)
	}

	return nil
}

// Role identifies the speaker of a Message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is a single turn in the canonical conversation, carrying an ordered sequence
// of content parts.
type Message struct {
	Role    Role          `json:"role"`
	Content []ContentPart `json:"content"`
}

// Metadata is the ordered key-value mapping carried on a ProviderRequest. Insertion
// order does not matter: it is always serialized with sorted keys.
type Metadata map[string]string
