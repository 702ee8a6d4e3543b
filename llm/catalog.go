package llm

import (
	"bytes"
	"encoding/json"
	"sort"
)

// ModelInfo describes one model a provider can serve, as returned by discovery or
// supplied statically to a Catalog.
type ModelInfo struct {
	Provider     ProviderId `json:"provider"`
	ModelID      string     `json:"model_id"`
	DisplayName  string     `json:"display_name,omitempty"`
	ContextLimit int64      `json:"context_limit,omitempty"`
}

// ProviderCapabilities declares what a registered adapter supports, consulted by the
// registry and runtime before routing a request that needs a specific capability.
type ProviderCapabilities struct {
	SupportsTools             bool `json:"supports_tools"`
	SupportsStructuredOutput  bool `json:"supports_structured_output"`
	SupportsThinking          bool `json:"supports_thinking"`
	SupportsRemoteDiscovery   bool `json:"supports_remote_discovery"`
}

// Catalog is the deterministic, sorted view of every model known across providers,
// produced by MergeStaticAndRemoteCatalog. It is immutable once built.
type Catalog struct {
	models []ModelInfo
}

// catalogKey identifies a model within a single provider's namespace.
type catalogKey struct {
	provider ProviderId
	modelID  string
}

// MergeStaticAndRemoteCatalog combines a caller-supplied static list with optional
// per-provider discovery results. On a (provider, model_id) conflict the static entry
// wins.
func MergeStaticAndRemoteCatalog(static []ModelInfo, remote []ModelInfo) Catalog {
	byKey := make(map[catalogKey]ModelInfo, len(static)+len(remote))

	for _, m := range remote {
		byKey[catalogKey{m.Provider, m.ModelID}] = m
	}
	for _, m := range static {
		byKey[catalogKey{m.Provider, m.ModelID}] = m
	}

	models := make([]ModelInfo, 0, len(byKey))
	for _, m := range byKey {
		models = append(models, m)
	}

	sort.Slice(models, func(i, j int) bool {
		if models[i].Provider != models[j].Provider {
			return models[i].Provider < models[j].Provider
		}
		return models[i].ModelID < models[j].ModelID
	})

	return Catalog{models: models}
}

// Models returns the catalog's models in sorted (provider, model_id) order.
func (c Catalog) Models() []ModelInfo {
	out := make([]ModelInfo, len(c.models))
	copy(out, c.models)
	return out
}

// ProvidersForModel returns every provider that serves modelID, in sorted order. A
// length > 1 result is what makes a provider_hint-less resolution ambiguous.
func (c Catalog) ProvidersForModel(modelID string) []ProviderId {
	var out []ProviderId
	for _, m := range c.models {
		if m.ModelID == modelID {
			out = append(out, m.Provider)
		}
	}
	return out
}

// ExportJSON renders the catalog as stable UTF-8, sorted-key, 2-space-indented JSON
//.
func (c Catalog) ExportJSON() (string, error) {
	flat, err := json.Marshal(c.models)
	if err != nil {
		return "", &Serialization{Location: SerializationEncode, Message: err.Error()}
	}

	// Re-decode into generic maps so the indented output carries sorted object keys.
	var generic any
	dec := json.NewDecoder(bytes.NewReader(flat))
	dec.UseNumber()
	if err := dec.Decode(&generic); err != nil {
		return "", &Serialization{Location: SerializationEncode, Message: err.Error()}
	}

	b, err := json.MarshalIndent(generic, "", "  ")
	if err != nil {
		return "", &Serialization{Location: SerializationEncode, Message: err.Error()}
	}
	return string(b), nil
}
