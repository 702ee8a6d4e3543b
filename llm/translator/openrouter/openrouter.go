package openrouter

import "github.com/squee72564/provider-runtime/llm"

// Translator implements translator.Translator for OpenRouter's Chat Completions API.
type Translator struct{}

func (Translator) Encode(req llm.ProviderRequest) ([]byte, []llm.RuntimeWarning, error) {
	return Encode(req)
}

func (Translator) Decode(wire []byte, reqCtx llm.RequestContext) (*llm.ProviderResponse, error) {
	return Decode(wire, reqCtx)
}
