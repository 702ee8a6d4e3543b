package openai

import "github.com/squee72564/provider-runtime/llm"

// Translator implements translator.Translator for OpenAI's Responses API.
type Translator struct{}

func (Translator) Encode(req llm.ProviderRequest) ([]byte, []llm.RuntimeWarning, error) {
	return Encode(req)
}

func (Translator) Decode(wire []byte, reqCtx llm.RequestContext) (*llm.ProviderResponse, error) {
	return Decode(wire, reqCtx)
}
