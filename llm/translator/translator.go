// Package translator defines the pure encode/decode contract each provider package
// implements, plus the helpers shared by all three implementations.
package translator

import (
	"github.com/squee72564/provider-runtime/llm"
)

// Translator is the pure function pair every provider package implements. Neither
// Encode nor Decode performs I/O or depends on the registry, runtime, or pricing.
type Translator interface {
	// Encode turns a canonical request into a provider wire payload. Equal requests
	// must produce byte-identical payloads.
	Encode(req llm.ProviderRequest) (wire []byte, warnings []llm.RuntimeWarning, err error)

	// Decode turns a provider wire payload back into a canonical response. reqCtx
	// carries the originally requested ResponseFormat so structured output can be
	// parsed without a parallel side channel.
	Decode(wire []byte, reqCtx llm.RequestContext) (*llm.ProviderResponse, error)
}
