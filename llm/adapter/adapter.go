// Package adapter is the thin orchestration layer wrapping auth header
// injection, capability declaration, a transport call, and translator invocation for
// one provider.
package adapter

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/squee72564/provider-runtime/llm"
	"github.com/squee72564/provider-runtime/llm/httpclient"
)

// DiscoverOptions parameterizes Adapter.DiscoverModels. Empty today; reserved for
// per-provider discovery filters.
type DiscoverOptions struct{}

// Adapter is what the Registry holds one instance of per provider for the runtime's
// lifetime.
type Adapter interface {
	Provider() llm.ProviderId
	Capabilities() llm.ProviderCapabilities
	Run(ctx context.Context, req llm.ProviderRequest) (*llm.ProviderResponse, error)
	DiscoverModels(ctx context.Context, opts DiscoverOptions) ([]llm.ModelInfo, error)
}

// httpErrorToLLM maps an httpclient-layer failure onto the llm error taxonomy
//: 401 → CredentialsRejected; other 4xx/5xx with a JSON body →
// ProviderProtocol{Status, RequestID, Message}; connection/timeout/cancel → Transport;
// malformed body → Serialization.
func httpErrorToLLM(pid llm.ProviderId, model string, err error) error {
	type statusErr interface {
		error
		StatusCode() int
		Body() []byte
	}
	type transportErr interface {
		error
		Kind() string
	}

	if se, ok := err.(statusErr); ok {
		if se.StatusCode() == 401 {
			return &llm.CredentialsRejected{Provider: pid, Message: string(se.Body())}
		}

		msg := string(se.Body())

		var envelope struct {
			Error struct {
				Message   string `json:"message"`
				RequestID string `json:"request_id"`
			} `json:"error"`
		}
		if json.Unmarshal(se.Body(), &envelope) == nil && envelope.Error.Message != "" {
			return &llm.ProviderProtocol{
				Provider:  pid,
				Status:    se.StatusCode(),
				RequestID: envelope.Error.RequestID,
				Model:     model,
				Message:   envelope.Error.Message,
			}
		}

		return &llm.ProviderProtocol{Provider: pid, Status: se.StatusCode(), Model: model, Message: msg}
	}

	if te, ok := err.(transportErr); ok {
		var kind llm.TransportKind
		switch te.Kind() {
		case "connect":
			kind = llm.TransportConnect
		case "timeout":
			kind = llm.TransportTimeout
		case "cancelled":
			kind = llm.TransportCancelled
		default:
			kind = llm.TransportIO
		}

		return &llm.Transport{Kind: kind, Message: te.Error()}
	}

	return &llm.Serialization{Location: llm.SerializationDecode, Message: err.Error()}
}

// buildRequest is the shared scaffolding every provider adapter uses to turn an
// encoded wire payload into an httpclient.Request.
func buildRequest(method, url string, body []byte, apiKey string, auth httpclient.AuthConfig, headers map[string]string) *httpclient.Request {
	hdr := make(http.Header, len(headers))
	for k, v := range headers {
		hdr.Set(k, v)
	}

	auth.APIKey = apiKey

	return &httpclient.Request{
		Method:      method,
		URL:         url,
		ContentType: "application/json",
		Body:        body,
		Auth:        &auth,
		Headers:     hdr,
	}
}
