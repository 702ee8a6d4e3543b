package adapter

import (
	"context"

	"github.com/squee72564/provider-runtime/llm"
	"github.com/squee72564/provider-runtime/llm/auth"
	"github.com/squee72564/provider-runtime/llm/httpclient"
	"github.com/squee72564/provider-runtime/llm/translator"
	"github.com/squee72564/provider-runtime/llm/translator/anthropic"
)

// AnthropicAdapter wraps anthropic.Translator with auth, transport, and error
// classification for the Messages API.
type AnthropicAdapter struct {
	BaseURL    string
	Client     *httpclient.Client
	Credential auth.CredentialResolver
	Translator anthropic.Translator
}

func NewAnthropicAdapter(client *httpclient.Client, provider auth.APIKeyProvider, envFallback bool) *AnthropicAdapter {
	return &AnthropicAdapter{
		BaseURL: "https://api.anthropic.com",
		Client:  client,
		Credential: auth.CredentialResolver{
			Provider:      provider,
			EnvCandidates: []string{"ANTHROPIC_API_KEY"},
			EnvFallback:   envFallback,
		},
	}
}

func (a *AnthropicAdapter) Provider() llm.ProviderId { return llm.Anthropic }

func (a *AnthropicAdapter) Capabilities() llm.ProviderCapabilities {
	return llm.ProviderCapabilities{
		SupportsTools:            true,
		SupportsStructuredOutput: true,
		SupportsThinking:         true,
		SupportsRemoteDiscovery:  false,
	}
}

func (a *AnthropicAdapter) Run(ctx context.Context, req llm.ProviderRequest) (*llm.ProviderResponse, error) {
	apiKey, err := a.Credential.Resolve(ctx, llm.Anthropic, req.Metadata)
	if err != nil {
		return nil, err
	}

	wire, warnings, err := a.Translator.Encode(req)
	if err != nil {
		return nil, err
	}

	httpReq := buildRequest("POST", translator.JoinURL(a.BaseURL, "/v1/messages"), wire, apiKey,
		httpclient.AuthConfig{Type: httpclient.AuthTypeAPIKey, HeaderKey: "x-api-key"},
		map[string]string{"anthropic-version": "2023-06-01"})

	httpResp, err := a.Client.Do(ctx, httpReq)
	if err != nil {
		return nil, httpErrorToLLM(llm.Anthropic, req.Model.ModelID, err)
	}

	resp, err := a.Translator.Decode(httpResp.Body, llm.RequestContext{ResponseFormat: req.ResponseFormat})
	if err != nil {
		return nil, err
	}

	resp.Warnings = append(append([]llm.RuntimeWarning{}, warnings...), resp.Warnings...)

	return resp, nil
}

// DiscoverModels has no remote endpoint for Anthropic in this module.
func (a *AnthropicAdapter) DiscoverModels(ctx context.Context, opts DiscoverOptions) ([]llm.ModelInfo, error) {
	return nil, &llm.CapabilityMismatch{Provider: llm.Anthropic, RequestedCapability: "remote_discovery"}
}
