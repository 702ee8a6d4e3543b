package adapter

import (
	"context"

	"github.com/squee72564/provider-runtime/llm"
	"github.com/squee72564/provider-runtime/llm/auth"
	"github.com/squee72564/provider-runtime/llm/httpclient"
	"github.com/squee72564/provider-runtime/llm/translator"
	"github.com/squee72564/provider-runtime/llm/translator/openrouter"
)

// OpenRouterAdapter wraps openrouter.Translator with auth, transport, and error
// classification for the Chat Completions API.
type OpenRouterAdapter struct {
	BaseURL    string
	Client     *httpclient.Client
	Credential auth.CredentialResolver
	Translator openrouter.Translator
}

func NewOpenRouterAdapter(client *httpclient.Client, provider auth.APIKeyProvider, envFallback bool) *OpenRouterAdapter {
	return &OpenRouterAdapter{
		BaseURL: "https://openrouter.ai",
		Client:  client,
		Credential: auth.CredentialResolver{
			Provider:      provider,
			EnvCandidates: []string{"OPENROUTER_API_KEY"},
			EnvFallback:   envFallback,
		},
	}
}

func (a *OpenRouterAdapter) Provider() llm.ProviderId { return llm.Openrouter }

func (a *OpenRouterAdapter) Capabilities() llm.ProviderCapabilities {
	return llm.ProviderCapabilities{
		SupportsTools:            true,
		SupportsStructuredOutput: true,
		SupportsThinking:         true,
		SupportsRemoteDiscovery:  true,
	}
}

func (a *OpenRouterAdapter) Run(ctx context.Context, req llm.ProviderRequest) (*llm.ProviderResponse, error) {
	apiKey, err := a.Credential.Resolve(ctx, llm.Openrouter, req.Metadata)
	if err != nil {
		return nil, err
	}

	wire, warnings, err := a.Translator.Encode(req)
	if err != nil {
		return nil, err
	}

	httpReq := buildRequest("POST", translator.JoinURL(a.BaseURL, "/api/v1/chat/completions"), wire, apiKey,
		httpclient.AuthConfig{Type: httpclient.AuthTypeBearer}, nil)

	httpResp, err := a.Client.Do(ctx, httpReq)
	if err != nil {
		return nil, httpErrorToLLM(llm.Openrouter, req.Model.ModelID, err)
	}

	resp, err := a.Translator.Decode(httpResp.Body, llm.RequestContext{ResponseFormat: req.ResponseFormat})
	if err != nil {
		return nil, err
	}

	resp.Warnings = append(append([]llm.RuntimeWarning{}, warnings...), resp.Warnings...)

	return resp, nil
}

func (a *OpenRouterAdapter) DiscoverModels(ctx context.Context, opts DiscoverOptions) ([]llm.ModelInfo, error) {
	apiKey, err := a.Credential.Resolve(ctx, llm.Openrouter, nil)
	if err != nil {
		return nil, err
	}

	httpReq := buildRequest("GET", translator.JoinURL(a.BaseURL, "/api/v1/models"), nil, apiKey,
		httpclient.AuthConfig{Type: httpclient.AuthTypeBearer}, nil)

	httpResp, err := a.Client.Do(ctx, httpReq)
	if err != nil {
		return nil, httpErrorToLLM(llm.Openrouter, "", err)
	}

	return decodeModelList(llm.Openrouter, httpResp.Body)
}
