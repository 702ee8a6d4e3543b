package adapter

import (
	"context"

	"github.com/squee72564/provider-runtime/llm"
	"github.com/squee72564/provider-runtime/llm/auth"
	"github.com/squee72564/provider-runtime/llm/httpclient"
	"github.com/squee72564/provider-runtime/llm/translator"
	"github.com/squee72564/provider-runtime/llm/translator/openai"
)

// OpenAIAdapter wraps openai.Translator with auth, transport, and error classification
// for the Responses API.
type OpenAIAdapter struct {
	BaseURL    string
	Client     *httpclient.Client
	Credential auth.CredentialResolver
	Translator openai.Translator
}

// NewOpenAIAdapter builds an OpenAIAdapter with the provider's default endpoint and an
// env-fallback credential resolver.
func NewOpenAIAdapter(client *httpclient.Client, provider auth.APIKeyProvider, envFallback bool) *OpenAIAdapter {
	return &OpenAIAdapter{
		BaseURL: "https://api.openai.com",
		Client:  client,
		Credential: auth.CredentialResolver{
			Provider:      provider,
			EnvCandidates: []string{"OPENAI_API_KEY"},
			EnvFallback:   envFallback,
		},
	}
}

func (a *OpenAIAdapter) Provider() llm.ProviderId { return llm.Openai }

func (a *OpenAIAdapter) Capabilities() llm.ProviderCapabilities {
	return llm.ProviderCapabilities{
		SupportsTools:            true,
		SupportsStructuredOutput: true,
		SupportsThinking:         true,
		SupportsRemoteDiscovery:  true,
	}
}

func (a *OpenAIAdapter) Run(ctx context.Context, req llm.ProviderRequest) (*llm.ProviderResponse, error) {
	apiKey, err := a.Credential.Resolve(ctx, llm.Openai, req.Metadata)
	if err != nil {
		return nil, err
	}

	wire, warnings, err := a.Translator.Encode(req)
	if err != nil {
		return nil, err
	}

	httpReq := buildRequest("POST", translator.JoinURL(a.BaseURL, "/v1/responses"), wire, apiKey,
		httpclient.AuthConfig{Type: httpclient.AuthTypeBearer}, nil)

	httpResp, err := a.Client.Do(ctx, httpReq)
	if err != nil {
		return nil, httpErrorToLLM(llm.Openai, req.Model.ModelID, err)
	}

	resp, err := a.Translator.Decode(httpResp.Body, llm.RequestContext{ResponseFormat: req.ResponseFormat})
	if err != nil {
		return nil, err
	}

	resp.Warnings = append(append([]llm.RuntimeWarning{}, warnings...), resp.Warnings...)

	return resp, nil
}

func (a *OpenAIAdapter) DiscoverModels(ctx context.Context, opts DiscoverOptions) ([]llm.ModelInfo, error) {
	apiKey, err := a.Credential.Resolve(ctx, llm.Openai, nil)
	if err != nil {
		return nil, err
	}

	httpReq := buildRequest("GET", translator.JoinURL(a.BaseURL, "/v1/models"), nil, apiKey,
		httpclient.AuthConfig{Type: httpclient.AuthTypeBearer}, nil)

	httpResp, err := a.Client.Do(ctx, httpReq)
	if err != nil {
		return nil, httpErrorToLLM(llm.Openai, "", err)
	}

	return decodeModelList(llm.Openai, httpResp.Body)
}
