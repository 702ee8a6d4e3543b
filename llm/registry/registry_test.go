package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/squee72564/provider-runtime/llm"
	"github.com/squee72564/provider-runtime/llm/adapter"
)

type fakeAdapter struct {
	pid          llm.ProviderId
	discoverable bool
	models       []llm.ModelInfo
	discoverErr  error
}

func (f *fakeAdapter) Provider() llm.ProviderId { return f.pid }

func (f *fakeAdapter) Capabilities() llm.ProviderCapabilities {
	return llm.ProviderCapabilities{SupportsRemoteDiscovery: f.discoverable}
}

func (f *fakeAdapter) Run(ctx context.Context, req llm.ProviderRequest) (*llm.ProviderResponse, error) {
	return &llm.ProviderResponse{Provider: f.pid, Model: req.Model.ModelID}, nil
}

func (f *fakeAdapter) DiscoverModels(ctx context.Context, opts adapter.DiscoverOptions) ([]llm.ModelInfo, error) {
	if f.discoverErr != nil {
		return nil, f.discoverErr
	}
	return f.models, nil
}

func TestResolveProvider_HintWins(t *testing.T) {
	r := New([]adapter.Adapter{&fakeAdapter{pid: llm.Openai}, &fakeAdapter{pid: llm.Anthropic}},
		llm.Catalog{}, llm.Anthropic)

	hint := llm.Openai
	pid, err := r.ResolveProvider(llm.ModelRef{ProviderHint: &hint, ModelID: "any-model"})

	require.NoError(t, err)
	require.Equal(t, llm.Openai, pid)
}

func TestResolveProvider_HintNotRegistered(t *testing.T) {
	r := New([]adapter.Adapter{&fakeAdapter{pid: llm.Openai}}, llm.Catalog{}, "")

	hint := llm.Anthropic
	_, err := r.ResolveProvider(llm.ModelRef{ProviderHint: &hint, ModelID: "m"})

	var routingErr *llm.RoutingError
	require.ErrorAs(t, err, &routingErr)
	require.Equal(t, llm.RoutingProviderNotRegistered, routingErr.Reason)
}

func TestResolveProvider_CatalogSingleMatch(t *testing.T) {
	catalog := llm.MergeStaticAndRemoteCatalog([]llm.ModelInfo{{Provider: llm.Anthropic, ModelID: "claude-opus"}}, nil)
	r := New([]adapter.Adapter{&fakeAdapter{pid: llm.Anthropic}}, catalog, "")

	pid, err := r.ResolveProvider(llm.ModelRef{ModelID: "claude-opus"})

	require.NoError(t, err)
	require.Equal(t, llm.Anthropic, pid)
}

func TestResolveProvider_AmbiguousModel(t *testing.T) {
	catalog := llm.MergeStaticAndRemoteCatalog([]llm.ModelInfo{
		{Provider: llm.Openai, ModelID: "shared"},
		{Provider: llm.Anthropic, ModelID: "shared"},
	}, nil)
	r := New([]adapter.Adapter{&fakeAdapter{pid: llm.Openai}, &fakeAdapter{pid: llm.Anthropic}}, catalog, "")

	_, err := r.ResolveProvider(llm.ModelRef{ModelID: "shared"})

	var routingErr *llm.RoutingError
	require.ErrorAs(t, err, &routingErr)
	require.Equal(t, llm.RoutingAmbiguousModel, routingErr.Reason)
}

func TestResolveProvider_UnknownModelFallsBackToDefault(t *testing.T) {
	r := New([]adapter.Adapter{&fakeAdapter{pid: llm.Openai}}, llm.Catalog{}, llm.Openai)

	pid, err := r.ResolveProvider(llm.ModelRef{ModelID: "never-seen"})

	require.NoError(t, err)
	require.Equal(t, llm.Openai, pid)
}

func TestResolveProvider_UnknownModelNoDefault(t *testing.T) {
	r := New([]adapter.Adapter{&fakeAdapter{pid: llm.Openai}}, llm.Catalog{}, "")

	_, err := r.ResolveProvider(llm.ModelRef{ModelID: "never-seen"})

	var routingErr *llm.RoutingError
	require.ErrorAs(t, err, &routingErr)
	require.Equal(t, llm.RoutingUnknownModel, routingErr.Reason)
}

func TestDiscoverModels_OneFailureBecomesWarningNotAbort(t *testing.T) {
	r := New([]adapter.Adapter{
		&fakeAdapter{pid: llm.Openai, discoverable: true, models: []llm.ModelInfo{{Provider: llm.Openai, ModelID: "gpt-5"}}},
		&fakeAdapter{pid: llm.Anthropic, discoverable: true, discoverErr: errors.New("boom")},
		&fakeAdapter{pid: llm.Openrouter, discoverable: false},
	}, llm.Catalog{}, "")

	catalog, warnings, err := r.DiscoverModels(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Equal(t, "discovery_failed", warnings[0].Code)
	require.Len(t, catalog.Models(), 1)
	require.Equal(t, "gpt-5", catalog.Models()[0].ModelID)
}
