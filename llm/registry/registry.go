// Package registry resolves a ModelRef to a registered Adapter with deterministic
// precedence.
package registry

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/squee72564/provider-runtime/llm"
	"github.com/squee72564/provider-runtime/llm/adapter"
)

// Registry owns adapter instances for the runtime's lifetime and never touches
// pricing or translation.
type Registry struct {
	adapters        map[llm.ProviderId]adapter.Adapter
	catalog         llm.Catalog
	defaultProvider llm.ProviderId
}

// New builds a Registry from a fixed set of adapters, a precomputed catalog (for
// model→provider resolution), and a configured default provider.
func New(adapters []adapter.Adapter, catalog llm.Catalog, defaultProvider llm.ProviderId) *Registry {
	m := make(map[llm.ProviderId]adapter.Adapter, len(adapters))
	for _, a := range adapters {
		m[a.Provider()] = a
	}

	return &Registry{adapters: m, catalog: catalog, defaultProvider: defaultProvider}
}

// ResolveAdapter resolves in precedence order: provider_hint, then the catalog's
// model→provider mapping, then the configured default provider.
func (r *Registry) ResolveAdapter(ref llm.ModelRef) (adapter.Adapter, error) {
	pid, err := r.ResolveProvider(ref)
	if err != nil {
		return nil, err
	}

	a, ok := r.adapters[pid]
	if !ok {
		return nil, &llm.RoutingError{Reason: llm.RoutingProviderNotRegistered, ModelID: ref.ModelID}
	}

	return a, nil
}

// ResolveProvider implements the same precedence as ResolveAdapter but returns only
// the ProviderId, for callers that just need routing (not an adapter handle).
func (r *Registry) ResolveProvider(ref llm.ModelRef) (llm.ProviderId, error) {
	if ref.ProviderHint != nil {
		if _, ok := r.adapters[*ref.ProviderHint]; ok {
			return *ref.ProviderHint, nil
		}
		return "", &llm.RoutingError{Reason: llm.RoutingProviderNotRegistered, ModelID: ref.ModelID}
	}

	providers := r.catalog.ProvidersForModel(ref.ModelID)

	switch len(providers) {
	case 1:
		return providers[0], nil
	case 0:
		if r.defaultProvider != "" {
			if _, ok := r.adapters[r.defaultProvider]; ok {
				return r.defaultProvider, nil
			}
		}
		return "", &llm.RoutingError{Reason: llm.RoutingUnknownModel, ModelID: ref.ModelID}
	default:
		return "", &llm.RoutingError{Reason: llm.RoutingAmbiguousModel, ModelID: ref.ModelID}
	}
}

// DiscoverModels fans out discover_models across every registered adapter concurrently
//: one provider's failure becomes a catalog-level warning rather
// than aborting the others.
func (r *Registry) DiscoverModels(ctx context.Context, static []llm.ModelInfo) (llm.Catalog, []llm.RuntimeWarning, error) {
	type result struct {
		models []llm.ModelInfo
		err    error
		pid    llm.ProviderId
	}

	results := make([]result, len(r.adapters))

	g, gctx := errgroup.WithContext(ctx)

	i := 0
	for pid, a := range r.adapters {
		idx, pid, a := i, pid, a
		i++

		if !a.Capabilities().SupportsRemoteDiscovery {
			results[idx] = result{pid: pid}
			continue
		}

		g.Go(func() error {
			models, err := a.DiscoverModels(gctx, adapter.DiscoverOptions{})
			results[idx] = result{models: models, err: err, pid: pid}
			return nil
		})
	}

	_ = g.Wait()

	var (
		remote   []llm.ModelInfo
		warnings []llm.RuntimeWarning
	)

	for _, res := range results {
		if res.err != nil {
			warnings = append(warnings, llm.RuntimeWarning{
				Code:    "discovery_failed",
				Message: "discovery failed for provider " + string(res.pid) + ": " + res.err.Error(),
			})
			continue
		}
		remote = append(remote, res.models...)
	}

	return llm.MergeStaticAndRemoteCatalog(static, remote), warnings, nil
}
