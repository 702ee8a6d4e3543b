package runtime

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/squee72564/provider-runtime/internal/log"
	"github.com/squee72564/provider-runtime/llm"
	"github.com/squee72564/provider-runtime/llm/pricing"
	"github.com/squee72564/provider-runtime/llm/registry"
)

var validate = validator.New()

// ProviderRuntime is the single stateless entry point: Run validates,
// routes, invokes the adapter, and attaches a cost estimate when pricing is
// configured and usage was reported.
type ProviderRuntime struct {
	registry     *registry.Registry
	staticModels []llm.ModelInfo
	pricingTable *pricing.Table
	logger       *log.Logger
}

// Run resolves req.Model to a provider, delegates to that provider's adapter, and
// merges any pricing warning into the response's existing warning list. Validation
// failures surface as ModelRef.Validate's error or the go-playground/validator error,
// not wrapped in the llm error taxonomy: they are caller-input bugs, not runtime
// conditions.
func (rt *ProviderRuntime) Run(ctx context.Context, req llm.ProviderRequest) (*llm.ProviderResponse, error) {
	if err := req.Model.Validate(); err != nil {
		return nil, err
	}

	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	a, err := rt.registry.ResolveAdapter(req.Model)
	if err != nil {
		return nil, err
	}

	rt.logger.Info(ctx, "dispatching request", append(logFields(a.Provider(), req.Model.ModelID), zap.Int("messages", len(req.Messages)))...)

	resp, err := a.Run(ctx, req)
	if err != nil {
		rt.logger.Warn(ctx, "adapter run failed", append(logFields(a.Provider(), req.Model.ModelID), zap.Error(err))...)
		return nil, err
	}

	if rt.pricingTable != nil && !resp.Usage.IsZero() {
		cost, warnings := rt.pricingTable.EstimateCost(a.Provider(), req.Model.ModelID, resp.Usage)
		if cost != nil {
			resp.Cost = cost
		}
		resp.Warnings = append(resp.Warnings, warnings...)
	}

	return resp, nil
}

// DiscoverModels fans discover_models out across every adapter that supports it and
// merges the result with the runtime's static catalog, static entries winning any
// conflict.
func (rt *ProviderRuntime) DiscoverModels(ctx context.Context) (llm.Catalog, []llm.RuntimeWarning, error) {
	return rt.registry.DiscoverModels(ctx, rt.staticModels)
}

// ExportCatalogJSON renders a Catalog as deterministic, sorted JSON.
func (rt *ProviderRuntime) ExportCatalogJSON(catalog llm.Catalog) (string, error) {
	return catalog.ExportJSON()
}
