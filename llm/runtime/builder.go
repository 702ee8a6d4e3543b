// Package runtime is the stateless composer: it routes a request,
// invokes the resolved adapter, and attaches an optional cost estimate.
package runtime

import (
	"go.uber.org/zap"

	"github.com/squee72564/provider-runtime/internal/log"
	"github.com/squee72564/provider-runtime/llm"
	"github.com/squee72564/provider-runtime/llm/adapter"
	"github.com/squee72564/provider-runtime/llm/httpclient"
	"github.com/squee72564/provider-runtime/llm/pricing"
	"github.com/squee72564/provider-runtime/llm/registry"
)

// Builder accumulates functional options before Build constructs the immutable
// Registry and catalog once, during finalization.
type Builder struct {
	adapters        []adapter.Adapter
	staticModels    []llm.ModelInfo
	defaultProvider llm.ProviderId
	pricingTable    *pricing.Table
	logger          *log.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// NewBuilder returns a Builder with the defaults every caller otherwise has to repeat:
// a no-op logger and no adapters. DefaultHTTPClient is exposed separately so a caller
// can share one httpclient.Client across every adapter constructor before calling
// WithAdapter.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{logger: log.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// DefaultHTTPClient returns a new httpclient.Client with the package's default retry
// policy, for callers who want one shared transport across every provider adapter.
func DefaultHTTPClient() *httpclient.Client {
	return httpclient.NewClient()
}

// WithAdapter registers a provider adapter.
func WithAdapter(a adapter.Adapter) Option {
	return func(b *Builder) { b.adapters = append(b.adapters, a) }
}

// WithStaticModels supplies the caller's authoritative model list, preferred over any
// remote-discovered entry on conflict.
func WithStaticModels(models []llm.ModelInfo) Option {
	return func(b *Builder) { b.staticModels = models }
}

// WithDefaultProvider sets the fallback used when routing precedence 1 and 2 both miss
//.
func WithDefaultProvider(pid llm.ProviderId) Option {
	return func(b *Builder) { b.defaultProvider = pid }
}

// WithPricingTable enables cost estimation. Omit to leave pricing
// unconfigured; Run then never attaches a cost.
func WithPricingTable(t *pricing.Table) Option {
	return func(b *Builder) { b.pricingTable = t }
}

// WithLogger overrides the structured logger ProviderRuntime.Run logs through. Each
// httpclient.Client keeps its own Logger field.
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// Build finalizes the Registry and catalog, returning a ConfigError if no adapters
// were registered.
func (b *Builder) Build() (*ProviderRuntime, error) {
	if len(b.adapters) == 0 {
		return nil, &llm.ConfigError{Field: "adapters", Message: "at least one adapter must be registered"}
	}

	catalog := llm.MergeStaticAndRemoteCatalog(b.staticModels, nil)
	reg := registry.New(b.adapters, catalog, b.defaultProvider)

	return &ProviderRuntime{
		registry:     reg,
		staticModels: b.staticModels,
		pricingTable: b.pricingTable,
		logger:       b.logger,
	}, nil
}

// logFields is a small convenience so call sites don't repeat zap.String boilerplate.
func logFields(provider llm.ProviderId, model string) []zap.Field {
	return []zap.Field{zap.String("provider", string(provider)), zap.String("model", model)}
}
