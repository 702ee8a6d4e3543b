package llm

import "github.com/shopspring/decimal"

// Usage reports token accounting for a single call. Total is derived: the explicit
// TotalTokens if the provider reported one, else InputTokens+OutputTokens.
type Usage struct {
	InputTokens       *int64 `json:"input_tokens,omitempty"`
	OutputTokens      *int64 `json:"output_tokens,omitempty"`
	ReasoningTokens   *int64 `json:"reasoning_tokens,omitempty"`
	CachedInputTokens *int64 `json:"cached_input_tokens,omitempty"`
	TotalTokens       *int64 `json:"total_tokens,omitempty"`
}

// Total returns the derived total token count.
func (u Usage) Total() int64 {
	if u.TotalTokens != nil {
		return *u.TotalTokens
	}

	var in, out int64
	if u.InputTokens != nil {
		in = *u.InputTokens
	}
	if u.OutputTokens != nil {
		out = *u.OutputTokens
	}

	return in + out
}

// IsZero reports whether no usage field was ever populated. ProviderRuntime.Run skips
// cost estimation for a response whose usage IsZero.
func (u Usage) IsZero() bool {
	return u.InputTokens == nil && u.OutputTokens == nil && u.ReasoningTokens == nil &&
		u.CachedInputTokens == nil && u.TotalTokens == nil
}

// PricingSource records where a CostBreakdown's rates came from.
type PricingSource string

const (
	PricingConfigured      PricingSource = "configured"
	PricingProviderReported PricingSource = "provider_reported"
	PricingMixed           PricingSource = "mixed"
)

// CostBreakdown is an optional, never-fatal cost estimate attached to a response.
type CostBreakdown struct {
	Currency       string          `json:"currency"`
	InputCost      decimal.Decimal `json:"input_cost"`
	OutputCost     decimal.Decimal `json:"output_cost"`
	ReasoningCost  *decimal.Decimal `json:"reasoning_cost,omitempty"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	PricingSource  PricingSource   `json:"pricing_source"`
}
