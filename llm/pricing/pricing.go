// Package pricing implements optional cost estimation from usage × a rule table
//. Pricing never fails a call: a missing rule or missing usage field
// downgrades to a warning.
package pricing

import (
	"path"

	"github.com/shopspring/decimal"

	"github.com/squee72564/provider-runtime/llm"
)

// Rule is one per-provider, per-model-pattern, per-token-rate pricing entry
//. ModelPattern supports a trailing "*" glob.
type Rule struct {
	Provider        llm.ProviderId  `toml:"provider"`
	ModelPattern    string          `toml:"model_pattern"`
	Currency        string          `toml:"currency"`
	InputPer1K      decimal.Decimal `toml:"input_per_1k"`
	OutputPer1K     decimal.Decimal `toml:"output_per_1k"`
	ReasoningPer1K  decimal.Decimal `toml:"reasoning_per_1k"`
}

// Table is an immutable set of pricing Rules, consulted by EstimateCost.
type Table struct {
	rules []Rule
}

// NewTable builds a Table from explicit rules, e.g. supplied programmatically by a
// runtime.Builder caller instead of loaded from TOML.
func NewTable(rules []Rule) *Table {
	return &Table{rules: rules}
}

const (
	WarningPricingRuleMissing   = "pricing_rule_missing"
	WarningUsageMissingForCost  = "usage_missing_for_cost"
)

// EstimateCost matches (provider, model) against the table and multiplies the usage
// by the matched rule's per-1k rates. A missing rule or missing usage field returns a
// nil cost and a stable warning; cost is never promoted to an error.
func (t *Table) EstimateCost(provider llm.ProviderId, model string, usage llm.Usage) (*llm.CostBreakdown, []llm.RuntimeWarning) {
	if t == nil {
		return nil, []llm.RuntimeWarning{{Code: WarningPricingRuleMissing, Message: "no pricing table configured"}}
	}

	rule, ok := t.match(provider, model)
	if !ok {
		return nil, []llm.RuntimeWarning{{
			Code:    WarningPricingRuleMissing,
			Message: "no pricing rule matched provider=" + string(provider) + " model=" + model,
		}}
	}

	if usage.InputTokens == nil || usage.OutputTokens == nil {
		return nil, []llm.RuntimeWarning{{
			Code:    WarningUsageMissingForCost,
			Message: "usage input/output tokens required to estimate cost",
		}}
	}

	thousand := decimal.NewFromInt(1000)

	inputCost := rule.InputPer1K.Mul(decimal.NewFromInt(*usage.InputTokens)).Div(thousand)
	outputCost := rule.OutputPer1K.Mul(decimal.NewFromInt(*usage.OutputTokens)).Div(thousand)
	total := inputCost.Add(outputCost)

	cost := &llm.CostBreakdown{
		Currency:      rule.Currency,
		InputCost:     inputCost,
		OutputCost:    outputCost,
		PricingSource: llm.PricingConfigured,
	}

	if usage.ReasoningTokens != nil && !rule.ReasoningPer1K.IsZero() {
		reasoningCost := rule.ReasoningPer1K.Mul(decimal.NewFromInt(*usage.ReasoningTokens)).Div(thousand)
		cost.ReasoningCost = &reasoningCost
		total = total.Add(reasoningCost)
	}

	cost.TotalCost = total

	return cost, nil
}

// match prefers an exact provider+model match over a glob match for the same provider
//.
func (t *Table) match(provider llm.ProviderId, model string) (Rule, bool) {
	var globMatch *Rule

	for i := range t.rules {
		r := &t.rules[i]
		if r.Provider != provider {
			continue
		}

		if r.ModelPattern == model {
			return *r, true
		}

		if ok, _ := path.Match(r.ModelPattern, model); ok && globMatch == nil {
			globMatch = r
		}
	}

	if globMatch != nil {
		return *globMatch, true
	}

	return Rule{}, false
}
