package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/squee72564/provider-runtime/llm"
)

func ptr(v int64) *int64 { return &v }

func newRule(provider llm.ProviderId, pattern string, input, output string) Rule {
	return Rule{
		Provider:     provider,
		ModelPattern: pattern,
		Currency:     "USD",
		InputPer1K:   decimal.RequireFromString(input),
		OutputPer1K:  decimal.RequireFromString(output),
	}
}

func TestEstimateCost_ExactMatchBeatsGlob(t *testing.T) {
	table := NewTable([]Rule{
		newRule(llm.Openai, "gpt-5*", "1.00", "2.00"),
		newRule(llm.Openai, "gpt-5-mini", "0.10", "0.20"),
	})

	cost, warnings := table.EstimateCost(llm.Openai, "gpt-5-mini", llm.Usage{
		InputTokens:  ptr(1000),
		OutputTokens: ptr(1000),
	})

	require.Empty(t, warnings)
	require.NotNil(t, cost)
	require.True(t, cost.InputCost.Equal(decimal.RequireFromString("0.10")))
	require.True(t, cost.OutputCost.Equal(decimal.RequireFromString("0.20")))
	require.True(t, cost.TotalCost.Equal(decimal.RequireFromString("0.30")))
}

func TestEstimateCost_GlobMatch(t *testing.T) {
	table := NewTable([]Rule{newRule(llm.Openai, "gpt-5*", "1.00", "2.00")})

	cost, warnings := table.EstimateCost(llm.Openai, "gpt-5-nano", llm.Usage{
		InputTokens:  ptr(500),
		OutputTokens: ptr(500),
	})

	require.Empty(t, warnings)
	require.True(t, cost.InputCost.Equal(decimal.RequireFromString("0.50")))
}

func TestEstimateCost_MissingRuleIsNonFatal(t *testing.T) {
	table := NewTable([]Rule{newRule(llm.Openai, "gpt-5*", "1.00", "2.00")})

	cost, warnings := table.EstimateCost(llm.Anthropic, "claude-opus", llm.Usage{
		InputTokens:  ptr(10),
		OutputTokens: ptr(10),
	})

	require.Nil(t, cost)
	require.Len(t, warnings, 1)
	require.Equal(t, WarningPricingRuleMissing, warnings[0].Code)
}

func TestEstimateCost_MissingUsageIsNonFatal(t *testing.T) {
	table := NewTable([]Rule{newRule(llm.Openai, "gpt-5*", "1.00", "2.00")})

	cost, warnings := table.EstimateCost(llm.Openai, "gpt-5", llm.Usage{})

	require.Nil(t, cost)
	require.Len(t, warnings, 1)
	require.Equal(t, WarningUsageMissingForCost, warnings[0].Code)
}

func TestEstimateCost_NilTableIsNonFatal(t *testing.T) {
	var table *Table

	cost, warnings := table.EstimateCost(llm.Openai, "gpt-5", llm.Usage{InputTokens: ptr(1), OutputTokens: ptr(1)})

	require.Nil(t, cost)
	require.Len(t, warnings, 1)
}

func TestEstimateCost_ReasoningCostOnlyWhenRateAndUsagePresent(t *testing.T) {
	rule := newRule(llm.Openai, "o-series*", "1.00", "2.00")
	rule.ReasoningPer1K = decimal.RequireFromString("3.00")
	table := NewTable([]Rule{rule})

	cost, warnings := table.EstimateCost(llm.Openai, "o-series-1", llm.Usage{
		InputTokens:     ptr(1000),
		OutputTokens:    ptr(1000),
		ReasoningTokens: ptr(1000),
	})

	require.Empty(t, warnings)
	require.NotNil(t, cost.ReasoningCost)
	require.True(t, cost.ReasoningCost.Equal(decimal.RequireFromString("3.00")))
	require.True(t, cost.TotalCost.Equal(decimal.RequireFromString("6.00")))
}
