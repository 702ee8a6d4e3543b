package llm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeStaticAndRemoteCatalog_StaticWinsOnConflict(t *testing.T) {
	static := []ModelInfo{
		{Provider: Openai, ModelID: "gpt-5", DisplayName: "GPT-5 (static)", ContextLimit: 400000},
	}
	remote := []ModelInfo{
		{Provider: Openai, ModelID: "gpt-5", DisplayName: "GPT-5 (remote)", ContextLimit: 1},
		{Provider: Anthropic, ModelID: "claude-opus", DisplayName: "Claude Opus", ContextLimit: 200000},
	}

	catalog := MergeStaticAndRemoteCatalog(static, remote)
	models := catalog.Models()

	require.Len(t, models, 2)
	require.Equal(t, Anthropic, models[0].Provider)
	require.Equal(t, "GPT-5 (static)", models[1].DisplayName)
}

func TestMergeStaticAndRemoteCatalog_SortedDeterministically(t *testing.T) {
	remote := []ModelInfo{
		{Provider: Openrouter, ModelID: "z-model"},
		{Provider: Anthropic, ModelID: "a-model"},
		{Provider: Anthropic, ModelID: "z-model"},
	}

	catalog := MergeStaticAndRemoteCatalog(nil, remote)
	models := catalog.Models()

	require.Equal(t, []ModelInfo{
		{Provider: Anthropic, ModelID: "a-model"},
		{Provider: Anthropic, ModelID: "z-model"},
		{Provider: Openrouter, ModelID: "z-model"},
	}, models)
}

func TestProvidersForModel(t *testing.T) {
	catalog := MergeStaticAndRemoteCatalog([]ModelInfo{
		{Provider: Openai, ModelID: "shared-model"},
		{Provider: Anthropic, ModelID: "shared-model"},
		{Provider: Openai, ModelID: "solo-model"},
	}, nil)

	require.ElementsMatch(t, []ProviderId{Openai, Anthropic}, catalog.ProvidersForModel("shared-model"))
	require.Equal(t, []ProviderId{Openai}, catalog.ProvidersForModel("solo-model"))
	require.Empty(t, catalog.ProvidersForModel("unknown-model"))
}

func TestExportJSON_Deterministic(t *testing.T) {
	catalog := MergeStaticAndRemoteCatalog([]ModelInfo{
		{Provider: Openai, ModelID: "gpt-5"},
		{Provider: Anthropic, ModelID: "claude-opus"},
	}, nil)

	first, err := catalog.ExportJSON()
	require.NoError(t, err)

	second, err := catalog.ExportJSON()
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Contains(t, first, "claude-opus")
}
