package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/squee72564/provider-runtime/llm"
)

func TestCredentialResolver_ProviderTakesPrecedenceOverMetadataAndEnv(t *testing.T) {
	t.Setenv("TEST_API_KEY", "from-env")

	r := CredentialResolver{
		Provider:      NewStaticKeyProvider("from-provider"),
		EnvCandidates: []string{"TEST_API_KEY"},
		EnvFallback:   true,
	}

	key, err := r.Resolve(context.Background(), llm.Openai, llm.Metadata{MetadataKey: "from-metadata"})

	require.NoError(t, err)
	require.Equal(t, "from-provider", key)
}

func TestCredentialResolver_MetadataTakesPrecedenceOverEnv(t *testing.T) {
	t.Setenv("TEST_API_KEY", "from-env")

	r := CredentialResolver{
		EnvCandidates: []string{"TEST_API_KEY"},
		EnvFallback:   true,
	}

	key, err := r.Resolve(context.Background(), llm.Openai, llm.Metadata{MetadataKey: "from-metadata"})

	require.NoError(t, err)
	require.Equal(t, "from-metadata", key)
}

func TestCredentialResolver_FallsBackToEnvWhenEnabled(t *testing.T) {
	t.Setenv("TEST_API_KEY", "from-env")

	r := CredentialResolver{
		EnvCandidates: []string{"TEST_API_KEY"},
		EnvFallback:   true,
	}

	key, err := r.Resolve(context.Background(), llm.Openai, nil)

	require.NoError(t, err)
	require.Equal(t, "from-env", key)
}

func TestCredentialResolver_EnvFallbackDisabledIsNeverConsulted(t *testing.T) {
	t.Setenv("TEST_API_KEY", "from-env")

	r := CredentialResolver{
		EnvCandidates: []string{"TEST_API_KEY"},
		EnvFallback:   false,
	}

	_, err := r.Resolve(context.Background(), llm.Openai, nil)

	var missing *llm.CredentialsMissing
	require.ErrorAs(t, err, &missing)
	require.Equal(t, []string{"TEST_API_KEY"}, missing.EnvCandidates)
}

func TestCredentialResolver_NoSourceReturnsCredentialsMissingNamingCandidates(t *testing.T) {
	r := CredentialResolver{EnvCandidates: []string{"MISSING_A", "MISSING_B"}}

	_, err := r.Resolve(context.Background(), llm.Anthropic, nil)

	var missing *llm.CredentialsMissing
	require.ErrorAs(t, err, &missing)
	require.Equal(t, llm.Anthropic, missing.Provider)
	require.Equal(t, []string{"MISSING_A", "MISSING_B"}, missing.EnvCandidates)
}

func TestCredentialResolver_ProviderReturningEmptyStringFallsThrough(t *testing.T) {
	r := CredentialResolver{
		Provider: NewStaticKeyProvider(""),
	}

	key, err := r.Resolve(context.Background(), llm.Openai, llm.Metadata{MetadataKey: "from-metadata"})
	require.NoError(t, err)
	require.Equal(t, "from-metadata", key)
}
