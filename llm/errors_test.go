package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypedErrors_MatchTheirSentinelViaErrorsIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ConfigError", &ConfigError{Field: "adapters", Message: "missing"}, ErrConfig},
		{"CredentialsMissing", &CredentialsMissing{Provider: Openai}, ErrCredentialsMissing},
		{"CredentialsRejected", &CredentialsRejected{Provider: Openai}, ErrCredentialsRejected},
		{"RoutingError", &RoutingError{Reason: RoutingUnknownModel}, ErrRouting},
		{"CapabilityMismatch", &CapabilityMismatch{Provider: Openai}, ErrCapabilityMismatch},
		{"Transport", &Transport{Kind: TransportTimeout}, ErrTransport},
		{"ProviderProtocol", &ProviderProtocol{Provider: Openai, Status: 500}, ErrProviderProtocol},
		{"Serialization", &Serialization{Location: SerializationDecode}, ErrSerialization},
		{"CostCalculation", &CostCalculation{Message: "x"}, ErrCostCalculation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, errors.Is(tt.err, tt.sentinel))
			require.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestTypedErrors_DoNotMatchUnrelatedSentinels(t *testing.T) {
	err := &RoutingError{Reason: RoutingUnknownModel}

	require.False(t, errors.Is(err, ErrTransport))
	require.False(t, errors.Is(err, ErrConfig))
}

func TestModelRef_Validate(t *testing.T) {
	require.NoError(t, ModelRef{ModelID: "gpt-5"}.Validate())
	require.Error(t, ModelRef{}.Validate())

	badHint := ProviderId("made-up")
	require.Error(t, ModelRef{ModelID: "m", ProviderHint: &badHint}.Validate())
}

func TestUsage_TotalDerivesSumWhenNotReported(t *testing.T) {
	in, out := int64(10), int64(5)
	u := Usage{InputTokens: &in, OutputTokens: &out}

	require.Equal(t, int64(15), u.Total())
	require.False(t, u.IsZero())
	require.True(t, Usage{}.IsZero())
}
