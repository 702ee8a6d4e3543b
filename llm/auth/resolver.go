package auth

import (
	"context"
	"os"

	"github.com/squee72564/provider-runtime/llm"
)

// CredentialResolver evaluates credential sources in precedence order: an
// adapter-held provider, request-context metadata, then (if enabled) an
// environment variable.
type CredentialResolver struct {
	Provider      APIKeyProvider
	EnvCandidates []string
	EnvFallback   bool
}

// MetadataKey is the ProviderRequest.Metadata key CredentialResolver checks before
// falling back to the environment.
const MetadataKey = "api_key"

// Resolve returns an API key for pid, or a *llm.CredentialsMissing error naming the
// resolver's EnvCandidates (listed whether or not EnvFallback is enabled).
func (r CredentialResolver) Resolve(ctx context.Context, pid llm.ProviderId, metadata llm.Metadata) (string, error) {
	if r.Provider != nil {
		if key := r.Provider.Get(ctx); key != "" {
			return key, nil
		}
	}

	if metadata != nil {
		if key := metadata[MetadataKey]; key != "" {
			return key, nil
		}
	}

	if r.EnvFallback {
		for _, name := range r.EnvCandidates {
			if key := os.Getenv(name); key != "" {
				return key, nil
			}
		}
	}

	return "", &llm.CredentialsMissing{Provider: pid, EnvCandidates: r.EnvCandidates}
}
