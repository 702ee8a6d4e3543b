package llm

import (
	"errors"
	"fmt"
)

// Sentinel errors each error-kind struct below answers true to via errors.Is, so callers
// can match on the kind without type-asserting when they don't need the structured
// fields.
var (
	ErrConfig             = errors.New("llm: config error")
	ErrCredentialsMissing  = errors.New("llm: credentials missing")
	ErrCredentialsRejected = errors.New("llm: credentials rejected")
	ErrRouting             = errors.New("llm: routing error")
	ErrCapabilityMismatch  = errors.New("llm: capability mismatch")
	ErrTransport           = errors.New("llm: transport error")
	ErrProviderProtocol    = errors.New("llm: provider protocol error")
	ErrSerialization       = errors.New("llm: serialization error")
	ErrCostCalculation     = errors.New("llm: cost calculation error")
)

// ConfigError reports a builder misconfiguration: a required field was never supplied.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("llm: config error: %s: %s", e.Field, e.Message)
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// CredentialsMissing reports that no credential source produced a key for Provider.
type CredentialsMissing struct {
	Provider      ProviderId
	EnvCandidates []string
}

func (e *CredentialsMissing) Error() string {
	return fmt.Sprintf("llm: credentials missing for provider %q (checked env: %v)", e.Provider, e.EnvCandidates)
}

func (e *CredentialsMissing) Is(target error) bool { return target == ErrCredentialsMissing }

// CredentialsRejected reports that a supplied credential was refused by the provider.
type CredentialsRejected struct {
	Provider ProviderId
	Message  string
}

func (e *CredentialsRejected) Error() string {
	return fmt.Sprintf("llm: credentials rejected for provider %q: %s", e.Provider, e.Message)
}

func (e *CredentialsRejected) Is(target error) bool { return target == ErrCredentialsRejected }

// RoutingReason discriminates the closed RoutingError variant set.
type RoutingReason string

const (
	RoutingUnknownModel          RoutingReason = "unknown_model"
	RoutingAmbiguousModel        RoutingReason = "ambiguous_model"
	RoutingProviderNotRegistered RoutingReason = "provider_not_registered"
)

// RoutingError reports a Registry resolution failure.
type RoutingError struct {
	Reason  RoutingReason
	ModelID string
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("llm: routing error (%s) for model %q", e.Reason, e.ModelID)
}

func (e *RoutingError) Is(target error) bool { return target == ErrRouting }

// CapabilityMismatch reports that a request needed a capability the resolved provider
// does not declare.
type CapabilityMismatch struct {
	Provider            ProviderId
	RequestedCapability string
}

func (e *CapabilityMismatch) Error() string {
	return fmt.Sprintf("llm: provider %q does not support %q", e.Provider, e.RequestedCapability)
}

func (e *CapabilityMismatch) Is(target error) bool { return target == ErrCapabilityMismatch }

// TransportKind discriminates the closed Transport error variant set.
type TransportKind string

const (
	TransportConnect   TransportKind = "connect"
	TransportTimeout   TransportKind = "timeout"
	TransportCancelled TransportKind = "cancelled"
	TransportIO        TransportKind = "io"
)

// Transport reports an HTTP-layer failure below the provider-protocol level.
type Transport struct {
	Kind    TransportKind
	Message string
}

func (e *Transport) Error() string {
	return fmt.Sprintf("llm: transport error (%s): %s", e.Kind, e.Message)
}

func (e *Transport) Is(target error) bool { return target == ErrTransport }

// ProviderProtocol covers both HTTP-level status failures and well-formed provider
// error bodies — everything a translator or adapter classifies as "the provider did not
// give us what we asked for."
type ProviderProtocol struct {
	Provider  ProviderId
	Status    int
	RequestID string
	Model     string
	Message   string
}

func (e *ProviderProtocol) Error() string {
	return fmt.Sprintf("llm: provider protocol error: provider=%s status=%d request_id=%s model=%s: %s",
		e.Provider, e.Status, e.RequestID, e.Model, e.Message)
}

func (e *ProviderProtocol) Is(target error) bool { return target == ErrProviderProtocol }

// SerializationLocation discriminates where a Serialization error occurred.
type SerializationLocation string

const (
	SerializationEncode SerializationLocation = "encode"
	SerializationDecode SerializationLocation = "decode"
)

// Serialization reports malformed provider JSON or undecodable canonical intent.
type Serialization struct {
	Location SerializationLocation
	Message  string
}

func (e *Serialization) Error() string {
	return fmt.Sprintf("llm: serialization error (%s): %s", e.Location, e.Message)
}

func (e *Serialization) Is(target error) bool { return target == ErrSerialization }

// CostCalculation is reserved: pricing never fails a call, so this kind is never
// returned by the library today, but it is defined to round out the error taxonomy.
type CostCalculation struct {
	Message string
}

func (e *CostCalculation) Error() string {
	return fmt.Sprintf("llm: cost calculation error: %s", e.Message)
}

func (e *CostCalculation) Is(target error) bool { return target == ErrCostCalculation }
