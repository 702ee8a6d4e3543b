package translator

import (
	"errors"
	"fmt"

	"github.com/squee72564/provider-runtime/llm"
)

// ErrInvalidRequest is the sentinel every protocol error raised while encoding wraps,
// so callers can errors.Is(err, translator.ErrInvalidRequest) regardless of provider.
var ErrInvalidRequest = errors.New("translator: invalid request")

// ErrProtocol is the sentinel every protocol error raised while decoding wraps.
var ErrProtocol = errors.New("translator: protocol error")

// InvalidRequest builds an llm.Serialization{Location: encode} error wrapping
// ErrInvalidRequest, used when canonical intent cannot be preserved on encode.
func InvalidRequest(format string, args ...any) error {
	return &wrappedError{
		sentinel: ErrInvalidRequest,
		inner:    &llm.Serialization{Location: llm.SerializationEncode, Message: fmt.Sprintf(format, args...)},
	}
}

// Protocol builds an llm.ProviderProtocol error wrapping ErrProtocol, used when a wire
// payload cannot be decoded faithfully.
func Protocol(provider llm.ProviderId, format string, args ...any) error {
	return &wrappedError{
		sentinel: ErrProtocol,
		inner:    &llm.ProviderProtocol{Provider: provider, Message: fmt.Sprintf(format, args...)},
	}
}

type wrappedError struct {
	sentinel error
	inner    error
}

func (e *wrappedError) Error() string { return e.inner.Error() }
func (e *wrappedError) Unwrap() error { return e.inner }
func (e *wrappedError) Is(target error) bool {
	return target == e.sentinel || errors.Is(e.inner, target)
}
