package llmprovider

import (
	"errors"
	"fmt"

	"jarvis-agent/pkg/groq"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmptyResponse indicates the provider answered without any text
	ErrEmptyResponse = errors.New("empty response")

	// ErrUnknownProvider indicates the provider name is not supported
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrMissingAPIKey indicates a provider was configured without credentials
	ErrMissingAPIKey = errors.New("API key is required")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsCredentialRejected reports whether err carries a provider response that
// refused the API key. Retrying or falling back with the same key cannot help.
func IsCredentialRejected(err error) bool {
	var apiErr *groq.APIError
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}
