package agent

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrorMissingCredential    ErrorCode = "MISSING_CREDENTIAL"
	ErrorInvalidConfiguration ErrorCode = "INVALID_CONFIGURATION"
	ErrorInvalidCredential    ErrorCode = "INVALID_CREDENTIAL"
)

// ConfigError is a fatal misconfiguration. It aborts the invocation before any
// external call is made.
type ConfigError struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("agent: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("agent: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newConfigError(code ErrorCode, reason string, err error) *ConfigError {
	return &ConfigError{Code: code, Reason: reason, Err: err}
}

// NewInvalidConfiguration wraps err as an INVALID_CONFIGURATION error.
func NewInvalidConfiguration(reason string, err error) *ConfigError {
	return newConfigError(ErrorInvalidConfiguration, reason, err)
}

// NewInvalidCredential wraps err as an INVALID_CREDENTIAL error, raised when
// the model service refuses the API key.
func NewInvalidCredential(reason string, err error) *ConfigError {
	return newConfigError(ErrorInvalidCredential, reason, err)
}

// AsConfigError reports whether err is, or wraps, a *ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
