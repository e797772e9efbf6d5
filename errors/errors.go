package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified pipekit error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// CodeOf extracts the ErrorCode from an error, or "" if it is not an AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// --- Common Error Constructors ---

// MissingSource creates the configuration error for a pipeline built
// without a source. All pipelines need a source.
func MissingSource() *AppError {
	return &AppError{
		Code: ErrCodeMissingSource, Message: "all pipelines need a source",
		Retryable: false,
	}
}

// BuilderConsumed creates the error for a builder reused after Build.
func BuilderConsumed() *AppError {
	return &AppError{
		Code: ErrCodeBuilderConsumed, Message: "builder already consumed by Build",
		Retryable: false,
	}
}

// PipelineConsumed creates the error for a pipeline run more than once.
func PipelineConsumed() *AppError {
	return &AppError{
		Code: ErrCodePipelineConsumed, Message: "pipeline already consumed by Run",
		Retryable: false,
	}
}

// SinkFailure wraps an error reported by a sink during a run. The
// original cause is preserved and reachable via errors.Is / errors.As.
func SinkFailure(sink string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeSinkFailure, Message: fmt.Sprintf("sink %q failed to save item", sink),
		Retryable: false,
		Details:   map[string]any{"sink": sink},
		Cause:     cause,
	}
}

// InvalidConfig creates the error for a pipeline definition that failed validation.
func InvalidConfig(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidConfig, Message: fmt.Sprintf("invalid pipeline config: %s", reason),
		Retryable: false,
	}
}

// NotFound creates the error for a component name missing from a registry.
func NotFound(kind, name string) *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("%s %q not found in registry", kind, name),
		Retryable: false,
		Details:   map[string]any{"kind": kind, "name": name},
	}
}

// ConnectionFailed creates the error for a failed connection to a backing store.
func ConnectionFailed(store string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeConnectionFailed, Message: fmt.Sprintf("unable to connect to %s", store),
		Retryable: true,
		Details:   map[string]any{"store": store},
		Cause:     cause,
	}
}

// Timeout creates the error for an operation that timed out.
func Timeout(operation string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: fmt.Sprintf("operation %s timed out", operation),
		Retryable: true,
		Details:   map[string]any{"operation": operation},
	}
}
