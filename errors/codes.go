package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors (raised at build time, recoverable by the caller)
const (
	// ErrCodeMissingSource indicates a pipeline was built without a source.
	ErrCodeMissingSource ErrorCode = "MISSING_SOURCE"
	// ErrCodeBuilderConsumed indicates a builder was reused after Build.
	ErrCodeBuilderConsumed ErrorCode = "BUILDER_CONSUMED"
	// ErrCodePipelineConsumed indicates a pipeline was run more than once.
	ErrCodePipelineConsumed ErrorCode = "PIPELINE_CONSUMED"
	// ErrCodeInvalidConfig indicates a pipeline definition failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeNotFound indicates a named component is not registered.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Run-time errors (fatal to the run, never recovered by the core)
const (
	// ErrCodeSinkFailure indicates a sink failed while saving an item.
	ErrCodeSinkFailure ErrorCode = "SINK_FAILURE"
	// ErrCodeConnectionFailed indicates a failed connection to a backing store.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates an operation timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnectionFailed: true,
	ErrCodeTimeout:          true,
	ErrCodeSinkFailure:      false,
	ErrCodeMissingSource:    false,
	ErrCodeInvalidConfig:    false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
