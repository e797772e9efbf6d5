// Package errors provides unified error handling for pipekit.
// It implements structured error types with machine-readable codes,
// retryable detection, and cause preservation via errors.Unwrap.
package errors
