// Package logger provides structured logging for pipekit built on zerolog.
//
// Pipelines and stage decorators obtain component-tagged loggers via
// WithComponent; field helpers keep log keys consistent across packages.
package logger
