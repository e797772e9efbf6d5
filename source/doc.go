// Package source provides ready-made Source adapters for the pipeline
// package: in-memory slices and queues, Go channels, and Redis lists.
package source
