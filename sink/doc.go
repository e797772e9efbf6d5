// Package sink provides ready-made Sink adapters for the pipeline
// package: in-memory collection, channels, structured logging, Redis
// lists, and Kafka topics.
package sink
