// Package redis provides a Redis client wrapper built on go-redis,
// shared by the Redis list source and sink adapters.
package redis
