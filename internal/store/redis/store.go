// Package redis persists all mutable tracker state as JSON blobs in Redis.
//
// Readers are deliberately forgiving: a missing key or a blob that fails to
// decode resolves to the type's default value, never an error, so persisted
// corruption can degrade a read but can never crash scoring or digest
// selection. Transport failures are still reported alongside the default so
// callers can log them.
package redis

import (
	"github.com/redis/go-redis/v9"
)

// Store handles Redis operations for preferences, statuses, saved jobs and
// digests.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}
