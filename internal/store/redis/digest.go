package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jobpulse/pulse/internal/domain"
)

// digestBlob is the persisted shape of a day's digest.
type digestBlob struct {
	Jobs []domain.DigestEntry `json:"jobs"`
}

// SaveDigest persists the ordered digest entries under the day's key. An
// empty list is stored too: key presence is what marks the day as generated.
func (s *Store) SaveDigest(ctx context.Context, day string, entries []domain.DigestEntry) error {
	if entries == nil {
		entries = []domain.DigestEntry{}
	}
	data, err := json.Marshal(digestBlob{Jobs: entries})
	if err != nil {
		return fmt.Errorf("failed to marshal digest: %w", err)
	}
	if err := s.client.Set(ctx, DigestKey(day), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save digest: %w", err)
	}
	return nil
}

// GetDigest loads a day's digest. found distinguishes "generated, possibly
// empty" from "not yet generated"; a blob that does not decode to the
// expected shape counts as not generated so the day simply recomputes.
func (s *Store) GetDigest(ctx context.Context, day string) (entries []domain.DigestEntry, found bool, err error) {
	data, err := s.client.Get(ctx, DigestKey(day)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get digest: %w", err)
	}

	var blob digestBlob
	if err := json.Unmarshal(data, &blob); err != nil || blob.Jobs == nil {
		return nil, false, nil
	}
	return blob.Jobs, true, nil
}

// PruneDigests deletes digest keys whose day is strictly before cutoff.
// Returns how many were removed. Keys that fail to parse are left alone.
func (s *Store) PruneDigests(ctx context.Context, cutoff time.Time) (int, error) {
	deleted := 0
	iter := s.client.Scan(ctx, 0, KeyPrefixDigest+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		day, err := ExtractDigestDay(key)
		if err != nil {
			continue
		}
		if !day.Before(cutoff) {
			continue
		}
		if err := s.client.Del(ctx, key).Err(); err != nil {
			return deleted, fmt.Errorf("failed to delete digest key: %w", err)
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("failed to scan digest keys: %w", err)
	}
	return deleted, nil
}
