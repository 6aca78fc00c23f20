package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jobpulse/pulse/internal/domain"
)

// SavePreferences persists the raw preference profile.
func (s *Store) SavePreferences(ctx context.Context, prefs domain.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := s.client.Set(ctx, KeyPreferences, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// GetPreferences loads the persisted profile. An absent key or a blob that
// does not decode yields the default profile; only transport failures are
// reported, and even then the default profile accompanies the error so the
// caller can keep going.
func (s *Store) GetPreferences(ctx context.Context) (domain.Preferences, error) {
	data, err := s.client.Get(ctx, KeyPreferences).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.DefaultPreferences(), nil
		}
		return domain.DefaultPreferences(), fmt.Errorf("failed to get preferences: %w", err)
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return domain.DefaultPreferences(), nil
	}
	return prefs, nil
}
