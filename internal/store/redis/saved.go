package redis

import (
	"context"
	"fmt"
	"sort"
)

// SaveJob adds a job ID to the saved set.
func (s *Store) SaveJob(ctx context.Context, jobID string) error {
	if err := s.client.SAdd(ctx, KeySavedJobs, jobID).Err(); err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

// UnsaveJob removes a job ID from the saved set.
func (s *Store) UnsaveJob(ctx context.Context, jobID string) error {
	if err := s.client.SRem(ctx, KeySavedJobs, jobID).Err(); err != nil {
		return fmt.Errorf("failed to unsave job: %w", err)
	}
	return nil
}

// IsJobSaved reports whether a job ID is in the saved set.
func (s *Store) IsJobSaved(ctx context.Context, jobID string) (bool, error) {
	saved, err := s.client.SIsMember(ctx, KeySavedJobs, jobID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check saved job: %w", err)
	}
	return saved, nil
}

// GetSavedJobIDs returns all saved job IDs. Sorted, since Redis set order is
// unspecified and responses should be stable.
func (s *Store) GetSavedJobIDs(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, KeySavedJobs).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get saved jobs: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}
