package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jobpulse/pulse/internal/domain"
)

// GetStatusMap loads the jobID -> status map. Missing or undecodable data
// resolves to an empty map; jobs absent from the map are Not Applied.
func (s *Store) GetStatusMap(ctx context.Context) (map[string]domain.Status, error) {
	data, err := s.client.Get(ctx, KeyStatusMap).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return map[string]domain.Status{}, nil
		}
		return map[string]domain.Status{}, fmt.Errorf("failed to get status map: %w", err)
	}

	var statuses map[string]domain.Status
	if err := json.Unmarshal(data, &statuses); err != nil || statuses == nil {
		return map[string]domain.Status{}, nil
	}
	return statuses, nil
}

// GetStatus returns the current status for a job, defaulting to Not Applied.
func (s *Store) GetStatus(ctx context.Context, jobID string) (domain.Status, error) {
	statuses, err := s.GetStatusMap(ctx)
	if err != nil {
		return domain.StatusNotApplied, err
	}
	if status, ok := statuses[jobID]; ok {
		return status, nil
	}
	return domain.StatusNotApplied, nil
}

// SetJobStatus overwrites the job's status unconditionally and appends a
// history entry. The append happens for every call, whatever the target
// value; reverting to Not Applied is logged like any other change.
func (s *Store) SetJobStatus(ctx context.Context, jobID string, status domain.Status, changedAt time.Time) error {
	statuses, err := s.GetStatusMap(ctx)
	if err != nil {
		return err
	}
	statuses[jobID] = status

	data, err := json.Marshal(statuses)
	if err != nil {
		return fmt.Errorf("failed to marshal status map: %w", err)
	}
	if err := s.client.Set(ctx, KeyStatusMap, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save status map: %w", err)
	}

	return s.appendHistory(ctx, domain.HistoryEntry{
		ID:        uuid.NewString(),
		JobID:     jobID,
		Status:    status,
		ChangedAt: changedAt,
	})
}

// GetStatusHistory loads the change log, newest first. Missing or corrupt
// data resolves to an empty log.
func (s *Store) GetStatusHistory(ctx context.Context) ([]domain.HistoryEntry, error) {
	data, err := s.client.Get(ctx, KeyStatusHistory).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []domain.HistoryEntry{}, nil
		}
		return []domain.HistoryEntry{}, fmt.Errorf("failed to get status history: %w", err)
	}

	var history []domain.HistoryEntry
	if err := json.Unmarshal(data, &history); err != nil {
		return []domain.HistoryEntry{}, nil
	}
	return history, nil
}

func (s *Store) appendHistory(ctx context.Context, entry domain.HistoryEntry) error {
	history, err := s.GetStatusHistory(ctx)
	if err != nil {
		return err
	}
	history = domain.PushHistory(history, entry)

	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal status history: %w", err)
	}
	if err := s.client.Set(ctx, KeyStatusHistory, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save status history: %w", err)
	}
	return nil
}
