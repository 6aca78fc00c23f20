package scheduler

import (
	"context"
	"time"

	"github.com/jobpulse/pulse/internal/logger"
	redisstore "github.com/jobpulse/pulse/internal/store/redis"
)

// DefaultRetention is how long old daily digests are kept before pruning.
const DefaultRetention = 30 * 24 * time.Hour

// DigestRetention periodically deletes digest keys older than the retention
// horizon. Purely janitorial: it never touches the current day, so digest
// idempotence is unaffected.
type DigestRetention struct {
	store     *redisstore.Store
	logger    logger.Logger
	interval  time.Duration
	retention time.Duration
	stopCh    chan struct{}
}

// NewDigestRetention creates a retention sweeper.
func NewDigestRetention(
	store *redisstore.Store,
	log logger.Logger,
	interval time.Duration,
	retention time.Duration,
) *DigestRetention {
	if retention <= 0 {
		retention = DefaultRetention
	}

	return &DigestRetention{
		store:     store,
		logger:    log,
		interval:  interval,
		retention: retention,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the periodic sweep.
func (dr *DigestRetention) Start(ctx context.Context) error {
	// Run immediately on start
	if err := dr.Sweep(ctx); err != nil {
		dr.logger.Warn("initial digest retention sweep failed",
			logger.Error(err))
	}

	ticker := time.NewTicker(dr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := dr.Sweep(ctx); err != nil {
					dr.logger.Error("digest retention sweep failed",
						logger.Error(err))
				}
			case <-dr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the sweeper.
func (dr *DigestRetention) Stop() {
	close(dr.stopCh)
}

// Sweep deletes digests older than the retention horizon.
func (dr *DigestRetention) Sweep(ctx context.Context) error {
	cutoff := time.Now().Add(-dr.retention)

	deleted, err := dr.store.PruneDigests(ctx, cutoff)
	if err != nil {
		return err
	}

	if deleted > 0 {
		dr.logger.Info("pruned old digests",
			logger.Int("deleted", deleted),
			logger.Time("cutoff", cutoff))
	} else {
		dr.logger.Debug("digest retention sweep found nothing to prune")
	}

	return nil
}
