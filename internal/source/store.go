package source

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"governance-explorer/internal/domain"
)

// Store caches the bundle snapshot in front of a slower source. Reads are
// served from the cache while the snapshot is fresh; an optional cron
// schedule refreshes it in the background.
type Store struct {
	src    domain.BundleSource
	ttl    time.Duration
	limit  int
	logger *slog.Logger

	mu        sync.RWMutex
	bundles   []domain.Bundle
	fetchedAt time.Time

	cron *cron.Cron
}

// NewStore wraps src with a snapshot cache. A non-positive ttl disables
// caching and every read goes to the source.
func NewStore(src domain.BundleSource, ttl time.Duration, limit int, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{src: src, ttl: ttl, limit: limit, logger: logger}
}

// ListBundles returns the cached snapshot, refreshing it when stale. The
// limit argument is honored by truncating the cached snapshot so callers
// share one upstream fetch.
func (s *Store) ListBundles(ctx context.Context, limit int) ([]domain.Bundle, error) {
	if s.ttl <= 0 {
		return s.src.ListBundles(ctx, limit)
	}

	s.mu.RLock()
	fresh := time.Since(s.fetchedAt) < s.ttl && s.bundles != nil
	cached := s.bundles
	s.mu.RUnlock()

	if !fresh {
		if err := s.Refresh(ctx); err != nil {
			// Serve the stale snapshot when the upstream is down.
			if cached == nil {
				return nil, err
			}
			s.logger.Warn("bundle refresh failed, serving stale snapshot", "error", err)
		}
		s.mu.RLock()
		cached = s.bundles
		s.mu.RUnlock()
	}

	if limit > 0 && len(cached) > limit {
		cached = cached[:limit]
	}
	out := make([]domain.Bundle, len(cached))
	copy(out, cached)
	return out, nil
}

// Refresh fetches a new snapshot from the source and replaces the cache.
func (s *Store) Refresh(ctx context.Context) error {
	bundles, err := s.src.ListBundles(ctx, s.limit)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.bundles = bundles
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	s.logger.Debug("bundle snapshot refreshed", "count", len(bundles))
	return nil
}

// StartRefresh schedules background snapshot refreshes on the given cron
// expression. Stop must be called on shutdown.
func (s *Store) StartRefresh(schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := s.Refresh(ctx); err != nil {
			s.logger.Warn("scheduled bundle refresh failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	s.cron = c
	s.logger.Info("bundle refresh scheduled", "schedule", schedule)
	return nil
}

// Stop halts the background refresh schedule, if started.
func (s *Store) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
