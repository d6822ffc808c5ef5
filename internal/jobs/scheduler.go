package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/techkart/techkart-backend/internal/logger"
	"github.com/techkart/techkart-backend/internal/services"
	"github.com/techkart/techkart-backend/internal/types"
)

// Scheduler runs the periodic score recomputes inside the API process. The
// advisory locks make overlapping runs safe, so a deployment can also point
// external cron at cmd/recompute_scores and leave this disabled.
type Scheduler struct {
	log              *logger.Logger
	hookSvc          services.HookScoreService
	trendingSvc      services.TrendingScoreService
	hookInterval     time.Duration
	trendingInterval time.Duration
}

func NewScheduler(baseLog *logger.Logger, hookSvc services.HookScoreService, trendingSvc services.TrendingScoreService, hookInterval, trendingInterval time.Duration) *Scheduler {
	if hookInterval <= 0 {
		hookInterval = 6 * time.Hour
	}
	if trendingInterval <= 0 {
		trendingInterval = time.Hour
	}
	return &Scheduler{
		log:              baseLog.With("component", "ScoreScheduler"),
		hookSvc:          hookSvc,
		trendingSvc:      trendingSvc,
		hookInterval:     hookInterval,
		trendingInterval: trendingInterval,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	go s.runLoop(ctx, "hook_scores", s.hookInterval, s.runHookRecomputes)
	go s.runLoop(ctx, "trending_scores", s.trendingInterval, s.runTrendingRecompute)
}

func (s *Scheduler) runLoop(ctx context.Context, name string, interval time.Duration, run func(ctx context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A panicking recompute must not kill the loop.
			func() {
				defer func() {
					if r := recover(); r != nil {
						s.log.Error("Scheduled recompute panic", "job", name, "panic", r)
					}
				}()
				if err := run(ctx); err != nil {
					s.log.Error("Scheduled recompute failed", "job", name, "error", err)
				}
			}()
		}
	}
}

func (s *Scheduler) runHookRecomputes(ctx context.Context) error {
	var firstErr error
	for _, productType := range types.SupportedProductTypes() {
		result, err := s.hookSvc.Recompute(ctx, productType, 0)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("hook recompute %s: %w", productType, err)
			}
			continue
		}
		if result.Skipped {
			s.log.Debug("Hook recompute skipped", "product_type", productType)
		}
	}
	return firstErr
}

func (s *Scheduler) runTrendingRecompute(ctx context.Context) error {
	result, err := s.trendingSvc.Recompute(ctx, 0)
	if err != nil {
		return fmt.Errorf("trending recompute: %w", err)
	}
	if result.Skipped {
		s.log.Debug("Trending recompute skipped")
	}
	return nil
}
