package services

import (
  "context"
  "encoding/json"
  "fmt"
  "time"
  "github.com/google/uuid"
  redisclient "github.com/techkart/techkart-backend/internal/clients/redis"
  "github.com/techkart/techkart-backend/internal/logger"
  "github.com/techkart/techkart-backend/internal/repos"
)

type TrendingFeedEntry struct {
  ProductID     uuid.UUID `json:"product_id"`
  Name          string    `json:"name"`
  Slug          string    `json:"slug"`
  ProductType   string    `json:"product_type"`
  TrendingScore float64   `json:"trending_score"`
  Velocity      float64   `json:"velocity"`
  Views7d       int64     `json:"views_7d"`
  Compares7d    int64     `json:"compares_7d"`
  CalculatedAt  time.Time `json:"calculated_at"`
}

// TrendingFeedService serves the public trending list. Reads go through the
// Redis cache when one is configured; a nil or failing cache means every read
// hits Postgres, which is correct just slower.
type TrendingFeedService interface {
  TopTrending(ctx context.Context, limit int) ([]TrendingFeedEntry, error)
}

type trendingFeedService struct {
  log      *logger.Logger
  repo     repos.TrendingScoreRepo
  cache    redisclient.ScoreCache
  cacheTTL time.Duration
}

func NewTrendingFeedService(baseLog *logger.Logger, repo repos.TrendingScoreRepo, cache redisclient.ScoreCache, cacheTTL time.Duration) TrendingFeedService {
  if cacheTTL <= 0 {
    cacheTTL = 60 * time.Second
  }
  return &trendingFeedService{
    log:      baseLog.With("service", "TrendingFeedService"),
    repo:     repo,
    cache:    cache,
    cacheTTL: cacheTTL,
  }
}

func (s *trendingFeedService) TopTrending(ctx context.Context, limit int) ([]TrendingFeedEntry, error) {
  if limit <= 0 || limit > 100 {
    limit = 20
  }
  cacheKey := fmt.Sprintf("trending:top:%d", limit)

  if s.cache != nil {
    if raw, ok := s.cache.Get(ctx, cacheKey); ok {
      var cached []TrendingFeedEntry
      if err := json.Unmarshal(raw, &cached); err == nil {
        return cached, nil
      }
      s.log.Warn("Discarding malformed trending cache entry", "key", cacheKey)
    }
  }

  rows, err := s.repo.ListTop(ctx, nil, limit)
  if err != nil {
    return nil, fmt.Errorf("load trending scores: %w", err)
  }

  entries := make([]TrendingFeedEntry, 0, len(rows))
  for _, row := range rows {
    entry := TrendingFeedEntry{
      ProductID:     row.ProductID,
      TrendingScore: row.TrendingScore,
      Velocity:      row.Velocity,
      Views7d:       row.Views7d,
      Compares7d:    row.Compares7d,
      CalculatedAt:  row.CalculatedAt,
    }
    if row.Product != nil {
      entry.Name = row.Product.Name
      entry.Slug = row.Product.Slug
      entry.ProductType = row.Product.ProductType
    }
    entries = append(entries, entry)
  }

  if s.cache != nil {
    if raw, err := json.Marshal(entries); err == nil {
      s.cache.Set(ctx, cacheKey, raw, s.cacheTTL)
    }
  }
  return entries, nil
}
