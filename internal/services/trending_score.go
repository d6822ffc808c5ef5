package services

import (
  "context"
  "fmt"
  "time"
  "go.opentelemetry.io/otel"
  "go.opentelemetry.io/otel/attribute"
  "gorm.io/gorm"
  "github.com/techkart/techkart-backend/internal/logger"
  "github.com/techkart/techkart-backend/internal/repos"
  "github.com/techkart/techkart-backend/internal/scoring"
  "github.com/techkart/techkart-backend/internal/types"
)

// TrendingScoreService recomputes view/compare momentum across every product
// type in one pass; normalization still happens per-type so a popular phone
// never drowns out every TV.
type TrendingScoreService interface {
  Recompute(ctx context.Context, days int) (RecomputeResult, error)
}

type trendingScoreService struct {
  db          *gorm.DB
  log         *logger.Logger
  cfg         ScoreConfig
  productRepo repos.ProductRepo
  signalRepo  repos.SignalRepo
  scoreRepo   repos.TrendingScoreRepo
}

func NewTrendingScoreService(db *gorm.DB, baseLog *logger.Logger, cfg ScoreConfig, productRepo repos.ProductRepo, signalRepo repos.SignalRepo, scoreRepo repos.TrendingScoreRepo) TrendingScoreService {
  return &trendingScoreService{
    db:          db,
    log:         baseLog.With("service", "TrendingScoreService"),
    cfg:         cfg,
    productRepo: productRepo,
    signalRepo:  signalRepo,
    scoreRepo:   scoreRepo,
  }
}

func (s *trendingScoreService) Recompute(ctx context.Context, days int) (RecomputeResult, error) {
  if s.db == nil {
    return RecomputeResult{}, fmt.Errorf("no database handle")
  }
  if days <= 0 {
    days = s.cfg.WindowDays
  }

  ctx, span := otel.Tracer("services").Start(ctx, "TrendingScoreService.Recompute")
  defer span.End()
  span.SetAttributes(attribute.Int("days", days))

  result := RecomputeResult{Ok: true, Days: days}

  acquired, err := withAdvisoryLock(ctx, s.db, s.cfg.TrendingLockKey, func(conn *gorm.DB) error {
    return conn.Transaction(func(tx *gorm.DB) error {
      updated, err := s.recomputeLocked(ctx, tx, days)
      if err != nil {
        return err
      }
      result.Updated = updated
      return nil
    })
  })
  if err != nil {
    return RecomputeResult{}, err
  }
  if !acquired {
    s.log.Info("Trending recompute skipped, lock held by another run", "lock_key", s.cfg.TrendingLockKey)
    result.Skipped = true
    return result, nil
  }

  s.log.Info("Trending recompute finished", "days", days, "updated", result.Updated)
  return result, nil
}

func (s *trendingScoreService) recomputeLocked(ctx context.Context, tx *gorm.DB, days int) (int64, error) {
  products, err := s.productRepo.ListPublished(ctx, tx)
  if err != nil {
    return 0, fmt.Errorf("load candidates: %w", err)
  }
  if len(products) == 0 {
    return 0, nil
  }

  now := time.Now().UTC()
  recentFrom := now.AddDate(0, 0, -days)
  prevFrom := now.AddDate(0, 0, -2*days)

  viewsRecent, err := s.signalRepo.DedupedViewCounts(ctx, tx, recentFrom, now)
  if err != nil {
    return 0, fmt.Errorf("aggregate recent views: %w", err)
  }
  viewsPrev, err := s.signalRepo.DedupedViewCounts(ctx, tx, prevFrom, recentFrom)
  if err != nil {
    return 0, fmt.Errorf("aggregate previous views: %w", err)
  }
  comparesRecent, err := s.signalRepo.ComparisonCounts(ctx, tx, recentFrom, now)
  if err != nil {
    return 0, fmt.Errorf("aggregate recent comparisons: %w", err)
  }

  n := len(products)
  viewValues := make([]scoring.CohortValue, n)
  compareValues := make([]scoring.CohortValue, n)
  velocityValues := make([]scoring.CohortValue, n)
  velocities := make([]float64, n)
  for i, p := range products {
    velocities[i] = scoring.VelocityRaw(float64(viewsRecent[p.ID]), float64(viewsPrev[p.ID]), s.cfg.Smoothing)
    viewValues[i] = scoring.CohortValue{Cohort: p.ProductType, Raw: float64(viewsRecent[p.ID])}
    compareValues[i] = scoring.CohortValue{Cohort: p.ProductType, Raw: float64(comparesRecent[p.ID])}
    velocityValues[i] = scoring.CohortValue{Cohort: p.ProductType, Raw: velocities[i]}
  }
  normViews := scoring.NormalizeByCohort(viewValues)
  normCompares := scoring.NormalizeByCohort(compareValues)
  normVelocity := scoring.NormalizeByCohort(velocityValues)

  rows := make([]*types.ProductTrendingScore, 0, n)
  for i, p := range products {
    trendingScore := scoring.Compose(scoring.WeightSet{
      scoring.KeyViews:    normViews[i],
      scoring.KeyCompares: normCompares[i],
      scoring.KeyVelocity: normVelocity[i],
    }, s.cfg.TrendingWeights, scoring.DefaultTrendingWeights())

    rows = append(rows, &types.ProductTrendingScore{
      ProductID:     p.ID,
      Views7d:       viewsRecent[p.ID],
      Compares7d:    comparesRecent[p.ID],
      ViewsPrev7d:   viewsPrev[p.ID],
      Velocity:      velocities[i],
      TrendingScore: trendingScore,
      CalculatedAt:  now,
    })
  }

  updated, err := s.scoreRepo.UpsertBatch(ctx, tx, rows)
  if err != nil {
    return 0, fmt.Errorf("upsert trending scores: %w", err)
  }
  return updated, nil
}
