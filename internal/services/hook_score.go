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

// HookScoreService recomputes the buyer-intent/trend-velocity/freshness
// composite for one product-type cohort per run.
type HookScoreService interface {
  Recompute(ctx context.Context, productType string, days int) (RecomputeResult, error)
}

type hookScoreService struct {
  db          *gorm.DB
  log         *logger.Logger
  cfg         ScoreConfig
  productRepo repos.ProductRepo
  signalRepo  repos.SignalRepo
  scoreRepo   repos.DynamicScoreRepo
}

func NewHookScoreService(db *gorm.DB, baseLog *logger.Logger, cfg ScoreConfig, productRepo repos.ProductRepo, signalRepo repos.SignalRepo, scoreRepo repos.DynamicScoreRepo) HookScoreService {
  return &hookScoreService{
    db:          db,
    log:         baseLog.With("service", "HookScoreService"),
    cfg:         cfg,
    productRepo: productRepo,
    signalRepo:  signalRepo,
    scoreRepo:   scoreRepo,
  }
}

// Recompute validates input before touching the lock, then runs read ->
// normalize -> compose -> upsert inside one transaction on the session that
// holds the advisory lock. Lock contention reports Skipped, never an error;
// per-type lock offsets let different cohorts recompute concurrently.
func (s *hookScoreService) Recompute(ctx context.Context, productType string, days int) (RecomputeResult, error) {
  if s.db == nil {
    return RecomputeResult{}, fmt.Errorf("no database handle")
  }
  if !types.IsSupportedProductType(productType) {
    return RecomputeResult{}, fmt.Errorf("unsupported product type %q", productType)
  }
  if days <= 0 {
    days = s.cfg.WindowDays
  }

  ctx, span := otel.Tracer("services").Start(ctx, "HookScoreService.Recompute")
  defer span.End()
  span.SetAttributes(attribute.String("product_type", productType), attribute.Int("days", days))

  result := RecomputeResult{Ok: true, ProductType: productType, Days: days}
  lockKey := s.cfg.HookLockBase + productTypeLockOffset(productType)

  acquired, err := withAdvisoryLock(ctx, s.db, lockKey, func(conn *gorm.DB) error {
    return conn.Transaction(func(tx *gorm.DB) error {
      updated, err := s.recomputeLocked(ctx, tx, productType, days)
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
    s.log.Info("Hook score recompute skipped, lock held by another run", "product_type", productType, "lock_key", lockKey)
    result.Skipped = true
    return result, nil
  }

  s.log.Info("Hook score recompute finished", "product_type", productType, "days", days, "updated", result.Updated)
  return result, nil
}

func (s *hookScoreService) recomputeLocked(ctx context.Context, tx *gorm.DB, productType string, days int) (int64, error) {
  products, err := s.productRepo.ListPublishedByType(ctx, tx, productType)
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
  comparesPrev, err := s.signalRepo.ComparisonCounts(ctx, tx, prevFrom, recentFrom)
  if err != nil {
    return 0, fmt.Errorf("aggregate previous comparisons: %w", err)
  }
  // Wishlist adds feed buyer-intent magnitude only; there is deliberately no
  // wishlist velocity counterpart.
  wishRecent, err := s.signalRepo.WishlistCounts(ctx, tx, recentFrom, now)
  if err != nil {
    return 0, fmt.Errorf("aggregate wishlist adds: %w", err)
  }

  n := len(products)
  wishValues := make([]scoring.CohortValue, n)
  compareValues := make([]scoring.CohortValue, n)
  viewVelValues := make([]scoring.CohortValue, n)
  compareVelValues := make([]scoring.CohortValue, n)
  for i, p := range products {
    wishValues[i] = scoring.CohortValue{Cohort: productType, Raw: float64(wishRecent[p.ID])}
    compareValues[i] = scoring.CohortValue{Cohort: productType, Raw: float64(comparesRecent[p.ID])}
    viewVelValues[i] = scoring.CohortValue{
      Cohort: productType,
      Raw:    scoring.VelocityRaw(float64(viewsRecent[p.ID]), float64(viewsPrev[p.ID]), s.cfg.Smoothing),
    }
    compareVelValues[i] = scoring.CohortValue{
      Cohort: productType,
      Raw:    scoring.VelocityRaw(float64(comparesRecent[p.ID]), float64(comparesPrev[p.ID]), s.cfg.Smoothing),
    }
  }
  normWish := scoring.NormalizeByCohort(wishValues)
  normCompare := scoring.NormalizeByCohort(compareValues)
  normViewVel := scoring.NormalizeByCohort(viewVelValues)
  normCompareVel := scoring.NormalizeByCohort(compareVelValues)

  rows := make([]*types.ProductDynamicScore, 0, n)
  for i, p := range products {
    buyerIntent := scoring.Compose(scoring.WeightSet{
      scoring.KeyWishlists: normWish[i],
      scoring.KeyCompares:  normCompare[i],
    }, s.cfg.BuyerIntentWeights, scoring.DefaultBuyerIntentWeights())

    trendVelocity := scoring.Compose(scoring.WeightSet{
      scoring.KeyViews:    normViewVel[i],
      scoring.KeyCompares: normCompareVel[i],
    }, s.cfg.TrendVelocityWeights, scoring.DefaultTrendVelocityWeights())

    ageDays := now.Sub(p.LaunchedAt()).Hours() / 24
    freshness := scoring.Freshness(ageDays, s.cfg.HalfLifeDays)

    hookScore := scoring.Compose(scoring.WeightSet{
      scoring.KeyBuyerIntent:   buyerIntent,
      scoring.KeyTrendVelocity: trendVelocity,
      scoring.KeyFreshness:     freshness,
    }, s.cfg.HookWeights, scoring.DefaultHookScoreWeights())

    rows = append(rows, &types.ProductDynamicScore{
      ProductID:     p.ID,
      BuyerIntent:   buyerIntent,
      TrendVelocity: trendVelocity,
      Freshness:     freshness,
      HookScore:     hookScore,
      CalculatedAt:  now,
    })
  }

  updated, err := s.scoreRepo.UpsertBatch(ctx, tx, rows)
  if err != nil {
    return 0, fmt.Errorf("upsert dynamic scores: %w", err)
  }
  return updated, nil
}

func productTypeLockOffset(productType string) int64 {
  for i, t := range types.SupportedProductTypes() {
    if t == productType {
      return int64(i + 1)
    }
  }
  return 0
}
