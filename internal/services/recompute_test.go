package services

import (
  "context"
  "math"
  "testing"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/techkart/techkart-backend/internal/logger"
  "github.com/techkart/techkart-backend/internal/repos"
  "github.com/techkart/techkart-backend/internal/scoring"
  "github.com/techkart/techkart-backend/internal/types"
)

type fakeProductRepo struct {
  products []*types.Product
}

func (f *fakeProductRepo) ListPublishedByType(ctx context.Context, tx *gorm.DB, productType string) ([]*types.Product, error) {
  out := make([]*types.Product, 0, len(f.products))
  for _, p := range f.products {
    if p.ProductType == productType {
      out = append(out, p)
    }
  }
  return out, nil
}

func (f *fakeProductRepo) ListPublished(ctx context.Context, tx *gorm.DB) ([]*types.Product, error) {
  return f.products, nil
}

func (f *fakeProductRepo) GetByIDsWithVariants(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Product, error) {
  return f.products, nil
}

type fakeSignalRepo struct {
  viewsRecent  map[uuid.UUID]int64
  viewsPrev    map[uuid.UUID]int64
  comparesAll  map[uuid.UUID]int64
  wishlistsAll map[uuid.UUID]int64
  recentCutoff time.Time
}

func (f *fakeSignalRepo) DedupedViewCounts(ctx context.Context, tx *gorm.DB, from, to time.Time) (map[uuid.UUID]int64, error) {
  if from.Before(f.recentCutoff) {
    return f.viewsPrev, nil
  }
  return f.viewsRecent, nil
}

func (f *fakeSignalRepo) ComparisonCounts(ctx context.Context, tx *gorm.DB, from, to time.Time) (map[uuid.UUID]int64, error) {
  return f.comparesAll, nil
}

func (f *fakeSignalRepo) WishlistCounts(ctx context.Context, tx *gorm.DB, from, to time.Time) (map[uuid.UUID]int64, error) {
  return f.wishlistsAll, nil
}

type fakeDynamicScoreRepo struct {
  batches [][]*types.ProductDynamicScore
}

func (f *fakeDynamicScoreRepo) UpsertBatch(ctx context.Context, tx *gorm.DB, rows []*types.ProductDynamicScore) (int64, error) {
  f.batches = append(f.batches, rows)
  return int64(len(rows)), nil
}

func (f *fakeDynamicScoreRepo) GetByProductID(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*types.ProductDynamicScore, error) {
  return nil, nil
}

type fakeTrendingScoreRepo struct {
  batches [][]*types.ProductTrendingScore
}

func (f *fakeTrendingScoreRepo) UpsertBatch(ctx context.Context, tx *gorm.DB, rows []*types.ProductTrendingScore) (int64, error) {
  f.batches = append(f.batches, rows)
  return int64(len(rows)), nil
}

func (f *fakeTrendingScoreRepo) ListTop(ctx context.Context, tx *gorm.DB, limit int) ([]*types.ProductTrendingScore, error) {
  return nil, nil
}

var (
  _ repos.ProductRepo       = (*fakeProductRepo)(nil)
  _ repos.SignalRepo        = (*fakeSignalRepo)(nil)
  _ repos.DynamicScoreRepo  = (*fakeDynamicScoreRepo)(nil)
  _ repos.TrendingScoreRepo = (*fakeTrendingScoreRepo)(nil)
)

func testScoreConfig() ScoreConfig {
  return ScoreConfig{
    WindowDays:           scoring.DefaultWindowDays,
    Smoothing:            scoring.DefaultSmoothing,
    HalfLifeDays:         scoring.DefaultHalfLifeDays,
    HookLockBase:         defaultHookLockBase,
    TrendingLockKey:      defaultTrendingLockKey,
    BuyerIntentWeights:   scoring.DefaultBuyerIntentWeights(),
    TrendVelocityWeights: scoring.DefaultTrendVelocityWeights(),
    HookWeights:          scoring.DefaultHookScoreWeights(),
    TrendingWeights:      scoring.DefaultTrendingWeights(),
  }
}

func testLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("production")
  if err != nil {
    t.Fatalf("init logger: %v", err)
  }
  return log
}

func TestHookRecomputeRejectsUnsupportedTypeBeforeLocking(t *testing.T) {
  svc := &hookScoreService{
    db:  &gorm.DB{},
    log: testLogger(t),
    cfg: testScoreConfig(),
  }
  if _, err := svc.Recompute(context.Background(), "hovercraft", 7); err == nil {
    t.Fatal("expected error for unsupported product type")
  }
}

func TestHookRecomputePipeline(t *testing.T) {
  now := time.Now().UTC()
  oldLaunch := now.AddDate(0, 0, -365)
  hot := &types.Product{ID: uuid.New(), Name: "Hot Phone", ProductType: types.ProductTypeSmartphone, LaunchDate: &now}
  cold := &types.Product{ID: uuid.New(), Name: "Cold Phone", ProductType: types.ProductTypeSmartphone, LaunchDate: &oldLaunch}

  signals := &fakeSignalRepo{
    // Flat recent/previous windows keep every velocity at zero, so the hook
    // score differences below come only from magnitudes and freshness.
    viewsRecent:  map[uuid.UUID]int64{hot.ID: 4},
    viewsPrev:    map[uuid.UUID]int64{hot.ID: 4},
    comparesAll:  map[uuid.UUID]int64{hot.ID: 5},
    wishlistsAll: map[uuid.UUID]int64{hot.ID: 10},
    recentCutoff: now.AddDate(0, 0, -7),
  }
  scores := &fakeDynamicScoreRepo{}
  svc := &hookScoreService{
    log:         testLogger(t),
    cfg:         testScoreConfig(),
    productRepo: &fakeProductRepo{products: []*types.Product{hot, cold}},
    signalRepo:  signals,
    scoreRepo:   scores,
  }

  updated, err := svc.recomputeLocked(context.Background(), nil, types.ProductTypeSmartphone, 7)
  if err != nil {
    t.Fatalf("recompute: %v", err)
  }
  if updated != 2 {
    t.Fatalf("updated=%d, want 2", updated)
  }
  rows := scores.batches[0]
  byID := map[uuid.UUID]*types.ProductDynamicScore{}
  for _, row := range rows {
    byID[row.ProductID] = row
  }

  // Hot product dominates its cohort on every magnitude, so buyer intent is
  // 100; zero velocity everywhere; freshness at launch day is 100. With the
  // default 0.4/0.35/0.25 weights the composite lands on 65.
  hotRow := byID[hot.ID]
  if math.Abs(hotRow.BuyerIntent-100) > 0.01 {
    t.Fatalf("hot buyer intent=%v, want 100", hotRow.BuyerIntent)
  }
  if hotRow.TrendVelocity != 0 {
    t.Fatalf("hot trend velocity=%v, want 0", hotRow.TrendVelocity)
  }
  if math.Abs(hotRow.HookScore-65) > 0.01 {
    t.Fatalf("hot hook score=%v, want 65", hotRow.HookScore)
  }

  // Cold product has no signals and a one-half-life-old launch: freshness
  // 100/e, hook score 0.25 of that.
  coldRow := byID[cold.ID]
  if coldRow.BuyerIntent != 0 {
    t.Fatalf("cold buyer intent=%v, want 0", coldRow.BuyerIntent)
  }
  wantFresh := 100 * math.Exp(-1)
  if math.Abs(coldRow.Freshness-wantFresh) > 0.01 {
    t.Fatalf("cold freshness=%v, want %v", coldRow.Freshness, wantFresh)
  }
  if math.Abs(coldRow.HookScore-0.25*wantFresh) > 0.01 {
    t.Fatalf("cold hook score=%v, want %v", coldRow.HookScore, 0.25*wantFresh)
  }
}

func TestHookRecomputeIdempotentForUnchangedSignals(t *testing.T) {
  now := time.Now().UTC()
  launch := now.AddDate(0, 0, -30)
  a := &types.Product{ID: uuid.New(), Name: "A", ProductType: types.ProductTypeLaptop, LaunchDate: &launch}
  b := &types.Product{ID: uuid.New(), Name: "B", ProductType: types.ProductTypeLaptop, LaunchDate: &launch}

  signals := &fakeSignalRepo{
    viewsRecent:  map[uuid.UUID]int64{a.ID: 12, b.ID: 3},
    viewsPrev:    map[uuid.UUID]int64{a.ID: 6, b.ID: 3},
    comparesAll:  map[uuid.UUID]int64{a.ID: 7, b.ID: 2},
    wishlistsAll: map[uuid.UUID]int64{a.ID: 4},
    recentCutoff: now.AddDate(0, 0, -7),
  }
  scores := &fakeDynamicScoreRepo{}
  svc := &hookScoreService{
    log:         testLogger(t),
    cfg:         testScoreConfig(),
    productRepo: &fakeProductRepo{products: []*types.Product{a, b}},
    signalRepo:  signals,
    scoreRepo:   scores,
  }

  for i := 0; i < 2; i++ {
    if _, err := svc.recomputeLocked(context.Background(), nil, types.ProductTypeLaptop, 7); err != nil {
      t.Fatalf("run %d: %v", i+1, err)
    }
  }
  first, second := scores.batches[0], scores.batches[1]
  if len(first) != len(second) {
    t.Fatalf("row counts differ: %d vs %d", len(first), len(second))
  }
  for i := range first {
    if first[i].ProductID != second[i].ProductID {
      t.Fatalf("row %d product mismatch", i)
    }
    if math.Abs(first[i].BuyerIntent-second[i].BuyerIntent) > 1e-6 ||
      math.Abs(first[i].TrendVelocity-second[i].TrendVelocity) > 1e-6 ||
      math.Abs(first[i].HookScore-second[i].HookScore) > 1e-6 {
      t.Fatalf("row %d scores changed across runs with unchanged signals: %+v vs %+v", i, first[i], second[i])
    }
  }
}

func TestTrendingRecomputeNormalizesPerTypeCohort(t *testing.T) {
  now := time.Now().UTC()
  phone := &types.Product{ID: uuid.New(), Name: "Phone", ProductType: types.ProductTypeSmartphone, LaunchDate: &now}
  tv := &types.Product{ID: uuid.New(), Name: "TV", ProductType: types.ProductTypeTV, LaunchDate: &now}

  signals := &fakeSignalRepo{
    viewsRecent:  map[uuid.UUID]int64{phone.ID: 10, tv.ID: 5},
    viewsPrev:    map[uuid.UUID]int64{phone.ID: 10, tv.ID: 5},
    comparesAll:  map[uuid.UUID]int64{},
    recentCutoff: now.AddDate(0, 0, -7),
  }
  scores := &fakeTrendingScoreRepo{}
  svc := &trendingScoreService{
    log:         testLogger(t),
    cfg:         testScoreConfig(),
    productRepo: &fakeProductRepo{products: []*types.Product{phone, tv}},
    signalRepo:  signals,
    scoreRepo:   scores,
  }

  if _, err := svc.recomputeLocked(context.Background(), nil, 7); err != nil {
    t.Fatalf("recompute: %v", err)
  }
  rows := scores.batches[0]
  byID := map[uuid.UUID]*types.ProductTrendingScore{}
  for _, row := range rows {
    byID[row.ProductID] = row
  }

  // Each product leads its own type cohort, so despite the raw view gap both
  // normalize to 100 and score identically: 0.5 of the views component, with
  // zero compares and zero velocity.
  for _, p := range []*types.Product{phone, tv} {
    row := byID[p.ID]
    if row == nil {
      t.Fatalf("no trending row for %s", p.Name)
    }
    if math.Abs(row.TrendingScore-50) > 0.01 {
      t.Fatalf("%s trending score=%v, want 50", p.Name, row.TrendingScore)
    }
    if row.Velocity != 0 {
      t.Fatalf("%s velocity=%v, want 0", p.Name, row.Velocity)
    }
  }
  if byID[phone.ID].Views7d != 10 || byID[phone.ID].ViewsPrev7d != 10 {
    t.Fatalf("phone raw counts not persisted: %+v", byID[phone.ID])
  }
  if byID[tv.ID].Views7d != 5 {
    t.Fatalf("tv raw views=%d, want 5", byID[tv.ID].Views7d)
  }
}
