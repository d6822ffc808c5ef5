package repos

import (
  "context"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/techkart/techkart-backend/internal/logger"
  "github.com/techkart/techkart-backend/internal/types"
)

type TrendingScoreRepo interface {
  UpsertBatch(ctx context.Context, tx *gorm.DB, rows []*types.ProductTrendingScore) (int64, error)
  ListTop(ctx context.Context, tx *gorm.DB, limit int) ([]*types.ProductTrendingScore, error)
}

type trendingScoreRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewTrendingScoreRepo(db *gorm.DB, baseLog *logger.Logger) TrendingScoreRepo {
  return &trendingScoreRepo{db: db, log: baseLog.With("repo", "TrendingScoreRepo")}
}

func (r *trendingScoreRepo) UpsertBatch(ctx context.Context, tx *gorm.DB, rows []*types.ProductTrendingScore) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if len(rows) == 0 {
    return 0, nil
  }

  res := transaction.WithContext(ctx).Clauses(clause.OnConflict{
    Columns: []clause.Column{{Name: "product_id"}},
    DoUpdates: clause.AssignmentColumns([]string{
      "views_7d", "compares_7d", "views_prev_7d", "velocity", "trending_score", "calculated_at",
    }),
  }).Create(&rows)
  if res.Error != nil {
    return 0, res.Error
  }
  return res.RowsAffected, nil
}

func (r *trendingScoreRepo) ListTop(ctx context.Context, tx *gorm.DB, limit int) ([]*types.ProductTrendingScore, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if limit <= 0 {
    limit = 20
  }

  var results []*types.ProductTrendingScore
  if err := transaction.WithContext(ctx).
    Preload("Product").
    Order("trending_score DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
