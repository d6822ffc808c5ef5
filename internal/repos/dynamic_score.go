package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/techkart/techkart-backend/internal/logger"
  "github.com/techkart/techkart-backend/internal/types"
)

type DynamicScoreRepo interface {
  UpsertBatch(ctx context.Context, tx *gorm.DB, rows []*types.ProductDynamicScore) (int64, error)
  GetByProductID(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*types.ProductDynamicScore, error)
}

type dynamicScoreRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewDynamicScoreRepo(db *gorm.DB, baseLog *logger.Logger) DynamicScoreRepo {
  return &dynamicScoreRepo{db: db, log: baseLog.With("repo", "DynamicScoreRepo")}
}

// UpsertBatch writes one row per product keyed on the unique product_id,
// always overwriting prior values and refreshing calculated_at.
func (r *dynamicScoreRepo) UpsertBatch(ctx context.Context, tx *gorm.DB, rows []*types.ProductDynamicScore) (int64, error) {
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
      "buyer_intent", "trend_velocity", "freshness", "hook_score", "calculated_at",
    }),
  }).Create(&rows)
  if res.Error != nil {
    return 0, res.Error
  }
  return res.RowsAffected, nil
}

func (r *dynamicScoreRepo) GetByProductID(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*types.ProductDynamicScore, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var row types.ProductDynamicScore
  err := transaction.WithContext(ctx).
    Where("product_id = ?", productID).
    Limit(1).
    Find(&row).Error
  if err != nil {
    return nil, err
  }
  if row.ID == uuid.Nil {
    return nil, nil
  }
  return &row, nil
}
