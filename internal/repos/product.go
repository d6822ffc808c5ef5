package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/techkart/techkart-backend/internal/logger"
  "github.com/techkart/techkart-backend/internal/types"
)

type ProductRepo interface {
  ListPublishedByType(ctx context.Context, tx *gorm.DB, productType string) ([]*types.Product, error)
  ListPublished(ctx context.Context, tx *gorm.DB) ([]*types.Product, error)
  GetByIDsWithVariants(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Product, error)
}

type productRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
  return &productRepo{db: db, log: baseLog.With("repo", "ProductRepo")}
}

func (r *productRepo) ListPublishedByType(ctx context.Context, tx *gorm.DB, productType string) ([]*types.Product, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Product
  if err := transaction.WithContext(ctx).
    Where("product_type = ? AND is_published = ?", productType, true).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *productRepo) ListPublished(ctx context.Context, tx *gorm.DB) ([]*types.Product, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Product
  if err := transaction.WithContext(ctx).
    Where("is_published = ?", true).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *productRepo) GetByIDsWithVariants(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Product, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Product
  if len(ids) == 0 {
    return results, nil
  }
  if err := transaction.WithContext(ctx).
    Preload("Variants").
    Where("id IN ?", ids).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
