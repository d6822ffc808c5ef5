package repos

import (
  "context"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/techkart/techkart-backend/internal/logger"
  "github.com/techkart/techkart-backend/internal/types"
)

// EventLogRepo is the collaborator-side write path for the raw signal logs the
// scoring core reads.
type EventLogRepo interface {
  RecordView(ctx context.Context, tx *gorm.DB, view *types.ProductViewLog) error
  RecordComparison(ctx context.Context, tx *gorm.DB, comparison *types.ProductComparisonLog) error
  RecordWishlistAdd(ctx context.Context, tx *gorm.DB, item *types.WishlistItem) error
}

type eventLogRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewEventLogRepo(db *gorm.DB, baseLog *logger.Logger) EventLogRepo {
  return &eventLogRepo{db: db, log: baseLog.With("repo", "EventLogRepo")}
}

func (r *eventLogRepo) RecordView(ctx context.Context, tx *gorm.DB, view *types.ProductViewLog) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Create(view).Error
}

func (r *eventLogRepo) RecordComparison(ctx context.Context, tx *gorm.DB, comparison *types.ProductComparisonLog) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Create(comparison).Error
}

// RecordWishlistAdd is idempotent per (customer_id, product_id); re-adding an
// already wishlisted product is a no-op, not an error. A soft-deleted row still
// occupies the unique index, so the conflict path revives it rather than doing
// nothing: deleted_at is cleared and created_at refreshed so the add counts in
// the current window again. A live row is left untouched.
func (r *eventLogRepo) RecordWishlistAdd(ctx context.Context, tx *gorm.DB, item *types.WishlistItem) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Clauses(clause.OnConflict{
    Columns: []clause.Column{{Name: "customer_id"}, {Name: "product_id"}},
    DoUpdates: clause.Assignments(map[string]interface{}{
      "deleted_at": nil,
      "created_at": item.CreatedAt,
    }),
    Where: clause.Where{Exprs: []clause.Expression{
      clause.Expr{SQL: "wishlist_item.deleted_at IS NOT NULL"},
    }},
  }).Create(item).Error
}
