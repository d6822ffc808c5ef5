package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/techkart/techkart-backend/internal/logger"
)

// SignalRepo turns raw event logs into windowed per-product counts. Every
// method returns a map keyed by product_id; products with no matching rows are
// simply absent, and callers must read absences as zero.
type SignalRepo interface {
  DedupedViewCounts(ctx context.Context, tx *gorm.DB, from, to time.Time) (map[uuid.UUID]int64, error)
  ComparisonCounts(ctx context.Context, tx *gorm.DB, from, to time.Time) (map[uuid.UUID]int64, error)
  WishlistCounts(ctx context.Context, tx *gorm.DB, from, to time.Time) (map[uuid.UUID]int64, error)
}

type signalRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSignalRepo(db *gorm.DB, baseLog *logger.Logger) SignalRepo {
  return &signalRepo{db: db, log: baseLog.With("repo", "SignalRepo")}
}

type signalCount struct {
  ProductID uuid.UUID `gorm:"column:product_id"`
  Cnt       int64     `gorm:"column:cnt"`
}

// DedupedViewCounts counts views with COALESCE(visitor_key, id::text) as the
// dedup key: known visitors are counted once per event identity, anonymous
// rows each count on their own.
func (r *signalRepo) DedupedViewCounts(ctx context.Context, tx *gorm.DB, from, to time.Time) (map[uuid.UUID]int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var rows []signalCount
  if err := transaction.WithContext(ctx).Raw(`
    SELECT product_id, COUNT(DISTINCT COALESCE(visitor_key, id::text)) AS cnt
    FROM product_view_log
    WHERE viewed_at >= ? AND viewed_at < ?
    GROUP BY product_id
  `, from, to).Scan(&rows).Error; err != nil {
    return nil, err
  }
  return toCountMap(rows), nil
}

// ComparisonCounts treats a comparison as symmetric: the event counts toward
// both sides of the pairing.
func (r *signalRepo) ComparisonCounts(ctx context.Context, tx *gorm.DB, from, to time.Time) (map[uuid.UUID]int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var rows []signalCount
  if err := transaction.WithContext(ctx).Raw(`
    SELECT product_id, COUNT(*) AS cnt
    FROM (
      SELECT product_id, compared_at FROM product_comparison_log
      UNION ALL
      SELECT compared_with_id AS product_id, compared_at FROM product_comparison_log
    ) sides
    WHERE compared_at >= ? AND compared_at < ?
    GROUP BY product_id
  `, from, to).Scan(&rows).Error; err != nil {
    return nil, err
  }
  return toCountMap(rows), nil
}

func (r *signalRepo) WishlistCounts(ctx context.Context, tx *gorm.DB, from, to time.Time) (map[uuid.UUID]int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var rows []signalCount
  if err := transaction.WithContext(ctx).Raw(`
    SELECT product_id, COUNT(*) AS cnt
    FROM wishlist_item
    WHERE created_at >= ? AND created_at < ? AND deleted_at IS NULL
    GROUP BY product_id
  `, from, to).Scan(&rows).Error; err != nil {
    return nil, err
  }
  return toCountMap(rows), nil
}

func toCountMap(rows []signalCount) map[uuid.UUID]int64 {
  out := make(map[uuid.UUID]int64, len(rows))
  for _, row := range rows {
    out[row.ProductID] = row.Cnt
  }
  return out
}
