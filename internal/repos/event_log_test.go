package repos

import (
  "context"
  "strings"
  "testing"
  "time"
  "github.com/google/uuid"
  "gorm.io/driver/postgres"
  "gorm.io/gorm"
  "github.com/techkart/techkart-backend/internal/logger"
  "github.com/techkart/techkart-backend/internal/types"
)

// dryRunDB builds statements against the postgres dialect without a live
// server: the pool is opened lazily and DryRun stops execution before any
// connection is used.
func dryRunDB(t *testing.T) *gorm.DB {
  t.Helper()
  db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost"}), &gorm.Config{
    DryRun:                 true,
    DisableAutomaticPing:   true,
    SkipDefaultTransaction: true,
  })
  if err != nil {
    t.Fatalf("open dry-run db: %v", err)
  }
  return db
}

func TestRecordWishlistAddRevivesSoftDeletedRow(t *testing.T) {
  db := dryRunDB(t)
  var captured string
  if err := db.Callback().Create().After("gorm:create").Register("capture_sql", func(tx *gorm.DB) {
    captured = tx.Statement.SQL.String()
  }); err != nil {
    t.Fatalf("register callback: %v", err)
  }

  log, err := logger.New("production")
  if err != nil {
    t.Fatalf("init logger: %v", err)
  }
  repo := NewEventLogRepo(db, log)

  item := &types.WishlistItem{
    CustomerID: uuid.New(),
    ProductID:  uuid.New(),
    CreatedAt:  time.Now().UTC(),
  }
  if err := repo.RecordWishlistAdd(context.Background(), nil, item); err != nil {
    t.Fatalf("record wishlist add: %v", err)
  }

  // A soft-deleted row still occupies the (customer_id, product_id) unique
  // index. The conflict path must revive it — clear deleted_at and refresh
  // created_at — but only touch rows that are actually soft-deleted, so a
  // live row stays a no-op.
  for _, want := range []string{
    `ON CONFLICT ("customer_id","product_id") DO UPDATE SET`,
    `"deleted_at"=`,
    `"created_at"=`,
    `wishlist_item.deleted_at IS NOT NULL`,
  } {
    if !strings.Contains(captured, want) {
      t.Fatalf("generated SQL missing %q:\n%s", want, captured)
    }
  }
  if strings.Contains(captured, "DO NOTHING") {
    t.Fatalf("wishlist upsert still swallows conflicts:\n%s", captured)
  }
}
