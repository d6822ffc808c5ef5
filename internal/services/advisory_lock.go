package services

import (
  "context"
  "gorm.io/gorm"
)

// withAdvisoryLock pins one pooled connection, attempts a non-blocking
// session-scoped advisory lock, and runs fn on that same session while the
// lock is held. Contention is not an error: acquired reports false and fn is
// never called. The unlock is deferred inside the pinned-connection callback,
// so it runs on every exit path before the connection goes back to the pool.
func withAdvisoryLock(ctx context.Context, db *gorm.DB, key int64, fn func(conn *gorm.DB) error) (acquired bool, err error) {
  err = db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
    var got bool
    if err := conn.Raw(`SELECT pg_try_advisory_lock(?)`, key).Scan(&got).Error; err != nil {
      return err
    }
    if !got {
      return nil
    }
    acquired = true
    defer func() {
      var released bool
      _ = conn.Raw(`SELECT pg_advisory_unlock(?)`, key).Scan(&released).Error
    }()
    return fn(conn)
  })
  return acquired, err
}
