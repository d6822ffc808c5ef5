package middleware

import (
  "crypto/subtle"
  "net/http"
  "strings"
  "github.com/gin-gonic/gin"
  "github.com/techkart/techkart-backend/internal/logger"
)

// AdminKeyMiddleware guards the on-demand recompute triggers with a shared
// key. Full customer auth lives in the account service; these endpoints only
// need to keep arbitrary callers from burning batch cycles.
type AdminKeyMiddleware struct {
  log      *logger.Logger
  adminKey string
}

func NewAdminKeyMiddleware(log *logger.Logger, adminKey string) *AdminKeyMiddleware {
  return &AdminKeyMiddleware{
    log:      log.With("Middleware", "AdminKeyMiddleware"),
    adminKey: adminKey,
  }
}

func (m *AdminKeyMiddleware) RequireAdminKey() gin.HandlerFunc {
  return func(c *gin.Context) {
    if m.adminKey == "" {
      m.log.Warn("ADMIN_API_KEY not configured, rejecting admin request")
      c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin endpoints disabled"})
      return
    }
    provided := extractAdminKey(c)
    if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(m.adminKey)) != 1 {
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid admin key"})
      return
    }
    c.Next()
  }
}

func extractAdminKey(c *gin.Context) string {
  if key := c.GetHeader("X-Admin-Key"); key != "" {
    return key
  }
  authHeader := c.GetHeader("Authorization")
  if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
    return authHeader[7:]
  }
  return ""
}
