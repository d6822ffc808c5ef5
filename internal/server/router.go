package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
  "github.com/techkart/techkart-backend/internal/handlers"
  "github.com/techkart/techkart-backend/internal/middleware"
  "github.com/techkart/techkart-backend/internal/observability"
)

type RouterConfig struct {
  CompareHandler     *handlers.CompareHandler
  ScoreHandler       *handlers.ScoreHandler
  TrackHandler       *handlers.TrackHandler
  AdminKeyMiddleware *middleware.AdminKeyMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Tracing (noop provider unless OTEL_ENABLED)
  router.Use(otelgin.Middleware(observability.ServiceName))

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Admin-Key"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  api := router.Group("/api")
  {
    api.POST("/products/compare", cfg.CompareHandler.Compare)
    api.GET("/products/trending", cfg.ScoreHandler.GetTrending)
    api.GET("/products/:id/score", cfg.ScoreHandler.GetProductScore)
    api.POST("/track/view", cfg.TrackHandler.TrackView)
    api.POST("/track/comparison", cfg.TrackHandler.TrackComparison)
    api.POST("/track/wishlist", cfg.TrackHandler.TrackWishlistAdd)
  }

// ===============
// || Admin     ||
// ===============
  admin := router.Group("/api/admin")
  admin.Use(cfg.AdminKeyMiddleware.RequireAdminKey())
  admin.POST("/scores/hook/recompute", cfg.ScoreHandler.RecomputeHookScores)
  admin.POST("/scores/trending/recompute", cfg.ScoreHandler.RecomputeTrendingScores)

  return router
}
