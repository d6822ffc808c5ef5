package main

import (
  "context"
  "fmt"
  "os"
  "time"

  "github.com/joho/godotenv"

  redisclient "github.com/techkart/techkart-backend/internal/clients/redis"
  "github.com/techkart/techkart-backend/internal/db"
  "github.com/techkart/techkart-backend/internal/handlers"
  "github.com/techkart/techkart-backend/internal/jobs"
  "github.com/techkart/techkart-backend/internal/logger"
  "github.com/techkart/techkart-backend/internal/middleware"
  "github.com/techkart/techkart-backend/internal/observability"
  "github.com/techkart/techkart-backend/internal/repos"
  "github.com/techkart/techkart-backend/internal/server"
  "github.com/techkart/techkart-backend/internal/services"
  "github.com/techkart/techkart-backend/internal/utils"
)

func main() {
  _ = godotenv.Load()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  adminKey := utils.GetEnv("ADMIN_API_KEY", "", log)
  port := utils.GetEnv("PORT", "8080", log)
  schedulerEnabled := utils.GetEnvAsBool("SCORE_SCHEDULER_ENABLED", true, log)
  hookIntervalMin := utils.GetEnvAsInt("HOOK_RECOMPUTE_INTERVAL_MINUTES", 360, log)
  trendingIntervalMin := utils.GetEnvAsInt("TRENDING_RECOMPUTE_INTERVAL_MINUTES", 60, log)
  trendingCacheTTL := utils.GetEnvAsInt("TRENDING_CACHE_TTL_SECONDS", 60, log)
  scoreCfg := services.LoadScoreConfig(log)

  // Tracing
  otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
    ServiceName: observability.ServiceName,
    Environment: logMode,
    Version:     utils.GetEnv("SERVICE_VERSION", "dev", log),
  })
  if otelShutdown != nil {
    defer func() {
      ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
      defer cancel()
      _ = otelShutdown(ctx)
    }()
  }

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  productRepo := repos.NewProductRepo(thePG, log)
  signalRepo := repos.NewSignalRepo(thePG, log)
  dynamicScoreRepo := repos.NewDynamicScoreRepo(thePG, log)
  trendingScoreRepo := repos.NewTrendingScoreRepo(thePG, log)
  eventLogRepo := repos.NewEventLogRepo(thePG, log)

  // Redis cache (optional)
  scoreCache, err := redisclient.NewScoreCache(log)
  if err != nil {
    log.Warn("Redis score cache unavailable, trending reads go straight to Postgres", "error", err)
    scoreCache = nil
  } else {
    defer scoreCache.Close()
  }

  // Services
  log.Info("Setting up Services from main...")
  hookScoreService := services.NewHookScoreService(thePG, log, scoreCfg, productRepo, signalRepo, dynamicScoreRepo)
  trendingScoreService := services.NewTrendingScoreService(thePG, log, scoreCfg, productRepo, signalRepo, trendingScoreRepo)
  compareService := services.NewCompareService(log, productRepo)
  trendingFeedService := services.NewTrendingFeedService(log, trendingScoreRepo, scoreCache, time.Duration(trendingCacheTTL)*time.Second)
  trackingService := services.NewTrackingService(log, eventLogRepo)

  // Scheduler
  if schedulerEnabled {
    scheduler := jobs.NewScheduler(
      log,
      hookScoreService,
      trendingScoreService,
      time.Duration(hookIntervalMin)*time.Minute,
      time.Duration(trendingIntervalMin)*time.Minute,
    )
    scheduler.Start(context.Background())
  }

  // Handlers
  compareHandler := handlers.NewCompareHandler(log, compareService)
  scoreHandler := handlers.NewScoreHandler(log, hookScoreService, trendingScoreService, trendingFeedService, dynamicScoreRepo)
  trackHandler := handlers.NewTrackHandler(log, trackingService)

  // Middleware
  adminKeyMiddleware := middleware.NewAdminKeyMiddleware(log, adminKey)

  // Router
  router := server.NewRouter(server.RouterConfig{
    CompareHandler:     compareHandler,
    ScoreHandler:       scoreHandler,
    TrackHandler:       trackHandler,
    AdminKeyMiddleware: adminKeyMiddleware,
  })

  log.Info("Starting server", "port", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server exited", "error", err)
    os.Exit(1)
  }
}
