package main

import (
  "context"
  "fmt"
  "os"
  "time"

  "github.com/joho/godotenv"
  "golang.org/x/sync/errgroup"

  "github.com/techkart/techkart-backend/internal/db"
  "github.com/techkart/techkart-backend/internal/logger"
  "github.com/techkart/techkart-backend/internal/observability"
  "github.com/techkart/techkart-backend/internal/repos"
  "github.com/techkart/techkart-backend/internal/services"
  "github.com/techkart/techkart-backend/internal/types"
  "github.com/techkart/techkart-backend/internal/utils"
)

// One-shot recompute of every dynamic score. Meant to be run from cron or by
// hand after a bulk catalog import; the API scheduler covers steady state.
func main() {
  _ = godotenv.Load()

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

  timeoutMin := utils.GetEnvAsInt("RECOMPUTE_TIMEOUT_MINUTES", 30, log)
  scoreCfg := services.LoadScoreConfig(log)

  otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
    ServiceName: observability.ServiceName,
    Environment: logMode,
    Version:     utils.GetEnv("SERVICE_VERSION", "dev", log),
  })
  if otelShutdown != nil {
    defer func() {
      sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
      defer cancel()
      _ = otelShutdown(sctx)
    }()
  }

  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  productRepo := repos.NewProductRepo(thePG, log)
  signalRepo := repos.NewSignalRepo(thePG, log)
  dynamicScoreRepo := repos.NewDynamicScoreRepo(thePG, log)
  trendingScoreRepo := repos.NewTrendingScoreRepo(thePG, log)

  hookScoreService := services.NewHookScoreService(thePG, log, scoreCfg, productRepo, signalRepo, dynamicScoreRepo)
  trendingScoreService := services.NewTrendingScoreService(thePG, log, scoreCfg, productRepo, signalRepo, trendingScoreRepo)

  ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutMin)*time.Minute)
  defer cancel()

  started := time.Now()
  g, gctx := errgroup.WithContext(ctx)

  for _, productType := range types.SupportedProductTypes() {
    pt := productType
    g.Go(func() error {
      res, err := hookScoreService.Recompute(gctx, pt, 0)
      if err != nil {
        return fmt.Errorf("hook score recompute for %s: %w", pt, err)
      }
      if res.Skipped {
        log.Warn("Hook score recompute skipped, another run holds the lock", "product_type", pt)
        return nil
      }
      log.Info("Hook score recompute finished", "product_type", pt, "updated", res.Updated)
      return nil
    })
  }

  g.Go(func() error {
    res, err := trendingScoreService.Recompute(gctx, 0)
    if err != nil {
      return fmt.Errorf("trending score recompute: %w", err)
    }
    if res.Skipped {
      log.Warn("Trending score recompute skipped, another run holds the lock")
      return nil
    }
    log.Info("Trending score recompute finished", "updated", res.Updated)
    return nil
  })

  if err := g.Wait(); err != nil {
    log.Error("Score recompute failed", "error", err)
    os.Exit(1)
  }
  log.Info("All score recomputes finished", "elapsed", time.Since(started).String())
}
