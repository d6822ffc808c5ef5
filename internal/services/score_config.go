package services

import (
  "github.com/techkart/techkart-backend/internal/logger"
  "github.com/techkart/techkart-backend/internal/scoring"
  "github.com/techkart/techkart-backend/internal/utils"
)

// ScoreConfig carries the tunables for both recompute families. Defaults are
// the documented constants; every entry can be overridden per deployment.
// Weight maps pass through scoring.NormalizeWeights at composition time, so a
// broken override degrades to defaults instead of breaking a batch run.
type ScoreConfig struct {
  WindowDays           int
  Smoothing            float64
  HalfLifeDays         float64
  HookLockBase         int64
  TrendingLockKey      int64
  BuyerIntentWeights   scoring.WeightSet
  TrendVelocityWeights scoring.WeightSet
  HookWeights          scoring.WeightSet
  TrendingWeights      scoring.WeightSet
}

const (
  defaultHookLockBase    = 874100
  defaultTrendingLockKey = 874200
)

func LoadScoreConfig(log *logger.Logger) ScoreConfig {
  return ScoreConfig{
    WindowDays:      utils.GetEnvAsInt("SCORE_WINDOW_DAYS", scoring.DefaultWindowDays, log),
    Smoothing:       utils.GetEnvAsFloat64("SCORE_SMOOTHING", scoring.DefaultSmoothing, log),
    HalfLifeDays:    utils.GetEnvAsFloat64("SCORE_FRESHNESS_HALF_LIFE_DAYS", scoring.DefaultHalfLifeDays, log),
    HookLockBase:    int64(utils.GetEnvAsInt("HOOK_SCORE_LOCK_KEY", defaultHookLockBase, log)),
    TrendingLockKey: int64(utils.GetEnvAsInt("TRENDING_SCORE_LOCK_KEY", defaultTrendingLockKey, log)),
    BuyerIntentWeights: scoring.WeightSet{
      scoring.KeyWishlists: utils.GetEnvAsFloat64("BUYER_INTENT_WEIGHT_WISHLISTS", 0.6, log),
      scoring.KeyCompares:  utils.GetEnvAsFloat64("BUYER_INTENT_WEIGHT_COMPARES", 0.4, log),
    },
    TrendVelocityWeights: scoring.WeightSet{
      scoring.KeyViews:    utils.GetEnvAsFloat64("TREND_VELOCITY_WEIGHT_VIEWS", 0.6, log),
      scoring.KeyCompares: utils.GetEnvAsFloat64("TREND_VELOCITY_WEIGHT_COMPARES", 0.4, log),
    },
    HookWeights: scoring.WeightSet{
      scoring.KeyBuyerIntent:   utils.GetEnvAsFloat64("HOOK_WEIGHT_BUYER_INTENT", 0.4, log),
      scoring.KeyTrendVelocity: utils.GetEnvAsFloat64("HOOK_WEIGHT_TREND_VELOCITY", 0.35, log),
      scoring.KeyFreshness:     utils.GetEnvAsFloat64("HOOK_WEIGHT_FRESHNESS", 0.25, log),
    },
    TrendingWeights: scoring.WeightSet{
      scoring.KeyViews:    utils.GetEnvAsFloat64("TRENDING_WEIGHT_VIEWS", 0.5, log),
      scoring.KeyCompares: utils.GetEnvAsFloat64("TRENDING_WEIGHT_COMPARES", 0.2, log),
      scoring.KeyVelocity: utils.GetEnvAsFloat64("TRENDING_WEIGHT_VELOCITY", 0.3, log),
    },
  }
}

// RecomputeResult is the orchestrator output contract. Skipped means another
// run held the lock; Updated 0 with Ok true means no eligible candidates.
type RecomputeResult struct {
  Ok          bool   `json:"ok"`
  Skipped     bool   `json:"skipped"`
  Updated     int64  `json:"updated"`
  ProductType string `json:"product_type,omitempty"`
  Days        int    `json:"days,omitempty"`
}
