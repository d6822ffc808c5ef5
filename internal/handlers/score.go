package handlers

import (
  "fmt"
  "net/http"
  "strconv"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/techkart/techkart-backend/internal/logger"
  "github.com/techkart/techkart-backend/internal/repos"
  "github.com/techkart/techkart-backend/internal/services"
)

type ScoreHandler struct {
  log         *logger.Logger
  hookSvc     services.HookScoreService
  trendingSvc services.TrendingScoreService
  feedSvc     services.TrendingFeedService
  scoreRepo   repos.DynamicScoreRepo
}

func NewScoreHandler(log *logger.Logger, hookSvc services.HookScoreService, trendingSvc services.TrendingScoreService, feedSvc services.TrendingFeedService, scoreRepo repos.DynamicScoreRepo) *ScoreHandler {
  return &ScoreHandler{
    log:         log.With("handler", "ScoreHandler"),
    hookSvc:     hookSvc,
    trendingSvc: trendingSvc,
    feedSvc:     feedSvc,
    scoreRepo:   scoreRepo,
  }
}

// GET /api/products/trending
func (h *ScoreHandler) GetTrending(c *gin.Context) {
  limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
  entries, err := h.feedSvc.TopTrending(c.Request.Context(), limit)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "trending_failed", err)
    return
  }
  RespondOK(c, gin.H{"results": entries})
}

// GET /api/products/:id/score
func (h *ScoreHandler) GetProductScore(c *gin.Context) {
  productID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_product_id", err)
    return
  }
  row, err := h.scoreRepo.GetByProductID(c.Request.Context(), nil, productID)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "score_lookup_failed", err)
    return
  }
  if row == nil {
    RespondError(c, http.StatusNotFound, "score_not_found", fmt.Errorf("no score computed for product %s", productID))
    return
  }
  RespondOK(c, row)
}

// POST /api/admin/scores/hook/recompute?type=smartphone&days=7
func (h *ScoreHandler) RecomputeHookScores(c *gin.Context) {
  productType := c.Query("type")
  days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))
  result, err := h.hookSvc.Recompute(c.Request.Context(), productType, days)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "recompute_failed", err)
    return
  }
  RespondOK(c, result)
}

// POST /api/admin/scores/trending/recompute?days=7
func (h *ScoreHandler) RecomputeTrendingScores(c *gin.Context) {
  days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))
  result, err := h.trendingSvc.Recompute(c.Request.Context(), days)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "recompute_failed", err)
    return
  }
  RespondOK(c, result)
}
