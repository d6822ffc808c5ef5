package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/techkart/techkart-backend/internal/logger"
  "github.com/techkart/techkart-backend/internal/services"
)

type TrackHandler struct {
  log         *logger.Logger
  trackingSvc services.TrackingService
}

func NewTrackHandler(log *logger.Logger, trackingSvc services.TrackingService) *TrackHandler {
  return &TrackHandler{
    log:         log.With("handler", "TrackHandler"),
    trackingSvc: trackingSvc,
  }
}

type trackViewRequest struct {
  ProductID  uuid.UUID `json:"product_id" binding:"required"`
  VisitorKey string    `json:"visitor_key,omitempty"`
}

// POST /api/track/view
func (h *TrackHandler) TrackView(c *gin.Context) {
  var req trackViewRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  if err := h.trackingSvc.TrackView(c.Request.Context(), req.ProductID, req.VisitorKey); err != nil {
    RespondError(c, http.StatusInternalServerError, "track_failed", err)
    return
  }
  RespondOK(c, gin.H{"ok": true})
}

type trackComparisonRequest struct {
  ProductID      uuid.UUID `json:"product_id" binding:"required"`
  ComparedWithID uuid.UUID `json:"compared_with_id" binding:"required"`
}

// POST /api/track/comparison
func (h *TrackHandler) TrackComparison(c *gin.Context) {
  var req trackComparisonRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  if err := h.trackingSvc.TrackComparison(c.Request.Context(), req.ProductID, req.ComparedWithID); err != nil {
    RespondError(c, http.StatusBadRequest, "track_failed", err)
    return
  }
  RespondOK(c, gin.H{"ok": true})
}

type trackWishlistRequest struct {
  CustomerID uuid.UUID `json:"customer_id" binding:"required"`
  ProductID  uuid.UUID `json:"product_id" binding:"required"`
}

// POST /api/track/wishlist
func (h *TrackHandler) TrackWishlistAdd(c *gin.Context) {
  var req trackWishlistRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  if err := h.trackingSvc.TrackWishlistAdd(c.Request.Context(), req.CustomerID, req.ProductID); err != nil {
    RespondError(c, http.StatusBadRequest, "track_failed", err)
    return
  }
  RespondOK(c, gin.H{"ok": true})
}
