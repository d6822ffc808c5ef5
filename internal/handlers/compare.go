package handlers

import (
  "fmt"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/techkart/techkart-backend/internal/compare"
  "github.com/techkart/techkart-backend/internal/logger"
  "github.com/techkart/techkart-backend/internal/services"
)

type CompareHandler struct {
  log        *logger.Logger
  compareSvc services.CompareService
}

func NewCompareHandler(log *logger.Logger, compareSvc services.CompareService) *CompareHandler {
  return &CompareHandler{
    log:        log.With("handler", "CompareHandler"),
    compareSvc: compareSvc,
  }
}

type compareRequest struct {
  ProductIDs       []string          `json:"product_ids"`
  SelectedVariants map[string]string `json:"selected_variants,omitempty"`
  Config           *compare.Config   `json:"config,omitempty"`
}

// POST /api/products/compare
func (h *CompareHandler) Compare(c *gin.Context) {
  var req compareRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }

  productIDs := make([]uuid.UUID, 0, len(req.ProductIDs))
  for _, raw := range req.ProductIDs {
    id, err := uuid.Parse(raw)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "invalid_product_id", fmt.Errorf("invalid product id %q", raw))
      return
    }
    productIDs = append(productIDs, id)
  }

  selectedVariants := make(map[uuid.UUID]uuid.UUID, len(req.SelectedVariants))
  for rawProduct, rawVariant := range req.SelectedVariants {
    productID, err := uuid.Parse(rawProduct)
    if err != nil {
      continue
    }
    variantID, err := uuid.Parse(rawVariant)
    if err != nil {
      continue
    }
    selectedVariants[productID] = variantID
  }

  cfg := compare.Config{}
  if req.Config != nil {
    cfg = *req.Config
  }

  ranked, err := h.compareSvc.CompareProducts(c.Request.Context(), productIDs, selectedVariants, cfg)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "compare_failed", err)
    return
  }
  RespondOK(c, gin.H{"results": ranked})
}
