package services

import (
  "context"
  "fmt"
  "strings"
  "time"
  "github.com/google/uuid"
  "github.com/techkart/techkart-backend/internal/logger"
  "github.com/techkart/techkart-backend/internal/repos"
  "github.com/techkart/techkart-backend/internal/types"
)

// TrackingService is the collaborator-side ingestion path for the raw signal
// events the scoring jobs aggregate. Writes are fire-and-forget appends.
type TrackingService interface {
  TrackView(ctx context.Context, productID uuid.UUID, visitorKey string) error
  TrackComparison(ctx context.Context, productID, comparedWithID uuid.UUID) error
  TrackWishlistAdd(ctx context.Context, customerID, productID uuid.UUID) error
}

type trackingService struct {
  log  *logger.Logger
  repo repos.EventLogRepo
}

func NewTrackingService(baseLog *logger.Logger, repo repos.EventLogRepo) TrackingService {
  return &trackingService{
    log:  baseLog.With("service", "TrackingService"),
    repo: repo,
  }
}

func (s *trackingService) TrackView(ctx context.Context, productID uuid.UUID, visitorKey string) error {
  if productID == uuid.Nil {
    return fmt.Errorf("product id required")
  }
  view := &types.ProductViewLog{
    ProductID: productID,
    ViewedAt:  time.Now().UTC(),
  }
  if trimmed := strings.TrimSpace(visitorKey); trimmed != "" {
    view.VisitorKey = &trimmed
  }
  return s.repo.RecordView(ctx, nil, view)
}

func (s *trackingService) TrackComparison(ctx context.Context, productID, comparedWithID uuid.UUID) error {
  if productID == uuid.Nil || comparedWithID == uuid.Nil {
    return fmt.Errorf("both product ids required")
  }
  if productID == comparedWithID {
    return fmt.Errorf("cannot compare a product with itself")
  }
  return s.repo.RecordComparison(ctx, nil, &types.ProductComparisonLog{
    ProductID:      productID,
    ComparedWithID: comparedWithID,
    ComparedAt:     time.Now().UTC(),
  })
}

func (s *trackingService) TrackWishlistAdd(ctx context.Context, customerID, productID uuid.UUID) error {
  if customerID == uuid.Nil || productID == uuid.Nil {
    return fmt.Errorf("customer id and product id required")
  }
  return s.repo.RecordWishlistAdd(ctx, nil, &types.WishlistItem{
    CustomerID: customerID,
    ProductID:  productID,
    CreatedAt:  time.Now().UTC(),
  })
}
