package services

import (
  "context"
  "fmt"
  "github.com/google/uuid"
  "go.opentelemetry.io/otel"
  "go.opentelemetry.io/otel/attribute"
  "github.com/techkart/techkart-backend/internal/compare"
  "github.com/techkart/techkart-backend/internal/logger"
  "github.com/techkart/techkart-backend/internal/repos"
  "github.com/techkart/techkart-backend/internal/types"
)

const maxCompareProducts = 4

// CompareService resolves catalog rows and pricing into compare engine inputs
// and returns the ranked breakdown for one request. No state is persisted.
type CompareService interface {
  CompareProducts(ctx context.Context, productIDs []uuid.UUID, selectedVariants map[uuid.UUID]uuid.UUID, cfg compare.Config) ([]compare.RankedDevice, error)
}

type compareService struct {
  log         *logger.Logger
  productRepo repos.ProductRepo
}

func NewCompareService(baseLog *logger.Logger, productRepo repos.ProductRepo) CompareService {
  return &compareService{
    log:         baseLog.With("service", "CompareService"),
    productRepo: productRepo,
  }
}

func (s *compareService) CompareProducts(ctx context.Context, productIDs []uuid.UUID, selectedVariants map[uuid.UUID]uuid.UUID, cfg compare.Config) ([]compare.RankedDevice, error) {
  if len(productIDs) == 0 {
    return []compare.RankedDevice{}, nil
  }
  if len(productIDs) > maxCompareProducts {
    return nil, fmt.Errorf("at most %d products can be compared, got %d", maxCompareProducts, len(productIDs))
  }

  ctx, span := otel.Tracer("services").Start(ctx, "CompareService.CompareProducts")
  defer span.End()
  span.SetAttributes(attribute.Int("requested", len(productIDs)))

  products, err := s.productRepo.GetByIDsWithVariants(ctx, nil, productIDs)
  if err != nil {
    return nil, fmt.Errorf("load products: %w", err)
  }

  devices := make([]compare.Device, 0, len(products))
  for _, p := range products {
    devices = append(devices, compare.Device{
      ProductID:   p.ID,
      Name:        p.Name,
      Price:       resolveComparePrice(p, selectedVariants[p.ID]),
      CPUSpec:     []byte(p.CPUSpec),
      DisplaySpec: []byte(p.DisplaySpec),
      CameraSpec:  []byte(p.CameraSpec),
      BatterySpec: []byte(p.BatterySpec),
    })
  }

  ranked := compare.Rank(devices, cfg)
  s.log.Debug("Compare ranking computed", "requested", len(productIDs), "ranked", len(ranked))
  return ranked, nil
}

// resolveComparePrice prefers the user's selected variant, then the cheapest
// variant, then the catalog fallback price. Zero means unresolvable; the
// engine assigns the neutral value score in that case.
func resolveComparePrice(p *types.Product, selectedVariant uuid.UUID) float64 {
  if selectedVariant != uuid.Nil {
    for _, v := range p.Variants {
      if v.ID == selectedVariant && v.Price > 0 {
        return v.Price
      }
    }
  }
  minPrice := 0.0
  for _, v := range p.Variants {
    if v.Price > 0 && (minPrice == 0 || v.Price < minPrice) {
      minPrice = v.Price
    }
  }
  if minPrice > 0 {
    return minPrice
  }
  if p.BasePrice > 0 {
    return p.BasePrice
  }
  return 0
}
