package types

import (
	"time"

	"github.com/google/uuid"
)

// ProductDynamicScore holds the hook-score family for one product. All four
// numeric fields are kept in [0,100]; rows are upserted on product_id, never
// duplicated.
type ProductDynamicScore struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"product_id"`
	Product       *Product  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	BuyerIntent   float64   `gorm:"column:buyer_intent;not null;default:0" json:"buyer_intent"`
	TrendVelocity float64   `gorm:"column:trend_velocity;not null;default:0" json:"trend_velocity"`
	Freshness     float64   `gorm:"column:freshness;not null;default:0" json:"freshness"`
	HookScore     float64   `gorm:"column:hook_score;not null;default:0;index" json:"hook_score"`
	CalculatedAt  time.Time `gorm:"column:calculated_at;not null;default:now()" json:"calculated_at"`
}

func (ProductDynamicScore) TableName() string { return "product_dynamic_score" }
