package types

import (
	"time"

	"github.com/google/uuid"
)

type ProductTrendingScore struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"product_id"`
	Product       *Product  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Views7d       int64     `gorm:"column:views_7d;not null;default:0" json:"views_7d"`
	Compares7d    int64     `gorm:"column:compares_7d;not null;default:0" json:"compares_7d"`
	ViewsPrev7d   int64     `gorm:"column:views_prev_7d;not null;default:0" json:"views_prev_7d"`
	Velocity      float64   `gorm:"column:velocity;not null;default:0" json:"velocity"`
	TrendingScore float64   `gorm:"column:trending_score;not null;default:0;index" json:"trending_score"`
	CalculatedAt  time.Time `gorm:"column:calculated_at;not null;default:now()" json:"calculated_at"`
}

func (ProductTrendingScore) TableName() string { return "product_trending_score" }
