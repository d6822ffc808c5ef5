package types

import (
	"time"

	"github.com/google/uuid"
)

// ProductViewLog is append-only; visitor_key is nullable so anonymous views
// each count as a distinct event when deduping.
type ProductViewLog struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product    *Product  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	VisitorKey *string   `gorm:"column:visitor_key;index" json:"visitor_key,omitempty"`
	ViewedAt   time.Time `gorm:"column:viewed_at;not null;default:now();index" json:"viewed_at"`
}

func (ProductViewLog) TableName() string { return "product_view_log" }
