package types

import (
	"time"

	"github.com/google/uuid"
)

// ProductComparisonLog records one side-by-side comparison; both product_id and
// compared_with_id count toward their respective products' comparison signals.
type ProductComparisonLog struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product        *Product  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	ComparedWithID uuid.UUID `gorm:"type:uuid;not null;index" json:"compared_with_id"`
	ComparedWith   *Product  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ComparedWithID;references:ID" json:"compared_with,omitempty"`
	ComparedAt     time.Time `gorm:"column:compared_at;not null;default:now();index" json:"compared_at"`
}

func (ProductComparisonLog) TableName() string { return "product_comparison_log" }
