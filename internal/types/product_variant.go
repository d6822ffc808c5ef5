package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductVariant struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	SKU       string         `gorm:"column:sku;not null;uniqueIndex" json:"sku"`
	Label     string         `gorm:"column:label" json:"label"`
	Price     float64        `gorm:"column:price;not null;default:0" json:"price"`
	Stock     int            `gorm:"column:stock;not null;default:0" json:"stock"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ProductVariant) TableName() string { return "product_variant" }
