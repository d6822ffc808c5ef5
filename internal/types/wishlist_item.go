package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WishlistItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;index:idx_wishlist_customer_product,unique" json:"customer_id"`
	Customer   *Customer      `gorm:"constraint:OnDelete:CASCADE;foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	ProductID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_wishlist_customer_product,unique;index" json:"product_id"`
	Product    *Product       `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	CreatedAt  time.Time      `gorm:"not null;default:now();index" json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (WishlistItem) TableName() string { return "wishlist_item" }
