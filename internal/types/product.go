package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ProductTypeSmartphone = "smartphone"
	ProductTypeLaptop     = "laptop"
	ProductTypeTV         = "tv"
	ProductTypeTablet     = "tablet"
	ProductTypeNetworking = "networking"
	ProductTypeAppliance  = "appliance"
)

// SupportedProductTypes lists every product_type cohort eligible for scoring.
func SupportedProductTypes() []string {
	return []string{
		ProductTypeSmartphone,
		ProductTypeLaptop,
		ProductTypeTV,
		ProductTypeTablet,
		ProductTypeNetworking,
		ProductTypeAppliance,
	}
}

func IsSupportedProductType(productType string) bool {
	for _, t := range SupportedProductTypes() {
		if t == productType {
			return true
		}
	}
	return false
}

type Product struct {
	ID          uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string           `gorm:"column:name;not null" json:"name"`
	Slug        string           `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Brand       string           `gorm:"column:brand;index" json:"brand"`
	ProductType string           `gorm:"column:product_type;not null;index" json:"product_type"`
	IsPublished bool             `gorm:"column:is_published;not null;default:false;index" json:"is_published"`
	BasePrice   float64          `gorm:"column:base_price;not null;default:0" json:"base_price"`
	LaunchDate  *time.Time       `gorm:"column:launch_date" json:"launch_date,omitempty"`
	CPUSpec     datatypes.JSON   `gorm:"column:cpu_spec;type:jsonb" json:"cpu_spec"`
	DisplaySpec datatypes.JSON   `gorm:"column:display_spec;type:jsonb" json:"display_spec"`
	CameraSpec  datatypes.JSON   `gorm:"column:camera_spec;type:jsonb" json:"camera_spec"`
	BatterySpec datatypes.JSON   `gorm:"column:battery_spec;type:jsonb" json:"battery_spec"`
	Variants    []ProductVariant `gorm:"foreignKey:ProductID;references:ID" json:"variants,omitempty"`
	CreatedAt   time.Time        `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"deleted_at,omitempty"`
}

func (Product) TableName() string { return "product" }

// LaunchedAt resolves the launch timestamp used for freshness: the explicit
// launch date when present, else the record creation time.
func (p *Product) LaunchedAt() time.Time {
	if p.LaunchDate != nil && !p.LaunchDate.IsZero() {
		return *p.LaunchDate
	}
	return p.CreatedAt
}
