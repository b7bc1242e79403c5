package models

import (
	"time"

	"gorm.io/gorm"
)

// ShippingZone carries a flat rate and delivery estimate. Countries and
// states reference their zone; rewiring those references happens together
// with zone writes inside one transaction.
type ShippingZone struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Rate         float64        `gorm:"not null" json:"rate" validate:"min=0"`
	DeliveryDays int            `gorm:"default:0" json:"delivery_days" validate:"min=0"`
	Active       bool           `gorm:"type:tinyint(1);default:1" json:"active"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

type ShippingCountry struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Code      string         `gorm:"uniqueIndex;type:varchar(2)" json:"code" validate:"required,len=2"`
	ZoneID    *uint          `gorm:"index;default:null" json:"zone_id,omitempty"`
	Zone      *ShippingZone  `gorm:"foreignKey:ZoneID" json:"zone,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type ShippingState struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	Name      string           `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	CountryID uint             `gorm:"not null;index" json:"country_id"`
	Country   *ShippingCountry `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	ZoneID    *uint            `gorm:"index;default:null" json:"zone_id,omitempty"`
	Zone      *ShippingZone    `gorm:"foreignKey:ZoneID" json:"zone,omitempty"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`
}
