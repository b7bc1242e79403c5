package models

import (
	"time"

	"gorm.io/gorm"
)

// Collection is a curated product grouping (seasonal drops, gift guides).
type Collection struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Slug      string         `gorm:"uniqueIndex;type:varchar(150)" json:"slug" validate:"required,min=2,max=150"`
	ImageURL  string         `gorm:"type:varchar(255);default:null" json:"image_url" validate:"max=255"`
	Active    bool           `gorm:"type:tinyint(1);default:1" json:"active"`
	Products  []Product      `gorm:"many2many:collection_products;" json:"products,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
