package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(200)" json:"name" validate:"required,min=2,max=200"`
	Slug        string         `gorm:"uniqueIndex;type:varchar(200)" json:"slug" validate:"required,min=2,max=200"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null" json:"price" validate:"min=0"`
	CompareAt   float64        `gorm:"default:0" json:"compare_at"`
	Stock       int            `gorm:"default:0" json:"stock" validate:"min=0"`
	ImageURL    string         `gorm:"type:varchar(255);default:null" json:"image_url" validate:"max=255"`
	Active      bool           `gorm:"type:tinyint(1);default:1" json:"active"`
	CategoryID  *uint          `gorm:"index;default:null" json:"category_id,omitempty"`
	Category    *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// InStock reports whether the product can currently be ordered.
func (p *Product) InStock() bool {
	return p.Active && p.Stock > 0
}
