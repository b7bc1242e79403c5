package models

import (
	"strconv"
	"time"

	"gorm.io/gorm"
)

// Package is a purchasable subscription tier ("Wifey Full Experience",
// "Wifey Mini Experience", ...). Cost is stored as a numeric string the way
// it arrives from the checkout provider and parsed at read time.
type Package struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Description string         `gorm:"type:text" json:"description"`
	Cost        string         `gorm:"type:varchar(20)" json:"cost" validate:"required"`
	Active      bool           `gorm:"type:tinyint(1);default:1" json:"active"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// CostValue parses the stored cost string. Unparsable values count as zero
// cost rather than failing the whole aggregation.
func (p *Package) CostValue() float64 {
	v, err := strconv.ParseFloat(p.Cost, 64)
	if err != nil {
		return 0
	}
	return v
}
