package models

import (
	"time"

	"gorm.io/gorm"
)

// Popup is a storefront announcement overlay with an optional display window.
type Popup struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"type:varchar(200)" json:"title" validate:"required,min=2,max=200"`
	Content   string         `gorm:"type:text" json:"content"`
	ImageURL  string         `gorm:"type:varchar(255);default:null" json:"image_url" validate:"max=255"`
	LinkURL   string         `gorm:"type:varchar(255);default:null" json:"link_url" validate:"max=255"`
	Active    bool           `gorm:"type:tinyint(1);default:1" json:"active"`
	StartsAt  *time.Time     `gorm:"type:timestamp;default:null" json:"starts_at"`
	EndsAt    *time.Time     `gorm:"type:timestamp;default:null" json:"ends_at"`
	Views     int64          `gorm:"default:0" json:"views"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsVisible reports whether the popup should currently be shown.
func (p *Popup) IsVisible(now time.Time) bool {
	if !p.Active {
		return false
	}
	if p.StartsAt != nil && now.Before(*p.StartsAt) {
		return false
	}
	if p.EndsAt != nil && now.After(*p.EndsAt) {
		return false
	}
	return true
}
