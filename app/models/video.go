package models

import (
	"time"

	"gorm.io/gorm"
)

type Video struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"type:varchar(200)" json:"title" validate:"required,min=2,max=200"`
	Description  string         `gorm:"type:text" json:"description"`
	URL          string         `gorm:"type:varchar(255)" json:"url" validate:"required,max=255"`
	ThumbnailURL string         `gorm:"type:varchar(255);default:null" json:"thumbnail_url" validate:"max=255"`
	Duration     int            `gorm:"default:0" json:"duration" validate:"min=0"`
	Published    bool           `gorm:"type:tinyint(1);default:0" json:"published"`
	ViewCount    int64          `gorm:"default:0" json:"view_count"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
