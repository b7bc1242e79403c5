package models

import (
	"time"

	"gorm.io/gorm"
)

type BlogPost struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"type:varchar(255)" json:"title" validate:"required,min=3,max=255"`
	Slug          string         `gorm:"uniqueIndex;type:varchar(255)" json:"slug" validate:"required,min=3,max=255"`
	Content       string         `gorm:"type:text" json:"content" validate:"required"`
	CoverImageURL string         `gorm:"type:varchar(255);default:null" json:"cover_image_url" validate:"max=255"`
	Published     bool           `gorm:"type:tinyint(1);default:0" json:"published"`
	PublishedAt   *time.Time     `gorm:"type:timestamp;default:null" json:"published_at"`
	AuthorID      *uint          `gorm:"index;default:null" json:"author_id,omitempty"`
	Author        *User          `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
