package models

import (
	"time"

	"gorm.io/gorm"
)

// WeddingTimeline is a customer's planning checklist anchored to a wedding
// date, with ordered tasks.
type WeddingTimeline struct {
	ID          uint                  `gorm:"primaryKey" json:"id"`
	Email       string                `gorm:"type:varchar(200);not null;index" json:"email" validate:"required,email"`
	Title       string                `gorm:"type:varchar(200)" json:"title" validate:"required,min=2,max=200"`
	WeddingDate *time.Time            `gorm:"type:timestamp;default:null" json:"wedding_date"`
	Tasks       []WeddingTimelineTask `gorm:"foreignKey:TimelineID" json:"tasks,omitempty"`
	CreatedAt   time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt        `gorm:"index" json:"-"`
}

type WeddingTimelineTask struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	TimelineID uint       `gorm:"not null;index" json:"timeline_id"`
	Title      string     `gorm:"type:varchar(200)" json:"title" validate:"required,min=1,max=200"`
	DueDate    *time.Time `gorm:"type:timestamp;default:null" json:"due_date"`
	Done       bool       `gorm:"type:tinyint(1);default:0" json:"done"`
	Position   int        `gorm:"default:0" json:"position"`
}
