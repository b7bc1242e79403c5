package models

import (
	"time"

	"gorm.io/gorm"
)

// NewsletterSubscriber is one signup on the mailing list. Confirmation is
// tracked so unconfirmed addresses can be pruned.
type NewsletterSubscriber struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Email       string         `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email"`
	Confirmed   bool           `gorm:"type:tinyint(1);default:0" json:"confirmed"`
	ConfirmedAt *time.Time     `gorm:"type:timestamp;default:null" json:"confirmed_at"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
