package models

import (
	"time"

	"gorm.io/gorm"
)

// Favorite marks a product saved by a customer, keyed by email the same way
// the loyalty ledger is.
type Favorite struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"type:varchar(200);not null;index:idx_favorite_email_product,unique,priority:1" json:"email" validate:"required,email"`
	ProductID uint           `gorm:"not null;index:idx_favorite_email_product,unique,priority:2" json:"product_id"`
	Product   *Product       `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
