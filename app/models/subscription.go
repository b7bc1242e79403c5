package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscription records a customer's purchase of a package. It is created on
// checkout completion (external to this service) and read-only for the
// analytics aggregation.
type Subscription struct {
	ID                    uint           `gorm:"primaryKey" json:"id"`
	PaymentID             string         `gorm:"type:varchar(100);uniqueIndex" json:"payment_id" validate:"required,max=100"`
	PackageID             uint           `gorm:"not null;index" json:"package_id"`
	Package               *Package       `gorm:"foreignKey:PackageID" json:"package,omitempty"`
	Email                 string         `gorm:"type:varchar(200);index" json:"email" validate:"required,email"`
	Subscribed            bool           `gorm:"type:tinyint(1);default:1;index" json:"subscribed"`
	ExpiryDate            *time.Time     `gorm:"type:timestamp;default:null" json:"expiry_date"`
	SubTotal              float64        `json:"sub_total"`
	Total                 float64        `json:"total"`
	Shipping              float64        `json:"shipping"`
	AppliedDiscountAmount float64        `json:"applied_discount_amount"`
	RedeemedLoyaltyPoints int            `json:"redeemed_loyalty_points"`
	IsGift                bool           `gorm:"type:tinyint(1);default:0" json:"is_gift"`
	CreatedAt             time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`
}
