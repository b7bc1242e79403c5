package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	DiscountTypePercent = "percent"
	DiscountTypeFixed   = "fixed"
)

type Discount struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Code        string         `gorm:"uniqueIndex;type:varchar(40)" json:"code" validate:"required,min=3,max=40"`
	Type        string         `gorm:"type:varchar(10);default:'percent'" json:"type" validate:"oneof=percent fixed"`
	Value       float64        `gorm:"not null" json:"value" validate:"min=0"`
	MinSubTotal float64        `gorm:"default:0" json:"min_sub_total" validate:"min=0"`
	UsageLimit  int            `gorm:"default:0" json:"usage_limit" validate:"min=0"`
	UsedCount   int            `gorm:"default:0" json:"used_count"`
	Active      bool           `gorm:"type:tinyint(1);default:1" json:"active"`
	ExpiresAt   *time.Time     `gorm:"type:timestamp;default:null" json:"expires_at"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsRedeemable reports whether the code can be applied at the given time for
// the given cart subtotal. A zero usage limit means unlimited redemptions.
func (d *Discount) IsRedeemable(now time.Time, subTotal float64) bool {
	if !d.Active {
		return false
	}
	if d.ExpiresAt != nil && now.After(*d.ExpiresAt) {
		return false
	}
	if d.UsageLimit > 0 && d.UsedCount >= d.UsageLimit {
		return false
	}
	return subTotal >= d.MinSubTotal
}

// AmountFor returns the discount value applied to the given subtotal.
// Fixed discounts never exceed the subtotal.
func (d *Discount) AmountFor(subTotal float64) float64 {
	switch d.Type {
	case DiscountTypePercent:
		return subTotal * d.Value / 100
	case DiscountTypeFixed:
		if d.Value > subTotal {
			return subTotal
		}
		return d.Value
	}
	return 0
}
