package models

import (
	"time"

	"gorm.io/gorm"
)

// Partner is an external collaborator (influencer, venue) who can run
// time-boxed selling sessions identified by a shareable code.
type Partner struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Email          string         `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email"`
	CommissionRate float64        `gorm:"default:0" json:"commission_rate" validate:"min=0,max=1"`
	Active         bool           `gorm:"type:tinyint(1);default:1" json:"active"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

type PartnerSession struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	PartnerID uint           `gorm:"not null;index" json:"partner_id"`
	Partner   *Partner       `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
	Code      string         `gorm:"uniqueIndex;type:varchar(40)" json:"code"`
	StartsAt  *time.Time     `gorm:"type:timestamp;default:null" json:"starts_at"`
	EndsAt    *time.Time     `gorm:"type:timestamp;default:null" json:"ends_at"`
	Active    bool           `gorm:"type:tinyint(1);default:1" json:"active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// PartnerSessionOrder attributes an order to a partner session for
// commission accounting.
type PartnerSessionOrder struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	SessionID uint            `gorm:"not null;index" json:"session_id"`
	Session   *PartnerSession `gorm:"foreignKey:SessionID" json:"session,omitempty"`
	OrderID   uint            `gorm:"not null;uniqueIndex" json:"order_id"`
	Order     *Order          `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Amount    float64         `json:"amount"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}
