package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	LoyaltyTypeEarn  = "earn"
	LoyaltyTypeSpend = "spend"
)

// LoyaltyBonus is a named, fixed-point-value reward definition. Transactions
// may reference a bonus instead of carrying an explicit amount.
type LoyaltyBonus struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"type:varchar(150)" json:"title" validate:"required,min=2,max=150"`
	Description string         `gorm:"type:text" json:"description" validate:"max=1000"`
	BonusPoints int            `gorm:"not null" json:"bonus_points" validate:"required,min=1,max=10000"`
	Active      bool           `gorm:"type:tinyint(1);default:1" json:"active"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// LoyaltyTransaction is one entry in the append-only per-email point ledger.
// Either Amount is set directly or the point value is derived from the
// referenced bonus at read time. The balance itself is never stored.
type LoyaltyTransaction struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"type:varchar(200);not null;index" json:"email" validate:"required,email"`
	Type      string         `gorm:"type:varchar(10);not null;default:'earn'" json:"type" validate:"oneof=earn spend"`
	Amount    *int           `gorm:"default:null" json:"amount,omitempty"`
	Reason    string         `gorm:"type:varchar(500);default:null" json:"reason" validate:"max=500"`
	BonusID   *uint          `gorm:"index;default:null" json:"bonus_id,omitempty"`
	Bonus     *LoyaltyBonus  `gorm:"foreignKey:BonusID" json:"bonus,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
