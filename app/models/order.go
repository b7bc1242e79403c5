package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	OrderNumber    string         `gorm:"uniqueIndex;type:varchar(40)" json:"order_number" validate:"required,max=40"`
	Email          string         `gorm:"type:varchar(200);index" json:"email" validate:"required,email"`
	Status         string         `gorm:"type:varchar(20);default:'pending';index" json:"status" validate:"oneof=pending paid shipped delivered cancelled"`
	SubTotal       float64        `json:"sub_total"`
	Shipping       float64        `json:"shipping"`
	DiscountAmount float64        `json:"discount_amount"`
	Total          float64        `json:"total"`
	ShippingZoneID *uint          `gorm:"index;default:null" json:"shipping_zone_id,omitempty"`
	Items          []OrderItem    `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

type OrderItem struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	OrderID   uint     `gorm:"not null;index" json:"order_id"`
	ProductID uint     `gorm:"not null;index" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity" validate:"min=1"`
	UnitPrice float64  `gorm:"not null" json:"unit_price"`
}
