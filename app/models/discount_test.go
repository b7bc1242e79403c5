package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscountIsRedeemable(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	expired := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		discount Discount
		subTotal float64
		want     bool
	}{
		{
			name:     "active code with no limits",
			discount: Discount{Code: "WELCOME", Active: true},
			subTotal: 100,
			want:     true,
		},
		{
			name:     "inactive code",
			discount: Discount{Code: "OLD", Active: false},
			subTotal: 100,
			want:     false,
		},
		{
			name:     "expired code",
			discount: Discount{Code: "PAST", Active: true, ExpiresAt: &expired},
			subTotal: 100,
			want:     false,
		},
		{
			name:     "not yet expired code",
			discount: Discount{Code: "SOON", Active: true, ExpiresAt: &future},
			subTotal: 100,
			want:     true,
		},
		{
			name:     "usage limit reached",
			discount: Discount{Code: "CAPPED", Active: true, UsageLimit: 5, UsedCount: 5},
			subTotal: 100,
			want:     false,
		},
		{
			name:     "usage limit not reached",
			discount: Discount{Code: "OPEN", Active: true, UsageLimit: 5, UsedCount: 4},
			subTotal: 100,
			want:     true,
		},
		{
			name:     "zero usage limit means unlimited",
			discount: Discount{Code: "FOREVER", Active: true, UsageLimit: 0, UsedCount: 9999},
			subTotal: 100,
			want:     true,
		},
		{
			name:     "subtotal below minimum",
			discount: Discount{Code: "BIGCART", Active: true, MinSubTotal: 500},
			subTotal: 499.99,
			want:     false,
		},
		{
			name:     "subtotal exactly at minimum",
			discount: Discount{Code: "BIGCART", Active: true, MinSubTotal: 500},
			subTotal: 500,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.discount.IsRedeemable(now, tt.subTotal))
		})
	}
}

func TestDiscountAmountFor(t *testing.T) {
	percent := Discount{Type: DiscountTypePercent, Value: 15}
	assert.InDelta(t, 30.0, percent.AmountFor(200), 0.0001)

	fixed := Discount{Type: DiscountTypeFixed, Value: 50}
	assert.Equal(t, 50.0, fixed.AmountFor(200))

	// Fixed discounts are capped at the subtotal
	assert.Equal(t, 30.0, fixed.AmountFor(30))

	unknown := Discount{Type: "bogus", Value: 50}
	assert.Equal(t, 0.0, unknown.AmountFor(200))
}

func TestPopupIsVisible(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&Popup{Active: true}).IsVisible(now))
	assert.False(t, (&Popup{Active: false}).IsVisible(now))
	assert.True(t, (&Popup{Active: true, StartsAt: &past, EndsAt: &future}).IsVisible(now))
	assert.False(t, (&Popup{Active: true, StartsAt: &future}).IsVisible(now))
	assert.False(t, (&Popup{Active: true, EndsAt: &past}).IsVisible(now))
}
