package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeDiscount(t *testing.T) {
	tests := []struct {
		name          string
		kind          DiscountKind
		value         float64
		cartTotal     float64
		freeItemValue float64
		want          float64
	}{
		{"FlatBelowTotal", DiscountFlat, 100, 1000, 350, 100},
		{"FlatClampedToTotal", DiscountFlat, 100, 50, 350, 50},
		{"PercentageExact", DiscountPercentage, 0.05, 1000, 350, 50},
		{"PercentageRoundsHalfUp", DiscountPercentage, 0.05, 110.50, 350, 5.53},
		{"PercentageRoundsDown", DiscountPercentage, 0.05, 123.45, 350, 6.17},
		{"FreeItemUsesFixedValue", DiscountFreeItem, 1, 1000, 350, 350},
		{"FreeItemClampedToTotal", DiscountFreeItem, 1, 200, 350, 200},
		{"ZeroCartTotal", DiscountFlat, 100, 0, 350, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Coupon{DiscountKind: tt.kind, DiscountValue: tt.value}
			assert.Equal(t, tt.want, c.ComputeDiscount(tt.cartTotal, tt.freeItemValue))
		})
	}
}

func TestIsExpiredBoundary(t *testing.T) {
	expiry := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	c := &Coupon{ExpiryDate: expiry}

	assert.False(t, c.IsExpired(expiry.Add(-time.Hour)))
	assert.False(t, c.IsExpired(expiry), "coupon expiring exactly now is still valid")
	assert.True(t, c.IsExpired(expiry.Add(time.Microsecond)))
}
