package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrCouponCodeTaken is returned by the coupon store when a generated
// code collides with an already issued one. The issuing path retries
// with a fresh suffix.
var ErrCouponCodeTaken = errors.New("coupon code already taken")

// Coupon is a single-use discount token issued to one user.
// IsUsed transitions false to true exactly once and never reverts.
// Rows are kept after use and after expiry for audit.
type Coupon struct {
	ID               int64        `json:"coupon_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Code             string       `json:"code" gorm:"uniqueIndex;type:varchar(16);not null"`
	PrizeName        string       `json:"prize_name" gorm:"type:varchar(64);not null"`
	DiscountKind     DiscountKind `json:"discount_kind" gorm:"type:varchar(16);not null"`
	DiscountValue    float64      `json:"discount_value" gorm:"type:numeric(12,4);not null"`
	IsUsed           bool         `json:"is_used" gorm:"not null;default:false"`
	AssignedToUserID int64        `json:"assigned_to_user_id" gorm:"index;not null;type:bigint"`
	ExpiryDate       time.Time    `json:"expiry_date" gorm:"not null"`
	CreatedAt        time.Time    `json:"created_at" gorm:"not null"`
	UpdatedAt        time.Time    `json:"updated_at" gorm:"not null"`

	User User `json:"-" gorm:"foreignKey:AssignedToUserID"`
}

// TableName specifies the table name for Coupon
func (c Coupon) TableName() string {
	return "coupons"
}

// IsExpired reports whether the coupon is past its expiry date.
// The boundary is inclusive: a coupon expiring exactly now is valid.
func (c *Coupon) IsExpired(now time.Time) bool {
	return now.After(c.ExpiryDate)
}

// ComputeDiscount computes the discount amount for a cart total.
// Percentage values are fractions of the cart total, rounded to two
// decimal places half-up. Free-item discounts use the configured fixed
// value regardless of the cart. The result is clamped to the cart total
// so the payable amount can never go negative.
func (c *Coupon) ComputeDiscount(cartTotal, freeItemValue float64) float64 {
	total := decimal.NewFromFloat(cartTotal)

	var discount decimal.Decimal
	switch c.DiscountKind {
	case DiscountPercentage:
		discount = total.Mul(decimal.NewFromFloat(c.DiscountValue)).Round(2)
	case DiscountFreeItem:
		discount = decimal.NewFromFloat(freeItemValue)
	default:
		discount = decimal.NewFromFloat(c.DiscountValue)
	}

	if discount.GreaterThan(total) {
		discount = total
	}
	return discount.InexactFloat64()
}

// RedemptionResult is the outcome of quoting a coupon against a cart
type RedemptionResult struct {
	DiscountAmount float64 `json:"discount"`
	PrizeName      string  `json:"prizeName"`
	CouponID       int64   `json:"couponId"`
}

// CouponRepository defines the interface for coupon data
type CouponRepository interface {
	Create(coupon *Coupon) error
	GetByID(id int64) (*Coupon, error)
	GetByCode(code string) (*Coupon, error)
	GetByUserID(userID int64) ([]*Coupon, error)
	// MarkUsed flips is_used from false to true as a single conditional
	// update and reports whether the row was actually claimed.
	MarkUsed(id int64) (bool, error)
	CountExpiredUnused(now time.Time) (int64, error)
	WithTransaction(tx *gorm.DB) CouponRepository
}

// CouponUseCase defines the interface for coupon redemption logic
type CouponUseCase interface {
	// Apply quotes a coupon against a cart total without consuming it.
	Apply(userID int64, code string, cartTotal float64, now time.Time) (*RedemptionResult, error)
	// Commit consumes the coupon. Exactly one concurrent committer wins.
	Commit(couponID int64) error
}

// ExpirySweeper periodically reports on expired unused coupons.
// Housekeeping only: expiry is enforced at redemption time, so the
// sweeper is not required for correctness.
type ExpirySweeper interface {
	Sweep() error
	StartBackgroundProcessing()
	StopBackgroundProcessing()
}
