package coupon

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/burgerspot/rewards/internal/domain"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
)

// CouponUseCase implements domain.CouponUseCase
type CouponUseCase struct {
	couponRepo    domain.CouponRepository
	logger        *logger.Logger
	freeItemValue float64
}

// NewCouponUseCase creates a new coupon redemption use case
func NewCouponUseCase(couponRepo domain.CouponRepository, logger *logger.Logger, freeItemValue float64) domain.CouponUseCase {
	return &CouponUseCase{
		couponRepo:    couponRepo,
		logger:        logger,
		freeItemValue: freeItemValue,
	}
}

// Apply quotes a coupon against a cart total. It validates but does
// not reserve: the coupon is only consumed when the order it is
// attached to commits.
func (uc *CouponUseCase) Apply(userID int64, code string, cartTotal float64, now time.Time) (*domain.RedemptionResult, error) {
	coupon, err := uc.couponRepo.GetByCode(code)
	if err != nil {
		return nil, domain.NewStorageError("load coupon", err)
	}

	if err := ValidateForUser(coupon, userID, now); err != nil {
		return nil, err
	}

	if cartTotal < 0 || math.IsNaN(cartTotal) || math.IsInf(cartTotal, 0) {
		return nil, domain.NewAppError(domain.ErrCodeInvalidCartTotal, "Cart total must be a non-negative number", 400, nil)
	}

	return &domain.RedemptionResult{
		DiscountAmount: coupon.ComputeDiscount(cartTotal, uc.freeItemValue),
		PrizeName:      coupon.PrizeName,
		CouponID:       coupon.ID,
	}, nil
}

// Commit consumes the coupon via a single conditional update. A
// losing concurrent committer observes CouponAlreadyUsed, never a
// silent success.
func (uc *CouponUseCase) Commit(couponID int64) error {
	claimed, err := uc.couponRepo.MarkUsed(couponID)
	if err != nil {
		return domain.NewStorageError("mark coupon used", err)
	}
	if !claimed {
		return domain.NewAppError(domain.ErrCodeCouponAlreadyUsed, "Coupon has already been used", 400, nil)
	}

	uc.logger.Info("Coupon committed", zap.Int64("coupon_id", couponID))
	return nil
}

// ValidateForUser runs the redemption checks in their fixed order:
// existence, ownership, usage, expiry. The first failing check wins.
func ValidateForUser(coupon *domain.Coupon, userID int64, now time.Time) error {
	if coupon == nil {
		return domain.NewAppError(domain.ErrCodeCouponNotFound, "Coupon not found", 404, nil)
	}
	if coupon.AssignedToUserID != userID {
		return domain.NewAppError(domain.ErrCodeCouponNotOwned, "Coupon belongs to another user", 403, nil)
	}
	if coupon.IsUsed {
		return domain.NewAppError(domain.ErrCodeCouponAlreadyUsed, "Coupon has already been used", 400, nil)
	}
	if coupon.IsExpired(now) {
		return domain.NewAppError(domain.ErrCodeCouponExpired, "Coupon has expired", 400, nil)
	}
	return nil
}
