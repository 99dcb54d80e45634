package reward

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/burgerspot/rewards/internal/domain"
)

// Play runs one daily reward draw for a user. The sequence
// check-ledger, draw, issue-coupon, write-ledger runs under the
// user's lock so two concurrent plays behave as if serialized.
func (uc *RewardUseCase) Play(userID int64, now time.Time) (*domain.PlayResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := uc.locks.Lock(ctx, userID); err != nil {
		return nil, domain.NewStorageError("acquire play lock", err)
	}
	defer uc.locks.Unlock(userID)

	record, err := uc.playRepo.GetByUserID(userID)
	if err != nil {
		return nil, domain.NewStorageError("load play ledger", err)
	}

	if record != nil && uc.sameCalendarDay(record.LastPlayedDate, now) {
		return nil, domain.NewAppError(domain.ErrCodeAlreadyPlayedToday, "Daily reward already claimed today", 400, nil)
	}

	drawn := uc.prizes.Draw()

	var couponCode *string
	if drawn.Outcome == domain.OutcomeWin {
		coupon, err := uc.issueCoupon(userID, drawn, now)
		if err != nil {
			return nil, err
		}
		couponCode = &coupon.Code
		uc.logger.Info("Coupon issued",
			zap.Int64("user_id", userID),
			zap.String("prize", drawn.Name),
			zap.String("code", coupon.Code))
	}

	if err := uc.playRepo.Upsert(&domain.PlayRecord{
		UserID:         userID,
		LastPlayedDate: uc.dateOnly(now),
		LastPrizeName:  drawn.Name,
	}); err != nil {
		return nil, domain.NewStorageError("write play ledger", err)
	}

	return &domain.PlayResult{
		PrizeName:   drawn.Name,
		Outcome:     drawn.Outcome,
		CouponCode:  couponCode,
		Description: drawn.Description,
	}, nil
}

// issueCoupon creates a coupon for a winning draw, retrying on code
// collisions. Collisions are astronomically rare with a four character
// base-36 suffix against the unique index; the retry is a safety net,
// not a normal path. Exhaustion leaves no partial state: the ledger is
// only written after the coupon exists.
func (uc *RewardUseCase) issueCoupon(userID int64, drawn domain.PrizeDefinition, now time.Time) (*domain.Coupon, error) {
	for attempt := 0; attempt < uc.codeAttempts; attempt++ {
		coupon := &domain.Coupon{
			Code:             uc.generateCode(drawn.Name),
			PrizeName:        drawn.Name,
			DiscountKind:     drawn.Discount.Kind,
			DiscountValue:    drawn.Discount.Value,
			AssignedToUserID: userID,
			ExpiryDate:       now.Add(uc.couponValidity),
		}

		err := uc.couponRepo.Create(coupon)
		if err == nil {
			return coupon, nil
		}
		if !errors.Is(err, domain.ErrCouponCodeTaken) {
			return nil, domain.NewStorageError("create coupon", err)
		}

		uc.logger.Warn("Coupon code collision, regenerating",
			zap.Int64("user_id", userID),
			zap.Int("attempt", attempt+1))
	}

	return nil, domain.NewAppError(domain.ErrCodeCodeGenerationExhausted,
		"Could not generate a unique coupon code", 500, nil)
}
