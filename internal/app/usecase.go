package app

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/burgerspot/rewards/internal/domain"
	"github.com/burgerspot/rewards/internal/infrastructure/auth"
	"github.com/burgerspot/rewards/internal/infrastructure/lock"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
	"github.com/burgerspot/rewards/internal/infrastructure/prize"
	"github.com/burgerspot/rewards/internal/usecase/coupon"
	"github.com/burgerspot/rewards/internal/usecase/order"
	"github.com/burgerspot/rewards/internal/usecase/reward"
	"github.com/burgerspot/rewards/internal/usecase/user"
)

func (a *application) InitUserUseCase(ur domain.UserRepository, jwt auth.JWTService, log *logger.Logger) domain.UserUseCase {
	return user.NewUserUseCase(ur, jwt, log)
}

func (a *application) InitRewardUseCase(
	pr domain.RewardPlayRepository,
	cr domain.CouponRepository,
	prizes *prize.Table,
	locks *lock.UserLockManager,
	log *logger.Logger,
) (domain.RewardUseCase, error) {
	location, err := time.LoadLocation(a.config.Reward.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid reward timezone %q: %w", a.config.Reward.Timezone, err)
	}
	validity := time.Duration(a.config.Reward.CouponValidityDays) * 24 * time.Hour
	// Separate source from the prize table's: the two are guarded by
	// different mutexes and must not share state.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return reward.NewRewardUseCase(pr, cr, prizes, locks, log, location, validity, a.config.Reward.CodeAttempts, rng), nil
}

func (a *application) InitCouponUseCase(cr domain.CouponRepository, log *logger.Logger) domain.CouponUseCase {
	return coupon.NewCouponUseCase(cr, log, a.config.Reward.FreeItemValue)
}

func (a *application) InitOrderUseCase(
	or domain.OrderRepository,
	cr domain.CouponRepository,
	db *gorm.DB,
	log *logger.Logger,
) domain.OrderUseCase {
	return order.NewOrderUseCase(or, cr, db, log, a.config.Reward.FreeItemValue)
}
