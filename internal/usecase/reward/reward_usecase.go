package reward

import (
	"math/rand"
	"sync"
	"time"

	"github.com/burgerspot/rewards/internal/domain"
	"github.com/burgerspot/rewards/internal/infrastructure/lock"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
	"github.com/burgerspot/rewards/internal/infrastructure/prize"
)

const defaultCodeAttempts = 5

// RewardUseCase implements domain.RewardUseCase. All writes to the
// daily play ledger and the coupon store go through here; the per-user
// lock serializes the check-then-write sequence of a play.
type RewardUseCase struct {
	playRepo       domain.RewardPlayRepository
	couponRepo     domain.CouponRepository
	prizes         *prize.Table
	locks          *lock.UserLockManager
	logger         *logger.Logger
	location       *time.Location
	couponValidity time.Duration
	codeAttempts   int

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewRewardUseCase creates a new reward engine
func NewRewardUseCase(
	playRepo domain.RewardPlayRepository,
	couponRepo domain.CouponRepository,
	prizes *prize.Table,
	locks *lock.UserLockManager,
	logger *logger.Logger,
	location *time.Location,
	couponValidity time.Duration,
	codeAttempts int,
	rng *rand.Rand,
) domain.RewardUseCase {
	if codeAttempts <= 0 {
		codeAttempts = defaultCodeAttempts
	}
	return &RewardUseCase{
		playRepo:       playRepo,
		couponRepo:     couponRepo,
		prizes:         prizes,
		locks:          locks,
		logger:         logger,
		location:       location,
		couponValidity: couponValidity,
		codeAttempts:   codeAttempts,
		rng:            rng,
	}
}

// dateOnly normalizes a time to midnight of its calendar day in the
// reference timezone
func (uc *RewardUseCase) dateOnly(t time.Time) time.Time {
	y, m, d := t.In(uc.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, uc.location)
}

// sameCalendarDay compares two times by calendar day in the reference
// timezone
func (uc *RewardUseCase) sameCalendarDay(a, b time.Time) bool {
	return uc.dateOnly(a).Equal(uc.dateOnly(b))
}
