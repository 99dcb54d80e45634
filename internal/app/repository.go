package app

import (
	"gorm.io/gorm"

	"github.com/burgerspot/rewards/internal/domain"
	"github.com/burgerspot/rewards/internal/infrastructure/repository"
)

func (a *application) InitRepositories(db *gorm.DB) (
	domain.UserRepository,
	domain.CouponRepository,
	domain.RewardPlayRepository,
	domain.OrderRepository,
) {
	return repository.NewUserRepository(db),
		repository.NewCouponRepository(db),
		repository.NewRewardPlayRepository(db),
		repository.NewOrderRepository(db)
}
