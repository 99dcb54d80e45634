package app

import (
	"github.com/burgerspot/rewards/internal/domain"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
	"github.com/burgerspot/rewards/internal/infrastructure/sweeper"
)

func (a *application) InitSweeper(cr domain.CouponRepository, log *logger.Logger) domain.ExpirySweeper {
	return sweeper.NewSweeper(cr, log, a.config.Sweeper.Interval)
}
