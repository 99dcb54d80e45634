package app

import (
	"github.com/burgerspot/rewards/internal/infrastructure/lock"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
)

func (a *application) InitUserLockManager(logger *logger.Logger) *lock.UserLockManager {
	return lock.NewUserLockManager(logger)
}
