package app

import (
	"github.com/burgerspot/rewards/internal/domain"
	"github.com/burgerspot/rewards/internal/http/handlers"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
)

func (a *application) InitUserHandler(uc domain.UserUseCase, log *logger.Logger) *handlers.UserHandler {
	return handlers.NewUserHandler(uc, log)
}

func (a *application) InitRewardHandler(rc domain.RewardUseCase, log *logger.Logger) *handlers.RewardHandler {
	return handlers.NewRewardHandler(rc, log)
}

func (a *application) InitOrderHandler(oc domain.OrderUseCase, cc domain.CouponUseCase, log *logger.Logger) *handlers.OrderHandler {
	return handlers.NewOrderHandler(oc, cc, log)
}

func (a *application) InitChatHandler(as domain.AssistantService, log *logger.Logger) *handlers.ChatHandler {
	return handlers.NewChatHandler(as, log)
}
