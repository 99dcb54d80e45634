package app

import (
	"github.com/burgerspot/rewards/internal/http/middleware"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
