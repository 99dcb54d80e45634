package app

import (
	"github.com/burgerspot/rewards/internal/http"
	"github.com/burgerspot/rewards/internal/http/handlers"
	"github.com/burgerspot/rewards/internal/http/middleware"
	"github.com/burgerspot/rewards/internal/infrastructure/auth"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	userHandler *handlers.UserHandler,
	rewardHandler *handlers.RewardHandler,
	orderHandler *handlers.OrderHandler,
	chatHandler *handlers.ChatHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(jwtService, userHandler, rewardHandler, orderHandler, chatHandler, errorHandler, log, port)
}
