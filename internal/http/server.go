package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/burgerspot/rewards/internal/http/handlers"
	"github.com/burgerspot/rewards/internal/http/middleware"
	"github.com/burgerspot/rewards/internal/infrastructure/auth"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
)

// Server represents the HTTP server
type Server struct {
	router        *gin.Engine
	jwtService    auth.JWTService
	userHandler   *handlers.UserHandler
	rewardHandler *handlers.RewardHandler
	orderHandler  *handlers.OrderHandler
	chatHandler   *handlers.ChatHandler
	errorHandler  *middleware.ErrorHandler
	port          string
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	userHandler *handlers.UserHandler,
	rewardHandler *handlers.RewardHandler,
	orderHandler *handlers.OrderHandler,
	chatHandler *handlers.ChatHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:        router,
		jwtService:    jwtService,
		userHandler:   userHandler,
		rewardHandler: rewardHandler,
		orderHandler:  orderHandler,
		chatHandler:   chatHandler,
		errorHandler:  errorHandler,
		port:          port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", s.userHandler.Login)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			userRoutes := protected.Group("/users")
			{
				userRoutes.GET("/me", s.userHandler.GetUserInfo)
			}

			rewardRoutes := protected.Group("/rewards")
			{
				rewardRoutes.GET("/status", s.rewardHandler.Status)
				rewardRoutes.POST("/play", s.rewardHandler.Play)
			}

			orderRoutes := protected.Group("/orders")
			{
				orderRoutes.POST("/apply-coupon", s.orderHandler.ApplyCoupon)
				orderRoutes.POST("", s.orderHandler.Create)
				orderRoutes.GET("/my", s.orderHandler.GetMyOrders)

				adminRoutes := orderRoutes.Group("")
				adminRoutes.Use(middleware.AdminMiddleware())
				{
					adminRoutes.GET("", s.orderHandler.GetAll)
					adminRoutes.PUT("/:id/status", s.orderHandler.UpdateStatus)
				}
			}

			protected.POST("/chat", s.chatHandler.Chat)
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
