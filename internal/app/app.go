package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"go.uber.org/fx"

	"github.com/burgerspot/rewards/internal/config"
	"github.com/burgerspot/rewards/internal/domain"
	"github.com/burgerspot/rewards/internal/http"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Burger Rewards Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitDatabase,
			a.InitJWTService,
			a.InitUserLockManager,
			a.InitRandSource,
			a.InitPrizeTable,
			a.InitRepositories,
			a.InitUserUseCase,
			a.InitRewardUseCase,
			a.InitCouponUseCase,
			a.InitOrderUseCase,
			a.InitAssistantService,
			a.InitSweeper,
			a.InitErrorHandler,
			a.InitUserHandler,
			a.InitRewardHandler,
			a.InitOrderHandler,
			a.InitChatHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(a.registerHooks),
	)

	app.Run()
}

// registerHooks starts the HTTP server and the expiry sweeper under
// the fx lifecycle
func (a *application) registerHooks(
	lc fx.Lifecycle,
	server *http.Server,
	sweeper domain.ExpirySweeper,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if a.config.Sweeper.Enabled {
				sweeper.StartBackgroundProcessing()
			}
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server stopped: " + err.Error())
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sweeper.StopBackgroundProcessing()
			return log.Sync()
		},
	})
}
