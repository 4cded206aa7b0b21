package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/testgrader/config"
	"github.com/lshigami/testgrader/database"
	"github.com/lshigami/testgrader/internal/controller"
	adminctrl "github.com/lshigami/testgrader/internal/controller/admin"
	userctrl "github.com/lshigami/testgrader/internal/controller/user"
	"github.com/lshigami/testgrader/internal/logger"
	"github.com/lshigami/testgrader/internal/middleware"
	"github.com/lshigami/testgrader/internal/monitoring"
	"github.com/lshigami/testgrader/internal/repository"
	"github.com/lshigami/testgrader/internal/router"
	"github.com/lshigami/testgrader/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// @title Test Grading API
// @version 1.0
// @description Authoring tests with answer keys, grading submitted attempts and storing the results.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			router.NewGinEngine,
			newRateLimiter,
		),

		fx.Provide(
			repository.NewTestRepository,
			repository.NewAnswerRepository,
			repository.NewUserRepository,
			repository.NewTestAttemptRepository,
		),

		fx.Provide(
			service.NewScoreCalculatorService,
			service.NewAdminTestService,
			service.NewUserTestService,
			service.NewTestSubmissionService,
		),

		fx.Provide(
			adminctrl.NewAdminTestController,
			userctrl.NewUserTestController,
			controller.NewHealthController,
		),

		fx.Invoke(logger.Configure),
		fx.Invoke(registerMetrics),
		fx.Invoke(database.AutoMigrate),
		fx.Invoke(router.RegisterRoutes),
		fx.Invoke(startServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func newRateLimiter(cfg *config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
}

func registerMetrics() error {
	return monitoring.Register(prometheus.DefaultRegisterer)
}

// startServer runs the HTTP server for the lifetime of the fx application.
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Test grading API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return server.Shutdown(ctx)
		},
	})
}
