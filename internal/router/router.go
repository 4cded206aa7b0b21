// Package router builds the gin engine and binds the HTTP API to the controllers.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/testgrader/config"
	_ "github.com/lshigami/testgrader/docs" // Swagger docs
	"github.com/lshigami/testgrader/internal/controller"
	adminctrl "github.com/lshigami/testgrader/internal/controller/admin"
	userctrl "github.com/lshigami/testgrader/internal/controller/user"
	"github.com/lshigami/testgrader/internal/middleware"
	"github.com/lshigami/testgrader/internal/monitoring"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		requestID, _ := param.Keys[middleware.RequestIDKey].(string)
		log.Info().
			Str("request_id", requestID).
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return "" // zerolog already wrote the line
	}))
	r.Use(gin.Recovery())
	r.Use(monitoring.MetricsMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", monitoring.PrometheusHandler())

	return r
}

// RegisterRoutes binds every API route. Submissions go through the rate limiter.
func RegisterRoutes(
	router *gin.Engine,
	adminTestCtrl *adminctrl.AdminTestController,
	userTestCtrl *userctrl.UserTestController,
	healthCtrl *controller.HealthController,
	limiter *middleware.RateLimiter,
) {
	router.GET("/healthz", healthCtrl.Health)

	adminAPIGroup := router.Group("/api/v1/admin")
	{
		testsAdminGroup := adminAPIGroup.Group("/tests")
		testsAdminGroup.POST("", adminTestCtrl.CreateTest)
		testsAdminGroup.GET("/:test_id", adminTestCtrl.GetTest)
		testsAdminGroup.PATCH("/:test_id/end", adminTestCtrl.EndTest)
		testsAdminGroup.DELETE("/:test_id", adminTestCtrl.DeleteTest)

		adminAPIGroup.DELETE("/users/:user_id", adminTestCtrl.DeleteUser)
		adminAPIGroup.DELETE("/test-attempts/:attempt_id", adminTestCtrl.DeleteAttempt)
	}

	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/tests", userTestCtrl.GetAllTests)
		userAPIGroup.GET("/tests/:test_id", userTestCtrl.GetTestDetails)

		userAPIGroup.POST("/tests/:test_id/attempts", limiter.Handler(), userTestCtrl.SubmitTestAttempt)
		userAPIGroup.GET("/tests/:test_id/attempts", userTestCtrl.GetTestAttempts)
		userAPIGroup.GET("/test-attempts/:attempt_id", userTestCtrl.GetSpecificTestAttemptDetails)
	}
}
