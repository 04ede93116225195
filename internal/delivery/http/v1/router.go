package v1

import (
	"net/http"
	"time"

	"go-email-backend/config"
	"go-email-backend/internal/delivery/http/middleware"
	"go-email-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	MailUC       domain.MailUsecase
	AdminUC      domain.AdminUsecase
	SubmissionUC domain.SubmissionUsecase
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "email-service",
		})
	})

	api := r.Group("/api")
	NewEmailHandler(api, deps.MailUC)
	NewAdminHandler(api, deps.AdminUC)
	NewSubmissionHandler(api, deps.SubmissionUC)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
