package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-email-backend/config"
	_ "go-email-backend/docs" // Important for Swagger
	v1 "go-email-backend/internal/delivery/http/v1"
	"go-email-backend/internal/domain"
	"go-email-backend/internal/repository/memory"
	"go-email-backend/internal/repository/postgres"
	"go-email-backend/internal/usecase"
	"go-email-backend/pkg/database"
	"go-email-backend/pkg/email"
	"go-email-backend/pkg/logger"
	"go-email-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Email Service API
// @version         1.0
// @description     Transactional email relay for DD Architecture booking confirmations and contact forms.
// @host            localhost:5001
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting email service", "port", cfg.Port)

	// 3. Setup SMTP Settings Store (file persisted, env seeded)
	store, err := config.NewSMTPStore(cfg.SMTPConfigFile, config.SMTPSettings{
		Server:      cfg.SMTPServer,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUsername,
		Password:    cfg.SMTPPassword,
		SenderEmail: cfg.SenderEmail,
	})
	if err != nil {
		logger.Log.Error("Failed to load SMTP settings store", "error", err)
		os.Exit(1)
	}

	// 4. Setup Submission Archive
	var submissionRepo domain.SubmissionRepository
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		submissionRepo = postgres.NewSubmissionRepository(dbPool)
	} else {
		submissionRepo = memory.NewSubmissionRepository()
	}

	// 5. Setup Redis (rate limiter backend, optional)
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
		defer redis.Close()
	}

	// 6. Setup Email Service
	emailService := email.NewEmailService(email.NewSMTPTransport(store))
	if !store.IsConfigured() {
		logger.Log.Warn("SMTP credentials not fully configured - sends will be attempted unauthenticated")
	}

	// 7. Setup UseCases
	validate := validator.New()
	mailUC := usecase.NewMailUsecase(emailService, submissionRepo)
	adminUC := usecase.NewAdminUsecase(store, validate)
	submissionUC := usecase.NewSubmissionUsecase(submissionRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		MailUC:       mailUC,
		AdminUC:      adminUC,
		SubmissionUC: submissionUC,
		Config:       cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
