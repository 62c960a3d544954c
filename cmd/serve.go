package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promarket.com/promarket/internal/audit"
	config "promarket.com/promarket/internal/configs"
	"promarket.com/promarket/internal/files"
	httpapi "promarket.com/promarket/internal/http"
	middleware "promarket.com/promarket/internal/http/middlewares"
	repository "promarket.com/promarket/internal/repositories"
	"promarket.com/promarket/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the job marketplace HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		logger, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer logger.Sync()

		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		userRepo := repository.NewUserRepository(database)
		jobRepo := repository.NewJobRepository(database)
		appRepo := repository.NewApplicationRepository(database)
		reviewRepo := repository.NewReviewRepository(database)
		paymentRepo := repository.NewPaymentRepository(database)
		fileRepo := repository.NewFileRepository(database)

		auditSink := audit.NoopSink{}
		fileStore := files.NewMemoryStore()

		authService := services.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour, logger)
		userService := services.NewUserService(userRepo, logger)
		jobService := services.NewJobService(database, jobRepo, appRepo, userRepo, paymentRepo, reviewRepo, auditSink, logger, cfg.CommissionRate)
		dashboardService := services.NewDashboardService(userRepo, jobRepo, appRepo, reviewRepo, paymentRepo)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			e.Use(middleware.RedisRateLimiter(redisClient, cfg.RateLimit, time.Minute))
		} else {
			e.Use(middleware.RateLimiter(cfg.RateLimit, time.Minute))
		}

		handler := httpapi.NewHandler(authService, userService, jobService, dashboardService, fileRepo, fileStore, auditSink)
		httpapi.Register(e, handler, authService)

		go func() {
			logger.Info("HTTP server listening", zap.String("addr", cfg.AppURL))
			if err := e.Start(cfg.AppURL); err != nil {
				logger.Info("server stopped", zap.Error(err))
			}
		}()

		<-ctx.Done()

		echoCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(echoCtx)

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
