package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/transportconnect/transportconnect/internal/pkg/config"
	"github.com/transportconnect/transportconnect/internal/pkg/database"
	"github.com/transportconnect/transportconnect/internal/pkg/health"
	"github.com/transportconnect/transportconnect/internal/pkg/logger"
	"github.com/transportconnect/transportconnect/internal/pkg/mailer"
	"github.com/transportconnect/transportconnect/internal/pkg/middleware"
	"github.com/transportconnect/transportconnect/internal/pkg/server"
	wspkg "github.com/transportconnect/transportconnect/internal/pkg/websocket"

	nsqHandler "github.com/transportconnect/transportconnect/services/notification/handler/nsq"
	notificationRepository "github.com/transportconnect/transportconnect/services/notification/repository"
	notificationUsecase "github.com/transportconnect/transportconnect/services/notification/usecase"
)

func main() {
	appName := "transportconnect-notifier"
	configPath := config.GetEnv("CONFIG_PATH", "config/notifier.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Push channel towards connected browser clients
	wsManager := wspkg.NewManager(configs.JWT, redisClient)

	notificationRepo := notificationRepository.NewNotificationRepo(configs, postgresClient.GetDB())
	notificationUC := notificationUsecase.NewNotificationUC(
		configs,
		notificationRepo,
		mailer.NewMailer(configs.SMTP),
		wsManager,
	)

	handler := nsqHandler.NewNotificationHandler(configs, notificationUC)
	if err := handler.InitConsumers(); err != nil {
		logger.Fatal("Failed to initialize NSQ consumers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	health.RegisterHealthEndpoints(e, appName)
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	shutdownManager := server.NewShutdownManager()
	shutdownManager.Register(func(ctx context.Context) error {
		handler.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, configs.Server.Port, shutdownTimeout)

	logger.Info("Notifier listening for events",
		logger.String("app", appName),
		logger.String("nsqd", configs.NSQ.NSQDAddress),
		logger.String("channel", configs.NSQ.Channel),
	)

	if err := srv.Start(); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	shutdownManager.Shutdown(ctx)

	logger.Info("Application stopped", logger.String("app", appName))
}
