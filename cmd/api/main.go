package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/transportconnect/transportconnect/internal/pkg/config"
	"github.com/transportconnect/transportconnect/internal/pkg/database"
	"github.com/transportconnect/transportconnect/internal/pkg/health"
	"github.com/transportconnect/transportconnect/internal/pkg/logger"
	"github.com/transportconnect/transportconnect/internal/pkg/mailer"
	"github.com/transportconnect/transportconnect/internal/pkg/middleware"
	nsqpkg "github.com/transportconnect/transportconnect/internal/pkg/nsq"
	"github.com/transportconnect/transportconnect/internal/pkg/server"
	wspkg "github.com/transportconnect/transportconnect/internal/pkg/websocket"

	adminHTTP "github.com/transportconnect/transportconnect/services/admin/handler/http"
	adminRepository "github.com/transportconnect/transportconnect/services/admin/repository"
	adminUsecase "github.com/transportconnect/transportconnect/services/admin/usecase"
	annonceHTTP "github.com/transportconnect/transportconnect/services/annonce/handler/http"
	annonceRepository "github.com/transportconnect/transportconnect/services/annonce/repository"
	annonceUsecase "github.com/transportconnect/transportconnect/services/annonce/usecase"
	demandeGateway "github.com/transportconnect/transportconnect/services/demande/gateway"
	demandeHTTP "github.com/transportconnect/transportconnect/services/demande/handler/http"
	demandeRepository "github.com/transportconnect/transportconnect/services/demande/repository"
	demandeUsecase "github.com/transportconnect/transportconnect/services/demande/usecase"
	evaluationGateway "github.com/transportconnect/transportconnect/services/evaluation/gateway"
	evaluationHTTP "github.com/transportconnect/transportconnect/services/evaluation/handler/http"
	evaluationRepository "github.com/transportconnect/transportconnect/services/evaluation/repository"
	evaluationUsecase "github.com/transportconnect/transportconnect/services/evaluation/usecase"
	messageGateway "github.com/transportconnect/transportconnect/services/message/gateway"
	messageHTTP "github.com/transportconnect/transportconnect/services/message/handler/http"
	messageWS "github.com/transportconnect/transportconnect/services/message/handler/websocket"
	messageRepository "github.com/transportconnect/transportconnect/services/message/repository"
	messageUsecase "github.com/transportconnect/transportconnect/services/message/usecase"
	utilisateurGateway "github.com/transportconnect/transportconnect/services/utilisateur/gateway"
	utilisateurHTTP "github.com/transportconnect/transportconnect/services/utilisateur/handler/http"
	utilisateurRepository "github.com/transportconnect/transportconnect/services/utilisateur/repository"
	utilisateurUsecase "github.com/transportconnect/transportconnect/services/utilisateur/usecase"
)

func main() {
	appName := "transportconnect-api"
	configPath := config.GetEnv("CONFIG_PATH", "config/api.env")
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
	db := postgresClient.GetDB()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	producer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	// Repositories
	utilisateurRepo := utilisateurRepository.NewUtilisateurRepo(configs, db, redisClient)
	annonceRepo := annonceRepository.NewAnnonceRepo(configs, db, redisClient)
	demandeRepo := demandeRepository.NewDemandeRepo(configs, db, redisClient)
	evaluationRepo := evaluationRepository.NewEvaluationRepo(configs, db, redisClient)
	messageRepo := messageRepository.NewMessageRepo(configs, db, redisClient)
	adminRepo := adminRepository.NewAdminRepo(configs, db, redisClient)

	// Gateways
	utilisateurGW := utilisateurGateway.NewUtilisateurGW(producer)
	demandeGW := demandeGateway.NewDemandeGW(producer)
	evaluationGW := evaluationGateway.NewEvaluationGW(producer)
	messageGW := messageGateway.NewMessageGW(producer)

	// WebSocket manager for realtime chat rooms
	wsManager := wspkg.NewManager(configs.JWT, redisClient)

	// Use cases
	utilisateurUC := utilisateurUsecase.NewUtilisateurUC(configs, utilisateurRepo, utilisateurGW)
	annonceUC := annonceUsecase.NewAnnonceUC(configs, annonceRepo)
	demandeUC := demandeUsecase.NewDemandeUC(configs, demandeRepo, annonceRepo, demandeGW)
	evaluationUC := evaluationUsecase.NewEvaluationUC(configs, evaluationRepo, demandeRepo, evaluationGW)
	messageUC := messageUsecase.NewMessageUC(configs, messageRepo, messageGW, wsManager)
	adminUC := adminUsecase.NewAdminUC(configs, adminRepo, mailer.NewMailer(configs.SMTP))

	// HTTP handlers
	utilisateurHandler := utilisateurHTTP.NewUtilisateurHandler(utilisateurUC)
	annonceHandler := annonceHTTP.NewAnnonceHandler(annonceUC)
	demandeHandler := demandeHTTP.NewDemandeHandler(demandeUC)
	evaluationHandler := evaluationHTTP.NewEvaluationHandler(evaluationUC)
	messageHandler := messageHTTP.NewMessageHandler(messageUC)
	adminHandler := adminHTTP.NewAdminHandler(adminUC)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: configs.CORS.AllowedOrigins,
	}))

	// Health endpoints
	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nsq", health.NewNSQHealthChecker(producer))
	health.RegisterHealthEndpoints(e, appName)
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// API routes
	api := e.Group("/api")
	authLimiter := middleware.IPRateLimiter(
		configs.RateLimit.Limit,
		time.Duration(configs.RateLimit.PeriodSeconds)*time.Second,
		redisClient.GetClient(),
	)
	utilisateurHandler.RegisterRoutes(api, configs.JWT, authLimiter)
	annonceHandler.RegisterRoutes(api, configs.JWT)
	demandeHandler.RegisterRoutes(api, configs.JWT)
	evaluationHandler.RegisterRoutes(api, configs.JWT)
	messageHandler.RegisterRoutes(api, configs.JWT)
	adminHandler.RegisterRoutes(api, configs.JWT)

	// Realtime chat endpoint
	wsHandler := messageWS.NewMessageWSHandler(wsManager, messageUC)
	e.GET("/ws", wsHandler.HandleConnection)

	shutdownManager := server.NewShutdownManager()
	shutdownManager.Register(func(ctx context.Context) error {
		producer.Stop()
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

	logger.Info("Starting server",
		logger.String("app", appName),
		logger.Int("port", configs.Server.Port),
	)

	if err := srv.Start(); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	shutdownManager.Shutdown(ctx)

	logger.Info("Application stopped", logger.String("app", appName))
}
