package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tapcard/tapcard/internal/pkg/config"
	"github.com/tapcard/tapcard/internal/pkg/database"
	"github.com/tapcard/tapcard/internal/pkg/health"
	"github.com/tapcard/tapcard/internal/pkg/logger"
	"github.com/tapcard/tapcard/internal/pkg/middleware"
	natspkg "github.com/tapcard/tapcard/internal/pkg/nats"
	nrpkg "github.com/tapcard/tapcard/internal/pkg/newrelic"
	"github.com/tapcard/tapcard/services/cards/gateway"
	"github.com/tapcard/tapcard/services/cards/handler"
	httpHandler "github.com/tapcard/tapcard/services/cards/handler/http"
	"github.com/tapcard/tapcard/services/cards/repository"
	"github.com/tapcard/tapcard/services/cards/usecase"
)

func main() {
	appName := "cards-service"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	// Wait for New Relic connection before proceeding
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		} else {
			log.Println("New Relic connection established")
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repository
	cardRepo := repository.NewCardRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize Gateway
	cardGW := gateway.NewCardGW(configs, natsClient)

	// Initialize UseCase
	cardUC := usecase.NewCardUC(cardRepo, cardRepo, cardGW, configs)

	// Handlers for HTTP
	cardHandler := httpHandler.NewCardHandler(cardUC)
	Handler := handler.NewHandler(cardHandler, redisClient, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start server
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
