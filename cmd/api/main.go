package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/PavaniTiago/socioteam-api/internal/config"
	"github.com/PavaniTiago/socioteam-api/internal/infrastructure/database"
	"github.com/PavaniTiago/socioteam-api/internal/infrastructure/logging"
	"github.com/PavaniTiago/socioteam-api/internal/interfaces/http/middleware"
	"github.com/PavaniTiago/socioteam-api/internal/interfaces/http/routes"
)

func main() {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error loading configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg)
	if err != nil {
		log.Fatalf("❌ Error creating logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if !envLoaded {
		logger.Warn("no .env file found, using system environment variables")
	}

	db, err := database.SetupDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("error setting up database", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		Prefork:      false,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	middleware.SetupMiddlewares(app, cfg, logger)
	routes.SetupRoutes(app, routes.NewHandlers(db, cfg, logger), middleware.JWTAuth(cfg.JWTSecret, logger))

	logger.Info("server is running", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
