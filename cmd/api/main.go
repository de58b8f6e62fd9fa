// @title Quizsheet API
// @version 1.0
// @description Generates Blooket-importable quiz tables (CSV/XLSX) from text, PDF, YouTube transcripts and web pages.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "quizsheet/cmd/api/docs"
	"quizsheet/internal/bootstrap"
	"quizsheet/internal/config"
	"quizsheet/internal/handler"
	"quizsheet/internal/logger"
	"quizsheet/internal/middleware"
	"quizsheet/internal/service"
	"quizsheet/internal/validation"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// A missing model credential makes every request fail, so refuse to start.
	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("Invalid configuration", zap.Error(err))
	}

	pipeline, err := bootstrap.NewPipeline(context.Background(), cfg)
	if err != nil {
		appLogger.Fatal("Failed to create quiz pipeline", zap.Error(err))
	}

	cacheAdapter := bootstrap.NewCache(cfg.Redis)
	resultStore := service.NewResultStore(cacheAdapter, cfg.ResultTTL)

	validator := validation.NewValidator(bootstrap.Defaults(cfg.Defaults))
	quizHandler := handler.NewQuizHandler(pipeline, resultStore, validator)
	healthHandler := handler.NewHealthHandler(cacheAdapter, pipeline.GeneratorName())

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    cfg.Server.BodyLimitMB * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept," + middleware.HeaderRequestID,
		ExposeHeaders: "Content-Disposition," + middleware.HeaderRequestID,
		MaxAge:        300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, quizHandler, healthHandler, middleware.NewValidationMiddleware(validator))

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
