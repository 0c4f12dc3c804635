package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"knowingYou/app/echo-server/router"
	"knowingYou/business/evaluation"
	"knowingYou/business/recommending"
	"knowingYou/business/training"
	"knowingYou/internal/middleware"
	psqlRepo "knowingYou/internal/repository/postgres"
	redisRepo "knowingYou/internal/repository/redis"
	"knowingYou/internal/rest"
	"knowingYou/pkg/config"
	"knowingYou/pkg/database"
	redisdb "knowingYou/pkg/database/redis"
	"knowingYou/pkg/logger"
	"knowingYou/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting KnowingYou Evaluation API", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Init repo
	interactionRepo := psqlRepo.NewInteractionRepository(db)
	recommendationRepo := psqlRepo.NewRecommendationRepository(db)

	// Optional report cache
	var reportCache rest.ReportCache
	if cfg.Redis.Enabled {
		client, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer func() {
			if err := redisdb.CloseRedisClient(client); err != nil {
				logger.Error("Failed to close Redis client", err)
			}
		}()

		reportCache = redisRepo.NewReportCache(client, cfg.Evaluation.ReportCacheTTL)
		logger.Info("Report cache enabled", "ttl", cfg.Evaluation.ReportCacheTTL)
	}

	// Init service
	evaluationService := evaluation.NewService(
		interactionRepo,
		recommendationRepo,
		cfg.Evaluation.Workers,
		cfg.Evaluation.FailFast,
	)
	trainingService := training.NewService(interactionRepo)
	recommendingService := recommending.NewService(recommendationRepo)

	// Init handler
	evaluationHandler := rest.NewEvaluationHandler(evaluationService, cfg.Evaluation.UserIDs, reportCache, redisRepo.Key)
	trainingHandler := rest.NewTrainingHandler(trainingService)
	recommendationHandler := rest.NewRecommendationHandler(recommendingService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)
	router.SetEvaluationRoutes(e, evaluationHandler)
	router.SetTrainingRoutes(e, trainingHandler, authRequired)
	router.SetRecommendationRoutes(e, recommendationHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
