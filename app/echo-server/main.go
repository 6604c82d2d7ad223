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

	"github.com/ashlia0420/Laptop-Recommendation/app/echo-server/router"
	"github.com/ashlia0420/Laptop-Recommendation/business/recommender"
	"github.com/ashlia0420/Laptop-Recommendation/domain"
	"github.com/ashlia0420/Laptop-Recommendation/internal/middleware"
	"github.com/ashlia0420/Laptop-Recommendation/internal/repository/csvstore"
	psqlRepo "github.com/ashlia0420/Laptop-Recommendation/internal/repository/postgres"
	"github.com/ashlia0420/Laptop-Recommendation/internal/rest"
	"github.com/ashlia0420/Laptop-Recommendation/pkg/config"
	"github.com/ashlia0420/Laptop-Recommendation/pkg/database"
	"github.com/ashlia0420/Laptop-Recommendation/pkg/logger"
	"github.com/ashlia0420/Laptop-Recommendation/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// LaptopRepository is the catalog source abstraction; both the CSV and
// the Postgres implementations satisfy it.
type LaptopRepository interface {
	FindAll(ctx context.Context) ([]domain.Laptop, error)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting laptop recommendation API", "version", cfg.App.Version)

	// Dataset source
	var repo LaptopRepository
	switch cfg.Dataset.Source {
	case "postgres":
		db, err := database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		repo = psqlRepo.NewLaptopRepository(db)
	default:
		repo = csvstore.NewLaptopRepository(cfg.Dataset.Path)
	}

	// The catalog is loaded once and stays immutable for the process
	// lifetime; every request scores against this snapshot.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	catalog, err := repo.FindAll(loadCtx)
	cancelLoad()
	if err != nil {
		logger.Fatal("Failed to load laptop dataset", "error", err)
	}
	logger.Info("Dataset ready", "source", cfg.Dataset.Source, "laptops", len(catalog))

	metrics.Init()

	// Init service
	recommenderService := recommender.NewService(catalog, cfg.Dataset.TopN)

	// Init handler
	recommendHandler := rest.NewRecommendHandler(recommenderService)
	systemHandler := rest.NewSystemHandler(catalog)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRecommendRoutes(api, recommendHandler)
	router.SetupSystemRoutes(e, systemHandler)

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

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	logger.Info("Server stopped")
}
