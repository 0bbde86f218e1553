package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tdinh-lab/stock-advisor/internal/db"
	"github.com/tdinh-lab/stock-advisor/internal/handlers"
	"github.com/tdinh-lab/stock-advisor/internal/logger"
	"github.com/tdinh-lab/stock-advisor/internal/services"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Database connection
	config := db.NewConfig()
	database, err := db.Connect(config)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Health(); err != nil {
		log.Fatal("database health check failed", zap.Error(err))
	}
	log.Info("database connection established", zap.String("driver", config.Driver))

	// Idempotent schema creation and one-shot demo seed
	if err := db.Migrate(database); err != nil {
		log.Fatal("failed to migrate schema", zap.Error(err))
	}
	if err := db.Seed(database); err != nil {
		log.Fatal("failed to seed database", zap.Error(err))
	}

	// Initialize services
	marketService := services.NewMarketService()
	userService := services.NewUserService(database)
	portfolioService := services.NewPortfolioService(database, marketService)

	router := handlers.NewRouter(userService, portfolioService, marketService, log)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           handlers.CORS(router),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("port", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}
