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

	"wastetrack/internal/cache"
	"wastetrack/internal/config"
	"wastetrack/internal/database"
	"wastetrack/internal/export"
	"wastetrack/internal/handler"
	"wastetrack/internal/queue"
	"wastetrack/internal/repository"
	"wastetrack/internal/router"
	"wastetrack/internal/service"
	"wastetrack/internal/storage"
	"wastetrack/internal/validator"
	"wastetrack/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           WasteTrack API
// @version         1.0
// @description     A REST API for tracking waste disposal across teams, built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	teamRepo := repository.NewTeamRepository(mongoDB.Database)
	wasteLogRepo := repository.NewWasteLogRepository(mongoDB.Database)
	reportRepo := repository.NewReportRepository(mongoDB.Database)

	// Report export queue and processor
	reportQueue := queue.NewMemoryQueue(cfg.ReportQueueSize)
	csvExporter := export.NewCSVExporter(wasteLogRepo, s3Client)
	reportProcessor := queue.NewProcessor(reportQueue, csvExporter, reportRepo, cfg.ReportWorkers)

	// Service layer
	authService := service.NewAuthService(userRepo, redisCache, jwtManager)
	userService := service.NewUserService(userRepo, teamRepo, redisCache)
	teamService := service.NewTeamService(teamRepo, userRepo, redisCache)
	wasteLogService := service.NewWasteLogService(wasteLogRepo, teamRepo, redisCache)
	analyticsService := service.NewAnalyticsService(wasteLogRepo, teamRepo, redisCache)
	reportService := service.NewReportService(reportRepo, teamRepo, reportQueue, s3Client)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, authService)
	teamHandler := handler.NewTeamHandler(teamService)
	wasteLogHandler := handler.NewWasteLogHandler(wasteLogService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	reportHandler := handler.NewReportHandler(reportService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:      authHandler,
		UserHandler:      userHandler,
		TeamHandler:      teamHandler,
		WasteLogHandler:  wasteLogHandler,
		AnalyticsHandler: analyticsHandler,
		ReportHandler:    reportHandler,
		Sessions:         authService,
		DB:               mongoDB,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start report processor
	reportProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop report processor (waits for workers)
	log.Println("Stopping report processor...")
	reportProcessor.Stop()

	log.Println("Server shutdown complete")
}
