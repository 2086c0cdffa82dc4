package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movie-api/internal/authz"
	"movie-api/internal/cache"
	"movie-api/internal/config"
	"movie-api/internal/database"
	"movie-api/internal/handler"
	"movie-api/internal/queue"
	"movie-api/internal/repository"
	"movie-api/internal/router"
	"movie-api/internal/service"
	"movie-api/internal/storage"
	"movie-api/internal/validator"
	"movie-api/pkg/auth"
	"movie-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Movie API
// @version         1.0
// @description     A REST API for a movie catalog with user accounts and favorites, built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()

	appLog, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLog.Sync() }()
	logger.SetDefault(appLog)

	ctx := context.Background()
	appLog.Info(ctx, "configuration loaded", zap.String("gin_mode", cfg.GinMode))

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB, err := database.NewMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		appLog.Fatal(ctx, "failed to connect to mongodb", zap.Error(err))
	}
	defer mongoDB.Close()

	// Redis Cache
	redisCache, err := cache.NewRedis(ctx, cfg.RedisURI)
	if err != nil {
		appLog.Fatal(ctx, "failed to connect to redis", zap.Error(err))
	}
	defer redisCache.Close()

	// S3 Storage (optional)
	var imageStore storage.Storage
	if cfg.StorageEnabled() {
		s3Client, err := storage.NewS3Client(ctx, storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			UseSSL:    cfg.S3UseSSL,
		})
		if err != nil {
			appLog.Fatal(ctx, "failed to create s3 client", zap.Error(err))
		}
		imageStore = s3Client
		appLog.Info(ctx, "image storage enabled", zap.String("bucket", cfg.S3Bucket))
	} else {
		appLog.Info(ctx, "image storage disabled, S3_ENDPOINT is not set")
	}

	// Background removal of replaced images
	var imageCleanup service.ImageCleaner
	var cleanupProcessor *queue.Processor
	if imageStore != nil {
		cleanupQueue := queue.NewMemoryQueue(cfg.ImageCleanupQueueSize)
		cleanupProcessor = queue.NewProcessor(cleanupQueue, imageStore, cfg.ImageCleanupWorkers)
		cleanupProcessor.Start(ctx)
		imageCleanup = cleanupQueue
	}

	// Auth primitives
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)

	// Repository layer
	movieRepo := repository.NewMovieRepository(mongoDB.Database)
	userRepo := repository.NewUserRepository(mongoDB.Database)
	revocations := cache.NewRevocationStore(redisCache)

	// Authorization
	authorizer := authz.NewLocalAuthorizer(cfg.AdminUsernames)

	// Service layer
	movieService := service.NewMovieService(service.MovieServiceConfig{
		MovieRepo:      movieRepo,
		UserRepo:       userRepo,
		Storage:        imageStore,
		ImageCleanup:   imageCleanup,
		ImageURLExpiry: cfg.ImageURLExpiry,
	})
	userService := service.NewUserService(service.UserServiceConfig{
		UserRepo:    userRepo,
		MovieRepo:   movieRepo,
		Hasher:      hasher,
		Revocations: revocations,
		Images:      movieService,
		TokenTTL:    cfg.JWTExpiry,
	})
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:    userRepo,
		Hasher:      hasher,
		JWTManager:  jwtManager,
		Revocations: revocations,
	})

	// Handler layer
	healthHandler := handler.NewHealthHandler(map[string]handler.Pinger{
		"mongodb": mongoDB,
		"redis":   redisCache,
	})

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:   handler.NewAuthHandler(authService),
		MovieHandler:  handler.NewMovieHandler(movieService),
		UserHandler:   handler.NewUserHandler(userService),
		HealthHandler: healthHandler,
		Authenticator: authService,
		Authorizer:    authorizer,
		Logger:        appLog,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(ctx, "server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal(ctx, "failed to start server", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	appLog.Info(ctx, "shutdown signal received", zap.String("signal", sig.String()))

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error(ctx, "http server shutdown error", zap.Error(err))
	}

	if cleanupProcessor != nil {
		cleanupProcessor.Stop()
		appLog.Info(ctx, "image cleanup processor stopped")
	}

	appLog.Info(ctx, "server shutdown complete")
}
