package main

import (
	"context"
	"log"
	"time"

	"movie-api/internal/config"
	"movie-api/internal/database"
	"movie-api/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	appLog, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLog.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	appLog.Info(ctx, "creating indexes", zap.String("database", cfg.MongoDatabase))

	mongoDB, err := database.NewMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		appLog.Fatal(ctx, "failed to connect to mongodb", zap.Error(err))
	}
	defer mongoDB.Close()

	created, err := database.EnsureIndexes(ctx, mongoDB.Database)
	for collection, names := range created {
		appLog.Info(ctx, "indexes ready", zap.String("collection", collection), zap.Strings("indexes", names))
	}
	if err != nil {
		appLog.Fatal(ctx, "index creation failed", zap.Error(err))
	}

	appLog.Info(ctx, "indexes created successfully")
}
