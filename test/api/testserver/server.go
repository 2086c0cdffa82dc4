//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"movie-api/internal/authz"
	"movie-api/internal/cache"
	"movie-api/internal/handler"
	"movie-api/internal/queue"
	"movie-api/internal/repository"
	"movie-api/internal/router"
	"movie-api/internal/service"
	"movie-api/internal/storage"
	"movie-api/pkg/auth"
	"movie-api/pkg/logger"
	"movie-api/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestJWTSecret is the JWT secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestJWTExpiry is the token lifetime used in tests.
	TestJWTExpiry = 15 * time.Minute
	// TestBcryptCost keeps hashing fast in tests.
	TestBcryptCost = 4
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
	// AdminUsername is granted the admin role.
	AdminUsername = "catalogadmin"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.CatalogDB
	Redis   *testdb.RevocationRedis
	MinIO   *testdb.ImageBucket

	// Repositories (for direct database access in tests)
	MovieRepo   repository.MovieRepository
	UserRepo    repository.UserRepository
	Revocations cache.RevocationStore

	// Services (for direct service access in tests)
	AuthService  service.AuthServicer
	MovieService service.MovieServicer
	UserService  service.UserServicer

	// Auth
	JWTManager *auth.JWTManager
	Hasher     *auth.BcryptHasher

	// Background image cleanup
	ImageCleanup *queue.Processor
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	cleanupAll := func() {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		_ = minioContainer.Cleanup(ctx)
	}

	redisCache := cache.NewRedisFromClient(redisContainer.Client)

	s3Client, err := storage.NewS3Client(ctx, storage.S3Config{
		Endpoint:  minioContainer.Endpoint,
		AccessKey: minioContainer.AccessKey,
		SecretKey: minioContainer.SecretKey,
		Bucket:    minioContainer.Bucket,
	})
	if err != nil {
		cleanupAll()
		return nil, err
	}

	jwtManager := auth.NewJWTManager(TestJWTSecret, TestJWTExpiry)
	hasher := auth.NewBcryptHasher(TestBcryptCost)

	// Repository layer
	movieRepo := repository.NewMovieRepository(mongoDB.Database)
	userRepo := repository.NewUserRepository(mongoDB.Database)
	revocations := cache.NewRevocationStore(redisCache)

	authorizer := authz.NewLocalAuthorizer([]string{AdminUsername})

	cleanupQueue := queue.NewMemoryQueue(100)
	cleanupProcessor := queue.NewProcessor(cleanupQueue, s3Client, 1)
	cleanupProcessor.Start(context.Background())

	// Service layer
	movieService := service.NewMovieService(service.MovieServiceConfig{
		MovieRepo:    movieRepo,
		UserRepo:     userRepo,
		Storage:      s3Client,
		ImageCleanup: cleanupQueue,
	})
	userService := service.NewUserService(service.UserServiceConfig{
		UserRepo:    userRepo,
		MovieRepo:   movieRepo,
		Hasher:      hasher,
		Revocations: revocations,
		Images:      movieService,
		TokenTTL:    TestJWTExpiry,
	})
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:    userRepo,
		Hasher:      hasher,
		JWTManager:  jwtManager,
		Revocations: revocations,
	})

	r := router.Setup(&router.Config{
		AuthHandler:  handler.NewAuthHandler(authService),
		MovieHandler: handler.NewMovieHandler(movieService),
		UserHandler:  handler.NewUserHandler(userService),
		HealthHandler: handler.NewHealthHandler(map[string]handler.Pinger{
			"mongodb": mongoDB,
			"redis":   redisCache,
		}),
		Authenticator: authService,
		Authorizer:    authorizer,
		Logger:        logger.NewNop(),
	})

	return &TestServer{
		Router:       r,
		MongoDB:      mongoDB,
		Redis:        redisContainer,
		MinIO:        minioContainer,
		MovieRepo:    movieRepo,
		UserRepo:     userRepo,
		Revocations:  revocations,
		AuthService:  authService,
		MovieService: movieService,
		UserService:  userService,
		JWTManager:   jwtManager,
		Hasher:       hasher,
		ImageCleanup: cleanupProcessor,
	}, nil
}

// Cleanup stops background workers and terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.ImageCleanup != nil {
		ts.ImageCleanup.Stop()
	}
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
