// Package router sets up HTTP routes for the API.
package router

import (
	_ "movie-api/swagger" // Import generated swagger docs

	"movie-api/internal/authz"
	"movie-api/internal/handler"
	"movie-api/internal/middleware"
	"movie-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler   *handler.AuthHandler
	MovieHandler  *handler.MovieHandler
	UserHandler   *handler.UserHandler
	HealthHandler *handler.HealthHandler
	Authenticator middleware.Authenticator
	Authorizer    authz.Authorizer
	Logger        *logger.Logger
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.New()

	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	// Global middleware
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Operational endpoints
	r.GET("/", cfg.HealthHandler.Welcome)
	r.GET("/health", cfg.HealthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	r.POST("/login", cfg.AuthHandler.Login)
	r.POST("/users", cfg.UserHandler.Register)

	authRequired := middleware.Auth(cfg.Authenticator)
	can := func(action, targetParam string) gin.HandlerFunc {
		return middleware.Authorize(cfg.Authorizer, action, targetParam)
	}

	// Auth routes (protected)
	r.POST("/logout", authRequired, cfg.AuthHandler.Logout)

	// Movie routes (protected)
	movies := r.Group("/movies")
	movies.Use(authRequired)
	{
		movies.GET("", can(authz.ActionMovieView, ""), cfg.MovieHandler.ListMovies)
		movies.GET("/title/:title", can(authz.ActionMovieView, ""), cfg.MovieHandler.GetMovieByTitle)
		movies.GET("/:id", can(authz.ActionMovieView, ""), cfg.MovieHandler.GetMovie)
		movies.POST("", can(authz.ActionMovieCreate, ""), cfg.MovieHandler.CreateMovie)
		movies.PUT("/:id", can(authz.ActionMovieUpdate, ""), cfg.MovieHandler.UpdateMovie)
		movies.DELETE("/:id", can(authz.ActionMovieDelete, ""), cfg.MovieHandler.DeleteMovie)
		movies.POST("/:id/image", can(authz.ActionMovieUpdate, ""), cfg.MovieHandler.UploadImage)
	}

	// Catalog lookups (protected)
	r.GET("/genres/:name", authRequired, can(authz.ActionMovieView, ""), cfg.MovieHandler.GetGenre)
	r.GET("/directors/:name", authRequired, can(authz.ActionMovieView, ""), cfg.MovieHandler.GetDirector)

	// User routes (protected, self or admin)
	users := r.Group("/users")
	users.Use(authRequired)
	{
		users.GET("/:username", can(authz.ActionUserView, "username"), cfg.UserHandler.GetProfile)
		users.PUT("/:id", can(authz.ActionUserUpdate, "id"), cfg.UserHandler.UpdateUser)
		users.DELETE("/:username", can(authz.ActionUserDelete, "username"), cfg.UserHandler.DeleteUser)

		// Favorites
		users.POST("/:username/movies/:movieId", can(authz.ActionFavoriteAdd, "username"), cfg.UserHandler.AddFavorite)
		users.DELETE("/:username/movies/:movieId", can(authz.ActionFavoriteRemove, "username"), cfg.UserHandler.RemoveFavorite)
	}

	return r
}
