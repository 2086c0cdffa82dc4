// Package service contains business logic for the application.
package service

import (
	"context"

	"movie-api/internal/models"
	"movie-api/pkg/auth"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context, claims *auth.Claims) error
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
}

// MovieServicer defines the interface for movie catalog operations.
type MovieServicer interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, id string) (*models.Movie, error)
	GetMovieByTitle(ctx context.Context, title string) (*models.MovieSummary, error)
	GetGenre(ctx context.Context, name string) (*models.Genre, error)
	GetDirector(ctx context.Context, name string) (*models.Director, error)
	CreateMovie(ctx context.Context, req *models.CreateMovieRequest) (*models.Movie, error)
	UpdateMovie(ctx context.Context, id string, req *models.UpdateMovieRequest) (*models.Movie, error)
	DeleteMovie(ctx context.Context, id string) error
	CreateImageUpload(ctx context.Context, id string, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error)
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	GetProfile(ctx context.Context, username string) (*models.UserProfile, error)
	UpdateUser(ctx context.Context, idOrUsername string, req *models.UpdateUserRequest) (*models.User, error)
	AddFavorite(ctx context.Context, username, movieID string) (*models.User, error)
	RemoveFavorite(ctx context.Context, username, movieID string) (*models.User, error)
	DeleteUser(ctx context.Context, username string) error
}

// ImageResolver fills in the response-only image URL of movies.
type ImageResolver interface {
	ResolveImageURLs(ctx context.Context, movies []models.Movie)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer  = (*AuthService)(nil)
	_ MovieServicer = (*MovieService)(nil)
	_ UserServicer  = (*UserService)(nil)
	_ ImageResolver = (*MovieService)(nil)
)
