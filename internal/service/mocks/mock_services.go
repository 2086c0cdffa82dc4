// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"movie-api/internal/models"
	"movie-api/pkg/auth"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	LoginFunc        func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	LogoutFunc       func(ctx context.Context, claims *auth.Claims) error
	AuthenticateFunc func(ctx context.Context, token string) (*auth.Claims, error)
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, claims)
	}
	return nil
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, token)
	}
	return nil, nil
}

// MockMovieService is a mock implementation of MovieServicer.
type MockMovieService struct {
	ListMoviesFunc        func(ctx context.Context) ([]models.Movie, error)
	GetMovieFunc          func(ctx context.Context, id string) (*models.Movie, error)
	GetMovieByTitleFunc   func(ctx context.Context, title string) (*models.MovieSummary, error)
	GetGenreFunc          func(ctx context.Context, name string) (*models.Genre, error)
	GetDirectorFunc       func(ctx context.Context, name string) (*models.Director, error)
	CreateMovieFunc       func(ctx context.Context, req *models.CreateMovieRequest) (*models.Movie, error)
	UpdateMovieFunc       func(ctx context.Context, id string, req *models.UpdateMovieRequest) (*models.Movie, error)
	DeleteMovieFunc       func(ctx context.Context, id string) error
	CreateImageUploadFunc func(ctx context.Context, id string, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error)
}

func (m *MockMovieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	if m.ListMoviesFunc != nil {
		return m.ListMoviesFunc(ctx)
	}
	return nil, nil
}

func (m *MockMovieService) GetMovie(ctx context.Context, id string) (*models.Movie, error) {
	if m.GetMovieFunc != nil {
		return m.GetMovieFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMovieService) GetMovieByTitle(ctx context.Context, title string) (*models.MovieSummary, error) {
	if m.GetMovieByTitleFunc != nil {
		return m.GetMovieByTitleFunc(ctx, title)
	}
	return nil, nil
}

func (m *MockMovieService) GetGenre(ctx context.Context, name string) (*models.Genre, error) {
	if m.GetGenreFunc != nil {
		return m.GetGenreFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockMovieService) GetDirector(ctx context.Context, name string) (*models.Director, error) {
	if m.GetDirectorFunc != nil {
		return m.GetDirectorFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockMovieService) CreateMovie(ctx context.Context, req *models.CreateMovieRequest) (*models.Movie, error) {
	if m.CreateMovieFunc != nil {
		return m.CreateMovieFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockMovieService) UpdateMovie(ctx context.Context, id string, req *models.UpdateMovieRequest) (*models.Movie, error) {
	if m.UpdateMovieFunc != nil {
		return m.UpdateMovieFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockMovieService) DeleteMovie(ctx context.Context, id string) error {
	if m.DeleteMovieFunc != nil {
		return m.DeleteMovieFunc(ctx, id)
	}
	return nil
}

func (m *MockMovieService) CreateImageUpload(ctx context.Context, id string, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error) {
	if m.CreateImageUploadFunc != nil {
		return m.CreateImageUploadFunc(ctx, id, req)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	RegisterFunc       func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	GetProfileFunc     func(ctx context.Context, username string) (*models.UserProfile, error)
	UpdateUserFunc     func(ctx context.Context, idOrUsername string, req *models.UpdateUserRequest) (*models.User, error)
	AddFavoriteFunc    func(ctx context.Context, username, movieID string) (*models.User, error)
	RemoveFavoriteFunc func(ctx context.Context, username, movieID string) (*models.User, error)
	DeleteUserFunc     func(ctx context.Context, username string) error
}

func (m *MockUserService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockUserService) GetProfile(ctx context.Context, username string) (*models.UserProfile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, username)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, idOrUsername string, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, idOrUsername, req)
	}
	return nil, nil
}

func (m *MockUserService) AddFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	if m.AddFavoriteFunc != nil {
		return m.AddFavoriteFunc(ctx, username, movieID)
	}
	return nil, nil
}

func (m *MockUserService) RemoveFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	if m.RemoveFavoriteFunc != nil {
		return m.RemoveFavoriteFunc(ctx, username, movieID)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, username string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, username)
	}
	return nil
}
