package service

import (
	"context"
	"time"

	apperrors "movie-api/internal/errors"
	"movie-api/internal/models"
	"movie-api/internal/queue"
	"movie-api/internal/repository"
	"movie-api/internal/storage"
	"movie-api/internal/validator"
	"movie-api/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const defaultImageURLExpiry = 15 * time.Minute

// ImageCleaner accepts stored image keys that no movie references any more.
type ImageCleaner interface {
	Enqueue(job queue.ImageDeleteJob) error
}

// MovieService handles business logic for the movie catalog.
type MovieService struct {
	repo           repository.MovieRepository
	userRepo       repository.UserRepository
	storage        storage.Storage
	cleanup        ImageCleaner
	imageURLExpiry time.Duration
}

// MovieServiceConfig holds configuration for MovieService.
// Storage may be nil, in which case image uploads are disabled.
// ImageCleanup may be nil, in which case replaced images stay in storage.
type MovieServiceConfig struct {
	MovieRepo      repository.MovieRepository
	UserRepo       repository.UserRepository
	Storage        storage.Storage
	ImageCleanup   ImageCleaner
	ImageURLExpiry time.Duration
}

// NewMovieService creates a new MovieService.
func NewMovieService(cfg MovieServiceConfig) *MovieService {
	expiry := cfg.ImageURLExpiry
	if expiry <= 0 {
		expiry = defaultImageURLExpiry
	}
	return &MovieService{
		repo:           cfg.MovieRepo,
		userRepo:       cfg.UserRepo,
		storage:        cfg.Storage,
		cleanup:        cfg.ImageCleanup,
		imageURLExpiry: expiry,
	}
}

// ListMovies returns every movie in the catalog.
func (s *MovieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	movies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.ResolveImageURLs(ctx, movies)
	return movies, nil
}

// GetMovie retrieves a movie by its hex id.
func (s *MovieService) GetMovie(ctx context.Context, id string) (*models.Movie, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	movie, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	s.resolveImageURL(ctx, movie)
	return movie, nil
}

// GetMovieByTitle returns the summary view of the movie with exactly this title.
func (s *MovieService) GetMovieByTitle(ctx context.Context, title string) (*models.MovieSummary, error) {
	movie, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	s.resolveImageURL(ctx, movie)
	summary := movie.Summary()
	return &summary, nil
}

// GetGenre returns the genre with exactly this name.
func (s *MovieService) GetGenre(ctx context.Context, name string) (*models.Genre, error) {
	return s.repo.FindGenreByName(ctx, name)
}

// GetDirector returns the director with exactly this name.
func (s *MovieService) GetDirector(ctx context.Context, name string) (*models.Director, error) {
	return s.repo.FindDirectorByName(ctx, name)
}

// CreateMovie validates and stores a new movie.
func (s *MovieService) CreateMovie(ctx context.Context, req *models.CreateMovieRequest) (*models.Movie, error) {
	if err := validator.CreateMovie(*req); err != nil {
		return nil, err
	}

	movie := &models.Movie{
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		Director:    req.Director,
		Actors:      req.Actors,
		ImagePath:   req.ImagePath,
		Featured:    req.Featured,
	}
	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}

	s.resolveImageURL(ctx, movie)
	return movie, nil
}

// UpdateMovie applies a partial update to a movie.
func (s *MovieService) UpdateMovie(ctx context.Context, id string, req *models.UpdateMovieRequest) (*models.Movie, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}
	if err := validator.UpdateMovie(*req); err != nil {
		return nil, err
	}

	previous, movie, err := s.repo.Update(ctx, objectID, req)
	if err != nil {
		return nil, err
	}
	s.scheduleImageCleanup(ctx, id, previous.ImagePath, movie.ImagePath)
	s.resolveImageURL(ctx, movie)
	return movie, nil
}

// DeleteMovie removes a movie and drops it from every user's favorites.
func (s *MovieService) DeleteMovie(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidID
	}

	deleted, err := s.repo.Delete(ctx, objectID)
	if err != nil {
		return err
	}
	s.scheduleImageCleanup(ctx, id, deleted.ImagePath, "")

	// $lookup skips dangling favorites, so a failed prune is only logged
	modified, err := s.userRepo.RemoveFavoriteFromAll(ctx, objectID)
	if err != nil {
		logger.Log(ctx).Warn(ctx, "failed to prune favorites of deleted movie",
			zap.String("movie_id", id), zap.Error(err))
		return nil
	}
	if modified > 0 {
		logger.Log(ctx).Info(ctx, "pruned favorites of deleted movie",
			zap.String("movie_id", id), zap.Int64("users", modified))
	}
	return nil
}

// CreateImageUpload assigns a fresh image key to a movie and returns a pre-signed PUT URL for it.
func (s *MovieService) CreateImageUpload(ctx context.Context, id string, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error) {
	if s.storage == nil {
		return nil, apperrors.ErrStorageDisabled
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	contentType, ok := storage.ImageContentType(req.Format)
	if !ok {
		return nil, apperrors.NewValidationError("format", "must be one of jpg, jpeg, png, webp")
	}

	exists, err := s.repo.Exists(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrMovieNotFound
	}

	key := storage.ImageKey(id, req.Format)
	uploadURL, err := s.storage.GetPresignedPutURL(ctx, key, contentType, s.imageURLExpiry)
	if err != nil {
		return nil, err
	}

	previous, movie, err := s.repo.Update(ctx, objectID, &models.UpdateMovieRequest{ImagePath: &key})
	if err != nil {
		return nil, err
	}
	s.scheduleImageCleanup(ctx, id, previous.ImagePath, movie.ImagePath)
	s.resolveImageURL(ctx, movie)

	return &models.ImageUploadResponse{
		Movie:     *movie,
		UploadURL: uploadURL,
	}, nil
}

// scheduleImageCleanup queues a stored image that the movie no longer points at.
// Failures leave the object in storage and are only logged.
func (s *MovieService) scheduleImageCleanup(ctx context.Context, movieID, previous, current string) {
	if s.cleanup == nil || previous == "" || previous == current || storage.IsExternalURL(previous) {
		return
	}
	if err := s.cleanup.Enqueue(queue.ImageDeleteJob{Key: previous, MovieID: movieID}); err != nil {
		logger.Log(ctx).Warn(ctx, "failed to schedule image cleanup",
			zap.String("movie_id", movieID), zap.String("key", previous), zap.Error(err))
	}
}

// ResolveImageURLs fills in ImageURL for each movie.
func (s *MovieService) ResolveImageURLs(ctx context.Context, movies []models.Movie) {
	for i := range movies {
		s.resolveImageURL(ctx, &movies[i])
	}
}

func (s *MovieService) resolveImageURL(ctx context.Context, movie *models.Movie) {
	switch {
	case movie.ImagePath == "":
		movie.ImageURL = ""
	case s.storage == nil, storage.IsExternalURL(movie.ImagePath):
		movie.ImageURL = movie.ImagePath
	default:
		url, err := s.storage.GetPresignedURL(ctx, movie.ImagePath, s.imageURLExpiry)
		if err != nil {
			logger.Log(ctx).Warn(ctx, "failed to presign movie image",
				zap.String("movie_id", movie.ID.Hex()), zap.Error(err))
			movie.ImageURL = ""
			return
		}
		movie.ImageURL = url
	}
}
