package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-api/internal/cache"
	apperrors "movie-api/internal/errors"
	"movie-api/internal/metrics"
	"movie-api/internal/models"
	"movie-api/internal/repository"
	"movie-api/internal/validator"
	"movie-api/pkg/auth"
	"movie-api/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic for user operations.
type UserService struct {
	repo        repository.UserRepository
	movieRepo   repository.MovieRepository
	hasher      auth.PasswordHasher
	revocations cache.RevocationStore
	images      ImageResolver
	tokenTTL    time.Duration
	now         func() time.Time
}

// UserServiceConfig holds configuration for UserService.
type UserServiceConfig struct {
	UserRepo    repository.UserRepository
	MovieRepo   repository.MovieRepository
	Hasher      auth.PasswordHasher
	Revocations cache.RevocationStore
	// Images resolves favorite movie image URLs in profiles. Optional.
	Images ImageResolver
	// TokenTTL is the lifetime of issued tokens; user revocations must outlive it.
	TokenTTL time.Duration
}

// NewUserService creates a new UserService.
func NewUserService(cfg UserServiceConfig) *UserService {
	return &UserService{
		repo:        cfg.UserRepo,
		movieRepo:   cfg.MovieRepo,
		hasher:      cfg.Hasher,
		revocations: cfg.Revocations,
		images:      cfg.Images,
		tokenTTL:    cfg.TokenTTL,
		now:         time.Now,
	}
}

// Register validates and stores a new user with a hashed password.
func (s *UserService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if err := validator.CreateUser(*req); err != nil {
		return nil, err
	}

	if err := s.ensureUsernameFree(ctx, req.Username, primitive.NilObjectID); err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, req.Email, primitive.NilObjectID); err != nil {
		return nil, err
	}

	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Password: hashedPassword,
		Email:    req.Email,
		Birthday: birthday,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetProfile returns a user with favorite movies resolved.
func (s *UserService) GetProfile(ctx context.Context, username string) (*models.UserProfile, error) {
	profile, err := s.repo.FindProfile(ctx, username)
	if err != nil {
		return nil, err
	}
	if s.images != nil {
		s.images.ResolveImageURLs(ctx, profile.FavoriteMovies)
	}
	return profile, nil
}

// UpdateUser applies a partial update. idOrUsername is looked up by id when it
// parses as an ObjectID and by username otherwise. A username change revokes the
// user's earlier tokens before it is stored; the update fails if revocation does.
func (s *UserService) UpdateUser(ctx context.Context, idOrUsername string, req *models.UpdateUserRequest) (*models.User, error) {
	if err := validator.UpdateUser(*req); err != nil {
		return nil, err
	}

	user, err := s.resolveUser(ctx, idOrUsername)
	if err != nil {
		return nil, err
	}

	var update models.UserUpdate
	usernameChanged := false

	if req.Username != nil && *req.Username != user.Username {
		if err := s.ensureUsernameFree(ctx, *req.Username, user.ID); err != nil {
			return nil, err
		}
		update.Username = req.Username
		usernameChanged = true
	}
	if req.Email != nil && *req.Email != user.Email {
		if err := s.ensureEmailFree(ctx, *req.Email, user.ID); err != nil {
			return nil, err
		}
		update.Email = req.Email
	}
	if req.Birthday != nil {
		birthday, err := parseBirthday(*req.Birthday)
		if err != nil {
			return nil, err
		}
		update.Birthday = birthday
	}
	if req.Password != nil {
		hashedPassword, err := s.hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		update.Password = &hashedPassword
	}

	if update.IsEmpty() {
		return user, nil
	}

	if usernameChanged {
		if err := s.revokeUserTokens(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	return s.repo.Update(ctx, user.ID, update)
}

// AddFavorite adds a movie to a user's favorites. Adding an existing favorite is a no-op.
func (s *UserService) AddFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	exists, err := s.movieRepo.Exists(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrMovieNotFound
	}

	user, err := s.repo.AddFavorite(ctx, username, objectID)
	metrics.RecordFavoriteMutation("add", err)
	return user, err
}

// RemoveFavorite removes a movie from a user's favorites. Removing a non-favorite is a no-op.
func (s *UserService) RemoveFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	user, err := s.repo.RemoveFavorite(ctx, username, objectID)
	metrics.RecordFavoriteMutation("remove", err)
	return user, err
}

// DeleteUser revokes every token issued to a user, then deregisters them.
// Nothing is deleted when revocation fails.
func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	if err := s.revokeUserTokens(ctx, user.ID); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, username)
	if err != nil {
		return err
	}
	if deleted.ID != user.ID {
		// username changed hands between lookup and delete
		return s.revokeUserTokens(ctx, deleted.ID)
	}
	return nil
}

func (s *UserService) resolveUser(ctx context.Context, idOrUsername string) (*models.User, error) {
	if objectID, err := primitive.ObjectIDFromHex(idOrUsername); err == nil {
		return s.repo.FindByID(ctx, objectID)
	}
	return s.repo.FindByUsername(ctx, idOrUsername)
}

// ensureUsernameFree returns ErrUsernameTaken if a user other than self owns username.
func (s *UserService) ensureUsernameFree(ctx context.Context, username string, self primitive.ObjectID) error {
	existing, err := s.repo.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != self:
		return apperrors.ErrUsernameTaken
	}
	return nil
}

// ensureEmailFree returns ErrEmailTaken if a user other than self owns email.
func (s *UserService) ensureEmailFree(ctx context.Context, email string, self primitive.ObjectID) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != self:
		return apperrors.ErrEmailTaken
	}
	return nil
}

// hashPassword reports bcrypt's byte limit as a validation error.
func (s *UserService) hashPassword(password string) (string, error) {
	digest, err := s.hasher.Hash(password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", apperrors.NewValidationError("password", "must be at most 72 bytes")
	}
	return digest, err
}

func (s *UserService) revokeUserTokens(ctx context.Context, userID primitive.ObjectID) error {
	if err := s.revocations.RevokeUser(ctx, userID.Hex(), s.now(), s.tokenTTL); err != nil {
		logger.Log(ctx).Error(ctx, "failed to revoke user tokens",
			zap.String("user_id", userID.Hex()), zap.Error(err))
		return fmt.Errorf("revoke tokens of user %s: %w", userID.Hex(), err)
	}
	metrics.RecordTokenRevoked("user")
	return nil
}

func parseBirthday(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	birthday, err := time.Parse(models.BirthdayLayout, value)
	if err != nil {
		return nil, apperrors.NewValidationError("birthday", "must be a valid date in YYYY-MM-DD format")
	}
	return &birthday, nil
}
