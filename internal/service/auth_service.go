package service

import (
	"context"
	"errors"
	"time"

	"movie-api/internal/cache"
	apperrors "movie-api/internal/errors"
	"movie-api/internal/metrics"
	"movie-api/internal/models"
	"movie-api/internal/repository"
	"movie-api/internal/validator"
	"movie-api/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService handles authentication business logic.
type AuthService struct {
	userRepo    repository.UserRepository
	hasher      auth.PasswordHasher
	jwtManager  auth.TokenManager
	revocations cache.RevocationStore
	now         func() time.Time
}

// AuthServiceConfig holds configuration for AuthService.
type AuthServiceConfig struct {
	UserRepo    repository.UserRepository
	Hasher      auth.PasswordHasher
	JWTManager  auth.TokenManager
	Revocations cache.RevocationStore
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:    cfg.UserRepo,
		hasher:      cfg.Hasher,
		jwtManager:  cfg.JWTManager,
		revocations: cfg.Revocations,
		now:         time.Now,
	}
}

// Login verifies credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if err := validator.Login(*req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			metrics.RecordAuthFailure("unknown_user")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(req.Password, user.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		metrics.RecordAuthFailure("bad_password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, claims, err := s.jwtManager.GenerateToken(user.ID.Hex(), user.Username)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAtTime(),
		User:      *user,
	}, nil
}

// Logout revokes the presented token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.ExpiresAtTime().Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.revocations.RevokeToken(ctx, claims.TokenID(), ttl); err != nil {
		return err
	}
	metrics.RecordTokenRevoked("token")
	return nil
}

// Authenticate validates a bearer token and checks it against revocations.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			metrics.RecordAuthFailure("expired")
			return nil, apperrors.ErrTokenExpired
		}
		metrics.RecordAuthFailure("invalid")
		return nil, apperrors.ErrInvalidToken
	}

	revoked, err := s.revocations.IsTokenRevoked(ctx, claims.TokenID())
	if err != nil {
		return nil, err
	}
	if revoked {
		metrics.RecordAuthFailure("revoked")
		return nil, apperrors.ErrTokenRevoked
	}

	cutoff, found, err := s.revocations.UserRevokedAt(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if found && !claims.IssuedAtTime().After(cutoff) {
		metrics.RecordAuthFailure("revoked")
		return nil, apperrors.ErrTokenRevoked
	}

	return claims, nil
}
