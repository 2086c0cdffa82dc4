package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	cachemocks "movie-api/internal/cache/mocks"
	apperrors "movie-api/internal/errors"
	"movie-api/internal/models"
	repomocks "movie-api/internal/repository/mocks"
	"movie-api/pkg/auth"
	authmocks "movie-api/pkg/auth/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type authServiceMocks struct {
	users       *repomocks.MockUserRepository
	hasher      *authmocks.MockPasswordHasher
	jwt         *authmocks.MockTokenManager
	revocations *cachemocks.MockRevocationStore
}

func newAuthServiceUnderTest(t *testing.T) (*AuthService, authServiceMocks) {
	ctrl := gomock.NewController(t)
	m := authServiceMocks{
		users:       repomocks.NewMockUserRepository(ctrl),
		hasher:      authmocks.NewMockPasswordHasher(ctrl),
		jwt:         authmocks.NewMockTokenManager(ctrl),
		revocations: cachemocks.NewMockRevocationStore(ctrl),
	}
	service := NewAuthService(AuthServiceConfig{
		UserRepo:    m.users,
		Hasher:      m.hasher,
		JWTManager:  m.jwt,
		Revocations: m.revocations,
	})
	return service, m
}

func testClaims(userID string, issuedAt time.Time) *auth.Claims {
	return &auth.Claims{
		UserID:   userID,
		Username: "moviefan1",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "token-id",
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
		},
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: primitive.NewObjectID(), Username: "moviefan1", Password: "digest"}
	req := &models.LoginRequest{Username: "moviefan1", Password: "secret123"}

	t.Run("issues token for valid credentials", func(t *testing.T) {
		service, m := newAuthServiceUnderTest(t)
		issued := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
		m.users.EXPECT().FindByUsername(ctx, "moviefan1").Return(user, nil)
		m.hasher.EXPECT().Verify("secret123", "digest").Return(true, nil)
		m.jwt.EXPECT().
			GenerateToken(user.ID.Hex(), "moviefan1").
			Return("signed-token", testClaims(user.ID.Hex(), issued), nil)

		resp, err := service.Login(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, issued.Add(time.Hour), resp.ExpiresAt.UTC())
		assert.Equal(t, "moviefan1", resp.User.Username)
	})

	t.Run("unknown user", func(t *testing.T) {
		service, m := newAuthServiceUnderTest(t)
		m.users.EXPECT().FindByUsername(ctx, "moviefan1").Return(nil, apperrors.ErrUserNotFound)

		_, err := service.Login(ctx, req)

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		service, m := newAuthServiceUnderTest(t)
		m.users.EXPECT().FindByUsername(ctx, "moviefan1").Return(user, nil)
		m.hasher.EXPECT().Verify("secret123", "digest").Return(false, nil)

		_, err := service.Login(ctx, req)

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		service, _ := newAuthServiceUnderTest(t)

		_, err := service.Login(ctx, &models.LoginRequest{})

		ve, ok := apperrors.AsValidationError(err)
		require.True(t, ok)
		assert.Len(t, ve.Fields, 2)
	})

	t.Run("store failure is not masked", func(t *testing.T) {
		service, m := newAuthServiceUnderTest(t)
		m.users.EXPECT().FindByUsername(ctx, "moviefan1").Return(nil, errors.New("db down"))

		_, err := service.Login(ctx, req)

		assert.EqualError(t, err, "db down")
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	t.Run("revokes until expiry", func(t *testing.T) {
		service, m := newAuthServiceUnderTest(t)
		service.now = func() time.Time { return now }
		claims := testClaims("u1", now.Add(-20*time.Minute))
		m.revocations.EXPECT().RevokeToken(ctx, "token-id", 40*time.Minute).Return(nil)

		assert.NoError(t, service.Logout(ctx, claims))
	})

	t.Run("expired token needs no revocation", func(t *testing.T) {
		service, _ := newAuthServiceUnderTest(t)
		service.now = func() time.Time { return now }

		assert.NoError(t, service.Logout(ctx, testClaims("u1", now.Add(-2*time.Hour))))
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	issued := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	t.Run("valid token", func(t *testing.T) {
		service, m := newAuthServiceUnderTest(t)
		m.jwt.EXPECT().ValidateToken("tok").Return(testClaims("u1", issued), nil)
		m.revocations.EXPECT().IsTokenRevoked(ctx, "token-id").Return(false, nil)
		m.revocations.EXPECT().UserRevokedAt(ctx, "u1").Return(time.Time{}, false, nil)

		claims, err := service.Authenticate(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
	})

	t.Run("expired token", func(t *testing.T) {
		service, m := newAuthServiceUnderTest(t)
		m.jwt.EXPECT().ValidateToken("tok").Return(nil, fmt.Errorf("%w: %w", jwt.ErrTokenInvalidClaims, jwt.ErrTokenExpired))

		_, err := service.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("bad signature", func(t *testing.T) {
		service, m := newAuthServiceUnderTest(t)
		m.jwt.EXPECT().ValidateToken("tok").Return(nil, jwt.ErrSignatureInvalid)

		_, err := service.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("revoked token id", func(t *testing.T) {
		service, m := newAuthServiceUnderTest(t)
		m.jwt.EXPECT().ValidateToken("tok").Return(testClaims("u1", issued), nil)
		m.revocations.EXPECT().IsTokenRevoked(ctx, "token-id").Return(true, nil)

		_, err := service.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
	})

	t.Run("issued before user cut-off", func(t *testing.T) {
		service, m := newAuthServiceUnderTest(t)
		m.jwt.EXPECT().ValidateToken("tok").Return(testClaims("u1", issued), nil)
		m.revocations.EXPECT().IsTokenRevoked(ctx, "token-id").Return(false, nil)
		m.revocations.EXPECT().UserRevokedAt(ctx, "u1").Return(issued, true, nil)

		_, err := service.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
	})

	t.Run("issued after user cut-off", func(t *testing.T) {
		service, m := newAuthServiceUnderTest(t)
		m.jwt.EXPECT().ValidateToken("tok").Return(testClaims("u1", issued), nil)
		m.revocations.EXPECT().IsTokenRevoked(ctx, "token-id").Return(false, nil)
		m.revocations.EXPECT().UserRevokedAt(ctx, "u1").Return(issued.Add(-time.Millisecond), true, nil)

		_, err := service.Authenticate(ctx, "tok")

		assert.NoError(t, err)
	})

	t.Run("revocation store failure", func(t *testing.T) {
		service, m := newAuthServiceUnderTest(t)
		m.jwt.EXPECT().ValidateToken("tok").Return(testClaims("u1", issued), nil)
		m.revocations.EXPECT().IsTokenRevoked(ctx, "token-id").Return(false, errors.New("redis down"))

		_, err := service.Authenticate(ctx, "tok")

		assert.EqualError(t, err, "redis down")
	})
}
