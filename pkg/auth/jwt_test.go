package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "507f1f77bcf86cd799439011"

func TestNewJWTManager(t *testing.T) {
	t.Run("creates manager with valid config", func(t *testing.T) {
		manager := NewJWTManager("testsecret", 24*time.Hour)

		assert.NotNil(t, manager)
		assert.Equal(t, 24*time.Hour, manager.Expiry())
	})
}

func TestJWTManager_GenerateToken(t *testing.T) {
	manager := NewJWTManager("testsecret123", 15*time.Minute)

	t.Run("generates valid token for user", func(t *testing.T) {
		token, claims, err := manager.GenerateToken(testUserID, "moviefan1")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		// Token should be a valid JWT format (3 parts separated by dots)
		assert.Regexp(t, `^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`, token)
		assert.Equal(t, testUserID, claims.UserID)
		assert.Equal(t, "moviefan1", claims.Username)
		assert.NotEmpty(t, claims.TokenID())
	})

	t.Run("every token gets a unique id", func(t *testing.T) {
		token1, claims1, err1 := manager.GenerateToken(testUserID, "moviefan1")
		token2, claims2, err2 := manager.GenerateToken(testUserID, "moviefan1")

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, claims1.TokenID(), claims2.TokenID())
		assert.NotEqual(t, token1, token2)
	})

	t.Run("token round trips claims", func(t *testing.T) {
		token, issued, _ := manager.GenerateToken(testUserID, "moviefan1")

		claims, err := manager.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, testUserID, claims.UserID)
		assert.Equal(t, "moviefan1", claims.Username)
		assert.Equal(t, issued.TokenID(), claims.TokenID())
		assert.Equal(t, testUserID, claims.Subject)
	})
}

func TestJWTManager_ValidateToken(t *testing.T) {
	manager := NewJWTManager("testsecret123", 15*time.Minute)

	t.Run("returns error for expired token", func(t *testing.T) {
		expired := NewJWTManager("testsecret123", time.Minute)
		expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, _, _ := expired.GenerateToken(testUserID, "moviefan1")

		claims, err := manager.ValidateToken(token)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("returns error for wrong secret", func(t *testing.T) {
		other := NewJWTManager("secret2", 15*time.Minute)
		token, _, _ := other.GenerateToken(testUserID, "moviefan1")

		claims, err := manager.ValidateToken(token)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("rejects tokens signed with another algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
			UserID: testUserID,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "jti",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := token.SignedString([]byte("testsecret123"))
		require.NoError(t, err)

		claims, err := manager.ValidateToken(signed)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("rejects tokens without user id", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "jti",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := token.SignedString([]byte("testsecret123"))
		require.NoError(t, err)

		claims, err := manager.ValidateToken(signed)

		assert.ErrorIs(t, err, ErrInvalidClaims)
		assert.Nil(t, claims)
	})

	t.Run("returns error for invalid token format", func(t *testing.T) {
		claims, err := manager.ValidateToken("not.a.valid.token")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("returns error for empty token", func(t *testing.T) {
		claims, err := manager.ValidateToken("")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("returns error for tampered token", func(t *testing.T) {
		token, _, _ := manager.GenerateToken(testUserID, "moviefan1")
		tamperedToken := token[:len(token)-5] + "XXXXX"

		claims, err := manager.ValidateToken(tamperedToken)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("expiry and issued at are set", func(t *testing.T) {
		before := time.Now()

		token, _, _ := manager.GenerateToken(testUserID, "moviefan1")
		claims, err := manager.ValidateToken(token)

		require.NoError(t, err)
		assert.WithinDuration(t, before.Add(15*time.Minute), claims.ExpiresAtTime(), 2*time.Second)
		assert.WithinDuration(t, before, claims.IssuedAtTime(), 2*time.Second)
	})
}

func TestClaims_ZeroTimes(t *testing.T) {
	c := &Claims{}

	assert.True(t, c.ExpiresAtTime().IsZero())
	assert.True(t, c.IssuedAtTime().IsZero())
}

func BenchmarkJWTManager_ValidateToken(b *testing.B) {
	manager := NewJWTManager("benchmarksecret", 15*time.Minute)
	token, _, _ := manager.GenerateToken(testUserID, "moviefan1")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = manager.ValidateToken(token)
	}
}
