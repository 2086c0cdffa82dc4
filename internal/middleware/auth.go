// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"context"
	"errors"
	"strings"

	apperrors "movie-api/internal/errors"
	"movie-api/pkg/auth"
	"movie-api/pkg/logger"
	"movie-api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys for storing user data
const (
	UserIDKey   = "userID"
	UsernameKey = "username"
	ClaimsKey   = "claims"
)

// Authenticator validates bearer tokens.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
}

// Auth returns a middleware that validates JWT tokens and rejects revoked ones.
func Auth(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		claims, err := authenticator.Authenticate(ctx, parts[1])
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrTokenRevoked):
				response.Unauthorized(c, "token has been revoked")
			case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, apperrors.ErrInvalidToken):
				response.Unauthorized(c, "invalid or expired token")
			default:
				logger.Log(ctx).Error(ctx, "token check failed", zap.Error(err))
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		// Store identity in context for handlers to use
		c.Set(UserIDKey, claims.UserID)
		c.Set(UsernameKey, claims.Username)
		c.Set(ClaimsKey, claims)

		c.Next()
	}
}

// GetUserID retrieves the user ID from the context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// GetUsername retrieves the username from the context.
func GetUsername(c *gin.Context) string {
	return c.GetString(UsernameKey)
}

// GetClaims retrieves the validated token claims, nil if the request is unauthenticated.
func GetClaims(c *gin.Context) *auth.Claims {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	claims, _ := value.(*auth.Claims)
	return claims
}
