package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func init() {
	// iat and exp carry milliseconds so revocation cut-offs are exact.
	jwt.TimePrecision = time.Millisecond
}

// ErrInvalidClaims is returned when a token parses but carries no subject.
var ErrInvalidClaims = errors.New("token claims are invalid")

// Claims represents the JWT claims (data stored in the token).
// RegisteredClaims.ID is the token id used for revocation.
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenID returns the jti claim.
func (c *Claims) TokenID() string {
	return c.ID
}

// ExpiresAtTime returns the expiry as a time.Time, zero if unset.
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// IssuedAtTime returns the issue time as a time.Time, zero if unset.
func (c *Claims) IssuedAtTime() time.Time {
	if c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.Time
}

// JWTManager handles JWT token operations.
type JWTManager struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewJWTManager creates a new JWT manager.
func NewJWTManager(secret string, expiry time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// GenerateToken creates a signed token for a user, returning the token and its claims.
func (j *JWTManager) GenerateToken(userID, username string) (string, *Claims, error) {
	now := j.now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(j.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (j *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return j.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	if claims.UserID == "" || claims.ID == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

// Expiry returns the configured token lifetime.
func (j *JWTManager) Expiry() time.Duration {
	return j.expiry
}
