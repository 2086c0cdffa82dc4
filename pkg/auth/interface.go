package auth

//go:generate mockgen -destination=mocks/mock_auth.go -package=mocks movie-api/pkg/auth TokenManager,PasswordHasher

// TokenManager defines the interface for JWT token operations.
type TokenManager interface {
	// GenerateToken creates a signed token for a user, returning the token and its claims.
	GenerateToken(userID, username string) (string, *Claims, error)
	// ValidateToken parses and validates a JWT token, returning the claims if valid.
	ValidateToken(tokenString string) (*Claims, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	// Hash returns a salted one-way digest of password.
	Hash(password string) (string, error)
	// Verify reports whether password matches digest.
	Verify(password, digest string) (bool, error)
}

// Ensure implementations satisfy their interfaces
var (
	_ TokenManager   = (*JWTManager)(nil)
	_ PasswordHasher = (*BcryptHasher)(nil)
)
