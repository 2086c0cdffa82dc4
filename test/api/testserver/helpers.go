//go:build api

package testserver

import (
	"context"
	"net/http"
	"testing"

	"movie-api/internal/models"
	"movie-api/test/fixtures"
	"movie-api/test/testutil"

	"github.com/stretchr/testify/require"
)

// DefaultPassword is used for every user created through the helpers.
const DefaultPassword = "password123"

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user through the API and returns the user data.
func (ah *AuthHelper) RegisterUser(t *testing.T, username, email, password string) map[string]interface{} {
	t.Helper()

	req := models.CreateUserRequest{
		Username: username,
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/users", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "register response should be successful")
	return resp.Data
}

// Login logs in a user and returns the login payload.
func (ah *AuthHelper) Login(t *testing.T, username, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{
		Username: username,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "login response should be successful")
	return resp.Data
}

// GetToken logs in and returns just the bearer token.
func (ah *AuthHelper) GetToken(t *testing.T, username, password string) string {
	t.Helper()

	token, ok := ah.Login(t, username, password)["token"].(string)
	require.True(t, ok, "token should be a string")
	return token
}

// CreateAuthenticatedUser registers a user and returns the user data and a token.
func (ah *AuthHelper) CreateAuthenticatedUser(t *testing.T, username string) (userData map[string]interface{}, token string) {
	t.Helper()

	userData = ah.RegisterUser(t, username, username+"@example.com", DefaultPassword)
	token = ah.GetToken(t, username, DefaultPassword)
	return userData, token
}

// CreateAdmin registers the configured admin user and returns its token.
func (ah *AuthHelper) CreateAdmin(t *testing.T) string {
	t.Helper()

	_, token := ah.CreateAuthenticatedUser(t, AdminUsername)
	return token
}

// SeedUser inserts a user directly into the database with a real password digest.
func (ah *AuthHelper) SeedUser(t *testing.T, builder *fixtures.UserBuilder, password string) *models.User {
	t.Helper()

	digest, err := ah.server.Hasher.Hash(password)
	require.NoError(t, err, "failed to hash password")

	user := builder.WithPassword(digest).BuildPtr()
	require.NoError(t, ah.server.UserRepo.Create(context.Background(), user), "failed to seed user")
	return user
}

// MovieHelper provides catalog helpers for API tests.
type MovieHelper struct {
	server *TestServer
}

// NewMovieHelper creates a new movie helper.
func NewMovieHelper(server *TestServer) *MovieHelper {
	return &MovieHelper{server: server}
}

// SeedMovie inserts a movie directly into the database (bypasses API).
func (mh *MovieHelper) SeedMovie(t *testing.T, builder *fixtures.MovieBuilder) *models.Movie {
	t.Helper()

	movie := builder.BuildPtr()
	require.NoError(t, mh.server.MovieRepo.Create(context.Background(), movie), "failed to seed movie")
	return movie
}

// CreateMovie creates a movie through the API with an admin token.
func (mh *MovieHelper) CreateMovie(t *testing.T, adminToken string, builder *fixtures.MovieBuilder) map[string]interface{} {
	t.Helper()

	w := testutil.MakeAuthRequest(t, mh.server.Router, http.MethodPost, "/movies", adminToken, builder.CreateRequest())
	require.Equal(t, http.StatusCreated, w.Code, "create movie should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "create movie response should be successful")
	return resp.Data
}

// GetIDFromResponse extracts the id from response data, looking inside a nested user or movie.
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	if id, ok := data["id"].(string); ok {
		return id
	}
	for _, key := range []string{"user", "movie"} {
		if nested, ok := data[key].(map[string]interface{}); ok {
			if id, ok := nested["id"].(string); ok {
				return id
			}
		}
	}

	t.Fatalf("no id in response data: %v", data)
	return ""
}
