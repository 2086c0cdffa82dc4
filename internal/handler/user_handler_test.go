package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "movie-api/internal/errors"
	"movie-api/internal/models"
	"movie-api/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newUserRouter(m *mocks.MockUserService) *gin.Engine {
	h := NewUserHandler(m)
	router := gin.New()
	router.POST("/users", h.Register)
	router.GET("/users/:username", h.GetProfile)
	router.PUT("/users/:id", h.UpdateUser)
	router.DELETE("/users/:username", h.DeleteUser)
	router.POST("/users/:username/movies/:movieId", h.AddFavorite)
	router.DELETE("/users/:username/movies/:movieId", h.RemoveFavorite)
	return router
}

func TestNewUserHandler(t *testing.T) {
	mockService := &mocks.MockUserService{}
	handler := NewUserHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestUserHandler(t *testing.T) {
	userID := primitive.NewObjectID()
	movieID := primitive.NewObjectID()
	now := time.Now()

	tests := []struct {
		name           string
		method         string
		path           string
		body           interface{}
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "register",
			method: http.MethodPost,
			path:   "/users",
			body:   models.CreateUserRequest{Username: "moviefan1", Password: "secret123", Email: "fan@example.com"},
			mockSetup: func(m *mocks.MockUserService) {
				m.RegisterFunc = func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
					return &models.User{
						ID:             userID,
						Username:       req.Username,
						Email:          req.Email,
						Password:       "$2a$10$digest",
						FavoriteMovies: []primitive.ObjectID{},
						CreatedAt:      now,
						UpdatedAt:      now,
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				data := decodeBody(t, w)["data"].(map[string]interface{})
				assert.Equal(t, "moviefan1", data["username"])
				assert.NotContains(t, data, "password")
			},
		},
		{
			name:   "register duplicate username",
			method: http.MethodPost,
			path:   "/users",
			body:   models.CreateUserRequest{Username: "moviefan1", Password: "secret123", Email: "fan@example.com"},
			mockSetup: func(m *mocks.MockUserService) {
				m.RegisterFunc = func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
					return nil, apperrors.ErrUsernameTaken
				}
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "username is already taken", decodeBody(t, w)["error"])
			},
		},
		{
			name:   "register validation failure",
			method: http.MethodPost,
			path:   "/users",
			body:   models.CreateUserRequest{Username: "ab"},
			mockSetup: func(m *mocks.MockUserService) {
				m.RegisterFunc = func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
					return nil, &apperrors.ValidationError{Fields: []apperrors.FieldError{
						{Field: "username", Message: "must be at least 5 characters"},
						{Field: "password", Message: "is required"},
						{Field: "email", Message: "is required"},
					}}
				}
			},
			expectedStatus: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				errs := decodeBody(t, w)["errors"].([]interface{})
				require.Len(t, errs, 3)
				first := errs[0].(map[string]interface{})
				assert.Equal(t, "username", first["field"])
				assert.Equal(t, "must be at least 5 characters", first["message"])
			},
		},
		{
			name:           "register malformed body",
			method:         http.MethodPost,
			path:           "/users",
			body:           "not json",
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "profile",
			method: http.MethodGet,
			path:   "/users/moviefan1",
			mockSetup: func(m *mocks.MockUserService) {
				m.GetProfileFunc = func(ctx context.Context, username string) (*models.UserProfile, error) {
					return &models.UserProfile{
						ID:             userID,
						Username:       username,
						FavoriteMovies: []models.Movie{{ID: movieID, Title: "Heat"}},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				data := decodeBody(t, w)["data"].(map[string]interface{})
				favorites := data["favoriteMovies"].([]interface{})
				require.Len(t, favorites, 1)
				assert.Equal(t, "Heat", favorites[0].(map[string]interface{})["title"])
			},
		},
		{
			name:   "update passes id and patch through",
			method: http.MethodPut,
			path:   "/users/" + userID.Hex(),
			body:   map[string]string{"email": "new@example.com"},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateUserFunc = func(ctx context.Context, idOrUsername string, req *models.UpdateUserRequest) (*models.User, error) {
					assert.Equal(t, userID.Hex(), idOrUsername)
					require.NotNil(t, req.Email)
					assert.Nil(t, req.Username)
					assert.Nil(t, req.Password)
					assert.Nil(t, req.Birthday)
					return &models.User{ID: userID, Username: "moviefan1", Email: *req.Email}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				data := decodeBody(t, w)["data"].(map[string]interface{})
				assert.Equal(t, "new@example.com", data["email"])
				assert.Equal(t, "moviefan1", data["username"])
			},
		},
		{
			name:   "update unknown user",
			method: http.MethodPut,
			path:   "/users/ghost",
			body:   map[string]string{"email": "new@example.com"},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateUserFunc = func(ctx context.Context, idOrUsername string, req *models.UpdateUserRequest) (*models.User, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "update email taken",
			method: http.MethodPut,
			path:   "/users/moviefan1",
			body:   map[string]string{"email": "taken@example.com"},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateUserFunc = func(ctx context.Context, idOrUsername string, req *models.UpdateUserRequest) (*models.User, error) {
					return nil, apperrors.ErrEmailTaken
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "add favorite",
			method: http.MethodPost,
			path:   "/users/moviefan1/movies/" + movieID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.AddFavoriteFunc = func(ctx context.Context, username, id string) (*models.User, error) {
					assert.Equal(t, "moviefan1", username)
					assert.Equal(t, movieID.Hex(), id)
					return &models.User{Username: username, FavoriteMovies: []primitive.ObjectID{movieID}}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				data := decodeBody(t, w)["data"].(map[string]interface{})
				assert.Equal(t, []interface{}{movieID.Hex()}, data["favoriteMovies"])
			},
		},
		{
			name:   "add favorite unknown movie",
			method: http.MethodPost,
			path:   "/users/moviefan1/movies/" + movieID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.AddFavoriteFunc = func(ctx context.Context, username, id string) (*models.User, error) {
					return nil, apperrors.ErrMovieNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "add favorite malformed id",
			method: http.MethodPost,
			path:   "/users/moviefan1/movies/nope",
			mockSetup: func(m *mocks.MockUserService) {
				m.AddFavoriteFunc = func(ctx context.Context, username, id string) (*models.User, error) {
					return nil, apperrors.ErrInvalidID
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "remove favorite",
			method: http.MethodDelete,
			path:   "/users/moviefan1/movies/" + movieID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.RemoveFavoriteFunc = func(ctx context.Context, username, id string) (*models.User, error) {
					return &models.User{Username: username, FavoriteMovies: []primitive.ObjectID{}}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete user",
			method: http.MethodDelete,
			path:   "/users/moviefan1",
			mockSetup: func(m *mocks.MockUserService) {
				m.DeleteUserFunc = func(ctx context.Context, username string) error { return nil }
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				data := decodeBody(t, w)["data"].(map[string]interface{})
				assert.Equal(t, "moviefan1 was deleted", data["message"])
			},
		},
		{
			name:   "delete unknown user",
			method: http.MethodDelete,
			path:   "/users/ghost",
			mockSetup: func(m *mocks.MockUserService) {
				m.DeleteUserFunc = func(ctx context.Context, username string) error { return apperrors.ErrUserNotFound }
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "delete store failure hides detail",
			method: http.MethodDelete,
			path:   "/users/moviefan1",
			mockSetup: func(m *mocks.MockUserService) {
				m.DeleteUserFunc = func(ctx context.Context, username string) error {
					return errors.New("connection reset by peer")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.NotContains(t, w.Body.String(), "connection reset")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)
			router := newUserRouter(mockService)

			var req *http.Request
			if tt.body != nil {
				req = httptest.NewRequest(tt.method, tt.path, jsonBody(t, tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}
