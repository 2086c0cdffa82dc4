package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "movie-api/internal/errors"
	"movie-api/internal/middleware"
	"movie-api/internal/models"
	"movie-api/internal/service/mocks"
	"movie-api/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// decodeBody unmarshals the response envelope into a generic map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	if s, ok := v.(string); ok {
		return bytes.NewBufferString(s)
	}
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestNewAuthHandler(t *testing.T) {
	mockService := &mocks.MockAuthService{}
	handler := NewAuthHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestAuthHandler_Login(t *testing.T) {
	userID := primitive.NewObjectID()
	expiresAt := time.Date(2024, 1, 16, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockAuthService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful login",
			body: models.LoginRequest{Username: "moviefan1", Password: "secret123"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
					return &models.LoginResponse{
						Token:     "signed-token",
						ExpiresAt: expiresAt,
						User:      models.User{ID: userID, Username: req.Username, Password: "digest"},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeBody(t, w)
				assert.Equal(t, true, resp["success"])
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "signed-token", data["token"])
				user := data["user"].(map[string]interface{})
				assert.Equal(t, "moviefan1", user["username"])
				assert.NotContains(t, user, "password")
			},
		},
		{
			name:           "invalid JSON body",
			body:           "invalid json",
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing fields",
			body: map[string]string{"username": "moviefan1"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
					return nil, apperrors.NewValidationError("password", "is required")
				}
			},
			expectedStatus: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeBody(t, w)
				errs := resp["errors"].([]interface{})
				require.Len(t, errs, 1)
				assert.Equal(t, "password", errs[0].(map[string]interface{})["field"])
			},
		},
		{
			name: "invalid credentials",
			body: models.LoginRequest{Username: "moviefan1", Password: "wrongpassword"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
					return nil, apperrors.ErrInvalidCredentials
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "internal server error",
			body: models.LoginRequest{Username: "moviefan1", Password: "secret123"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeBody(t, w)
				assert.Equal(t, "internal server error", resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{}
			tt.mockSetup(mockService)

			handler := NewAuthHandler(mockService)
			router := gin.New()
			router.POST("/login", handler.Login)

			req := httptest.NewRequest(http.MethodPost, "/login", jsonBody(t, tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	claims := &auth.Claims{UserID: "u1", Username: "moviefan1"}

	t.Run("revokes presented token", func(t *testing.T) {
		var revoked *auth.Claims
		mockService := &mocks.MockAuthService{
			LogoutFunc: func(ctx context.Context, c *auth.Claims) error {
				revoked = c
				return nil
			},
		}
		router := gin.New()
		router.POST("/logout", func(c *gin.Context) {
			c.Set(middleware.ClaimsKey, claims)
		}, NewAuthHandler(mockService).Logout)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Same(t, claims, revoked)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		router := gin.New()
		router.POST("/logout", NewAuthHandler(&mocks.MockAuthService{}).Logout)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revocation store failure", func(t *testing.T) {
		mockService := &mocks.MockAuthService{
			LogoutFunc: func(ctx context.Context, c *auth.Claims) error {
				return errors.New("redis down")
			},
		}
		router := gin.New()
		router.POST("/logout", func(c *gin.Context) {
			c.Set(middleware.ClaimsKey, claims)
		}, NewAuthHandler(mockService).Logout)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
