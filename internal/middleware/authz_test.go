package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-api/internal/authz"
	authzmocks "movie-api/internal/authz/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func authzRouter(authorizer authz.Authorizer, userID, username, action, param, route string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set(UserIDKey, userID)
			c.Set(UsernameKey, username)
		}
		c.Next()
	})
	router.DELETE(route, Authorize(authorizer, action, param), func(c *gin.Context) {
		c.String(http.StatusOK, GetRole(c))
	})
	return router
}

func TestAuthorize_WithLocalAuthorizer(t *testing.T) {
	authorizer := authz.NewLocalAuthorizer([]string{"admin"})

	tests := []struct {
		name           string
		userID         string
		username       string
		action         string
		param          string
		route          string
		path           string
		expectedStatus int
		expectedRole   string
	}{
		{
			name:     "self may delete own account",
			userID:   "507f1f77bcf86cd799439011",
			username: "moviefan1",
			action:   authz.ActionUserDelete, param: "username",
			route: "/users/:username", path: "/users/moviefan1",
			expectedStatus: http.StatusOK,
			expectedRole:   authz.RoleSelf,
		},
		{
			name:     "other user is forbidden",
			userID:   "507f1f77bcf86cd799439011",
			username: "moviefan1",
			action:   authz.ActionUserDelete, param: "username",
			route: "/users/:username", path: "/users/someoneelse",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:     "admin may delete anyone",
			userID:   "507f1f77bcf86cd799439012",
			username: "admin",
			action:   authz.ActionUserDelete, param: "username",
			route: "/users/:username", path: "/users/someoneelse",
			expectedStatus: http.StatusOK,
			expectedRole:   authz.RoleAdmin,
		},
		{
			name:     "non-admin cannot delete movies",
			userID:   "507f1f77bcf86cd799439011",
			username: "moviefan1",
			action:   authz.ActionMovieDelete,
			route:    "/movies/:id", path: "/movies/abc",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:     "admin deletes movies",
			userID:   "507f1f77bcf86cd799439012",
			username: "admin",
			action:   authz.ActionMovieDelete,
			route:    "/movies/:id", path: "/movies/abc",
			expectedStatus: http.StatusOK,
			expectedRole:   authz.RoleAdmin,
		},
		{
			name:   "unauthenticated request",
			action: authz.ActionUserDelete, param: "username",
			route: "/users/:username", path: "/users/moviefan1",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := authzRouter(authorizer, tt.userID, tt.username, tt.action, tt.param, tt.route)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedRole, w.Body.String())
			}
		})
	}
}

func TestAuthorize_AuthorizerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuthorizer := authzmocks.NewMockAuthorizer(ctrl)
	mockAuthorizer.EXPECT().
		CanPerform(gomock.Any(), authz.Subject{UserID: "u1", Username: "moviefan1"}, "moviefan1", authz.ActionUserView).
		DoAndReturn(func(context.Context, authz.Subject, string, string) (bool, error) {
			return false, errors.New("lookup failed")
		})

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(UserIDKey, "u1")
		c.Set(UsernameKey, "moviefan1")
	})
	router.GET("/users/:username", Authorize(mockAuthorizer, authz.ActionUserView, "username"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/moviefan1", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
