package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_Welcome(t *testing.T) {
	router := gin.New()
	router.GET("/", NewHealthHandler(nil).Welcome)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome to My Movie API!", w.Body.String())
}

func TestHealthHandler_Health(t *testing.T) {
	healthy := pingerFunc(func(context.Context) error { return nil })
	broken := pingerFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name           string
		deps           map[string]Pinger
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "no dependencies",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok","checks":{}}`,
		},
		{
			name:           "all reachable",
			deps:           map[string]Pinger{"mongodb": healthy, "redis": healthy},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok","checks":{"mongodb":"ok","redis":"ok"}}`,
		},
		{
			name:           "one unreachable",
			deps:           map[string]Pinger{"mongodb": healthy, "redis": broken},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"degraded","checks":{"mongodb":"ok","redis":"unreachable"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/health", NewHealthHandler(tt.deps).Health)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
