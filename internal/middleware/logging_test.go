package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-api/internal/metrics"
	"movie-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.FromZap(zap.New(core)), logs
}

func TestRequestLogger(t *testing.T) {
	t.Run("generates request id and logs completion", func(t *testing.T) {
		log, logs := observedLogger()
		router := gin.New()
		router.Use(RequestLogger(log))

		var seenID string
		router.GET("/movies/:id", func(c *gin.Context) {
			seenID, _ = logger.RequestIDFromContext(c.Request.Context())
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/movies/42", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, seenID)
		assert.Equal(t, seenID, w.Header().Get(RequestIDHeader))

		entries := logs.FilterMessage("request completed").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "/movies/:id", fields["route"])
		assert.Equal(t, int64(http.StatusOK), fields["status"])
		assert.Equal(t, seenID, fields[logger.RequestIDField])
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	})

	t.Run("keeps inbound request id", func(t *testing.T) {
		log, _ := observedLogger()
		router := gin.New()
		router.Use(RequestLogger(log))
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
	})

	t.Run("server errors log at error level", func(t *testing.T) {
		log, logs := observedLogger()
		router := gin.New()
		router.Use(RequestLogger(log))
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		entries := logs.FilterMessage("request completed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	})
}

func TestRecovery(t *testing.T) {
	log, logs := observedLogger()
	router := gin.New()
	router.Use(RequestLogger(log), Recovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"internal server error"}`, w.Body.String())

	entries := logs.FilterMessage("panic recovered").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0].ContextMap()["panic"])
}

func TestMetrics(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())
	router.GET("/genres/:name", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/genres/:name", "404")
	before := testutil.ToFloat64(counter)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/genres/Drama", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.APIActiveRequests))
}
