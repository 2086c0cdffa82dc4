package handler

import (
	"context"
	"net/http"
	"time"

	"movie-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WelcomeMessage is served at the root path.
const WelcomeMessage = "Welcome to My Movie API!"

const healthCheckTimeout = 2 * time.Second

// Pinger is a dependency that can report its reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the root and health endpoints.
type HealthHandler struct {
	deps map[string]Pinger
}

// NewHealthHandler creates a new HealthHandler. deps are keyed by name, e.g. "mongodb".
func NewHealthHandler(deps map[string]Pinger) *HealthHandler {
	return &HealthHandler{deps: deps}
}

// Welcome godoc
// @Summary      Welcome text
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string  "Welcome to My Movie API!"
// @Router       / [get]
func (h *HealthHandler) Welcome(c *gin.Context) {
	c.String(http.StatusOK, WelcomeMessage)
}

// Health godoc
// @Summary      Health check
// @Description  Report process liveness and dependency reachability
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	checks := make(map[string]string, len(h.deps))

	for name, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			logger.Log(ctx).Warn(ctx, "health check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = "unreachable"
			status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	c.JSON(code, gin.H{"status": status, "checks": checks})
}
