package middleware

import (
	"fmt"
	"time"

	"movie-api/internal/metrics"
	"movie-api/pkg/logger"
	"movie-api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

// RequestLogger attaches a request id and logger to the request context and logs each completed request.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx := logger.NewRequestIDContext(c.Request.Context(), c.GetHeader(RequestIDHeader))
		ctx = logger.NewContext(ctx, log)
		c.Request = c.Request.WithContext(ctx)

		requestID, _ := logger.RequestIDFromContext(ctx)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error(ctx, "request completed", fields...)
		case status >= 400:
			log.Warn(ctx, "request completed", fields...)
		default:
			log.Info(ctx, "request completed", fields...)
		}
	}
}

// Recovery converts panics into a 500 response and logs them with the request id.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				ctx := c.Request.Context()
				logger.Log(ctx).Error(ctx, "panic recovered",
					zap.String("panic", fmt.Sprint(recovered)),
					zap.Stack("stack"))
				response.InternalError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}

// Metrics records request counts, latency and in-flight requests.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		c.Next()

		metrics.RecordAPIRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
