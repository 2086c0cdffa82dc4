package logger

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type loggerKeyType struct{}

type requestIDKeyType struct{}

var (
	loggerKey    = loggerKeyType{}
	requestIDKey = requestIDKeyType{}
)

var (
	defaultMu sync.RWMutex
	defaultL  = &Logger{l: zap.NewNop()}
)

// SetDefault installs the process logger returned by Log when the context carries none.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultL = l
}

// Default returns the process logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultL
}

// NewContext stores a logger in the context.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Log returns the logger stored in ctx, or the process logger.
func Log(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*Logger); ok {
			return l
		}
	}
	return Default()
}

// NewRequestIDContext stores a request id in the context, generating one when empty.
func NewRequestIDContext(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = GenerateRequestID()
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request id stored in ctx.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// GenerateRequestID returns a new random request id.
func GenerateRequestID() string {
	return uuid.New().String()
}
