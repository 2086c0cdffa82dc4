// Package testutil holds helpers shared by the HTTP test suites.
package testutil

import (
	"context"
	"testing"
	"time"
)

// ContainerTimeout bounds a single round trip to a test container.
const ContainerTimeout = 10 * time.Second

// Context returns a context bound to t that also expires after ContainerTimeout.
func Context(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(t.Context(), ContainerTimeout)
	t.Cleanup(cancel)
	return ctx
}
