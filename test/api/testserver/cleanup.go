//go:build api

package testserver

import (
	"testing"

	"movie-api/test/testutil"

	"github.com/stretchr/testify/require"
)

// CleanupBetweenTests empties the catalog, the revocation store and the image
// bucket. Every test function calls it first.
func (ts *TestServer) CleanupBetweenTests(t *testing.T) {
	t.Helper()
	ctx := testutil.Context(t)

	require.NoError(t, ts.MongoDB.ClearCollections(ctx), "clear movies and users")
	require.NoError(t, ts.Redis.ClearRevocations(ctx), "clear revocations")
	require.NoError(t, ts.MinIO.ClearBucket(ctx), "clear image bucket")
}
