//go:build api

package testserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// CleanupBetweenTests resets all three stores: every Mongo document, every
// cached user and summary in Redis, and every exported report file in the
// bucket. Call it at the top of each test function for isolation.
func (ts *TestServer) CleanupBetweenTests(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, ts.MongoDB.CleanupCollections(ctx), "failed to clear mongo collections")
	require.NoError(t, ts.Redis.FlushDB(ctx), "failed to flush redis")
	require.NoError(t, ts.MinIO.ClearBucket(ctx), "failed to clear report bucket")
}

// CleanupMongoDB clears only the Mongo collections, leaving the cache and
// bucket alone.
func (ts *TestServer) CleanupMongoDB(t *testing.T) {
	t.Helper()
	require.NoError(t, ts.MongoDB.CleanupCollections(context.Background()), "failed to clear mongo collections")
}

// CleanupRedis clears only the cache.
func (ts *TestServer) CleanupRedis(t *testing.T) {
	t.Helper()
	require.NoError(t, ts.Redis.FlushDB(context.Background()), "failed to flush redis")
}
