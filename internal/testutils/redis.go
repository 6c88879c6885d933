// Package testutils holds fixtures shared by the repository and service
// tests.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-lootsheet/internal/redis"
)

// CreateTestRedisClient starts a miniredis store for t. The returned
// cleanup closes the client; the server stops with the test.
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	client, _ := CreateTestRedisServer(t)
	return client, func() { _ = client.Close() }
}

// CreateTestRedisServer is CreateTestRedisClient for tests that inspect
// keys or fast-forward TTLs on the server directly.
func CreateTestRedisServer(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := redis.NewClient(redis.Config{Addr: mr.Addr()})
	require.NoError(t, err, "failed to create redis client")

	return client, mr
}
