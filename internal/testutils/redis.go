// Package testutils holds shared fixtures and the miniredis helper
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-combat-sim/internal/redis"
)

// CreateTestRedisClient starts a miniredis server for the test and
// returns a client pointed at it. The server is returned so tests can
// fast forward its clock to expire keys. Both close with the test.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}
