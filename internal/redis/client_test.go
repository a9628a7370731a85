package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dexseed/internal/redis"
)

func TestNewClient(t *testing.T) {
	t.Run("empty endpoint", func(t *testing.T) {
		client, err := redis.NewClient("", nil)
		require.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("ping on create", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := redis.NewClient(mr.Addr(), &redis.Options{PingOnCreate: true})
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Close() })

		require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
		got, err := mr.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})

	t.Run("ping fails against closed server", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		client, err := redis.NewClient(addr, &redis.Options{PingOnCreate: true})
		require.Error(t, err)
		assert.Nil(t, client)
	})
}
