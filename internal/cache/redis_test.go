package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := NewClient(ctx, "redis://"+mr.Addr()+"/0")
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		require.NoError(t, client.Set(ctx, "k", "v", 0).Err())
		got, err := mr.DB(0).Get("k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})

	t.Run("Error_InvalidURL", func(t *testing.T) {
		client, err := NewClient(ctx, "http://not-redis")
		assert.Nil(t, client)
		assert.ErrorContains(t, err, "failed to parse redis URL")
	})

	t.Run("Error_Unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		client, err := NewClient(ctx, "redis://"+addr)
		assert.Nil(t, client)
		assert.ErrorContains(t, err, "failed to connect to redis")
	})
}
