package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) *Client {
	mr := miniredis.RunT(t)
	client, err := NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestSetGet(t *testing.T) {
	client := setupTestCache(t)
	ctx := context.Background()

	err := client.Set(ctx, "greeting", "hello", time.Minute)
	require.NoError(t, err)

	val, err := client.Get(ctx, "greeting")
	assert.NoError(t, err)
	assert.Equal(t, "hello", val)
}

func TestGetMissingKey(t *testing.T) {
	client := setupTestCache(t)

	_, err := client.Get(context.Background(), "nope")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	client := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "a", "1", time.Minute))
	require.NoError(t, client.Delete(ctx, "a"))

	exists, err := client.Exists(ctx, "a")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestDeletePattern(t *testing.T) {
	client := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "dashboard:stats:u1", "x", time.Minute))
	require.NoError(t, client.Set(ctx, "dashboard:stats:u2", "y", time.Minute))
	require.NoError(t, client.Set(ctx, "other:key", "z", time.Minute))

	require.NoError(t, client.DeletePattern(ctx, "dashboard:stats:*"))

	exists, err := client.Exists(ctx, "dashboard:stats:u1")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = client.Exists(ctx, "other:key")
	require.NoError(t, err)
	assert.True(t, exists)
}
