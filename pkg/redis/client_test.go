package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := NewClient("redis://"+mr.Addr(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestNewClient_InvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "Empty URL", url: ""},
		{name: "Wrong scheme", url: "invalid://url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.url, zap.NewNop())
			assert.Error(t, err)
			assert.Nil(t, client)
		})
	}
}

func TestClient_SetAndGet(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, KeyMenuAll, "cached-menu", TTLMenu))

	value, err := client.Get(ctx, KeyMenuAll)
	require.NoError(t, err)
	assert.Equal(t, "cached-menu", value)
}

func TestClient_GetMissingKey(t *testing.T) {
	_, client := setupTestRedis(t)

	_, err := client.Get(context.Background(), "absent")
	assert.Error(t, err)
}

func TestClient_Delete(t *testing.T) {
	mr, client := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(KeyAdminStats, "{}"))
	require.NoError(t, mr.Set(KeyOrderStats, "[]"))

	require.NoError(t, client.Delete(ctx, KeyAdminStats, KeyOrderStats))

	assert.False(t, mr.Exists(KeyAdminStats))
	assert.False(t, mr.Exists(KeyOrderStats))
}

func TestClient_Exists(t *testing.T) {
	mr, client := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(KeyMenuAll, "cached"))

	count, err := client.Exists(ctx, KeyMenuAll, "absent")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestClient_SetHonorsTTL(t *testing.T) {
	mr, client := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, KeyAdminStats, "{}", TTLAdminStats))

	mr.FastForward(TTLAdminStats + time.Second)

	_, err := client.Get(ctx, KeyAdminStats)
	assert.Error(t, err)
}

func TestClient_Health(t *testing.T) {
	mr, client := setupTestRedis(t)

	assert.NoError(t, client.Health(context.Background()))

	mr.Close()
	assert.Error(t, client.Health(context.Background()))
}
