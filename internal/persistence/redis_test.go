package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain/entity"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return srv, client
}

func TestRedisStorage_ReadMissing(t *testing.T) {
	_, client := newTestRedis(t)

	data, err := NewRedisStorage(client, "alarmbot:snapshot").Read(context.Background())
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestRedisStorage_WriteRead(t *testing.T) {
	srv, client := newTestRedis(t)
	storage := NewRedisStorage(client, "alarmbot:snapshot")
	ctx := context.Background()

	require.NoError(t, storage.Write(ctx, []byte(`{"version":"1.0"}`)))
	require.NoError(t, storage.Write(ctx, []byte(`{"version":"1.0","schedule_dm":{}}`)))

	data, err := storage.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.0","schedule_dm":{}}`, string(data))

	stored, err := srv.Get("alarmbot:snapshot")
	require.NoError(t, err)
	assert.Equal(t, string(data), stored)
	assert.Zero(t, srv.TTL("alarmbot:snapshot"))
}

func TestRedisStorage_ServerDown(t *testing.T) {
	srv, client := newTestRedis(t)
	storage := NewRedisStorage(client, "alarmbot:snapshot")
	srv.Close()

	_, err := storage.Read(context.Background())
	require.Error(t, err)
	require.Error(t, storage.Write(context.Background(), []byte("{}")))
}

func TestRedisStorage_SnapshotRoundTrip(t *testing.T) {
	_, client := newTestRedis(t)
	snapshots := NewSnapshotter(NewRedisStorage(client, "alarmbot:snapshot"), zap.NewNop())
	ctx := context.Background()

	empty, err := snapshots.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.NewSnapshot(), empty)

	snap := sampleSnapshot(t)
	require.NoError(t, snapshots.Save(ctx, snap))

	got, err := snapshots.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestOpenRedis(t *testing.T) {
	srv, _ := newTestRedis(t)
	ctx := context.Background()

	client, err := OpenRedis(ctx, "redis://"+srv.Addr())
	require.NoError(t, err)
	require.NoError(t, client.Close())

	_, err = OpenRedis(ctx, "not a url")
	require.Error(t, err)
}
