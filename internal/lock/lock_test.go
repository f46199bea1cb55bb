package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLocker(t *testing.T) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client, err := NewRedisClient("redis://" + srv.Addr() + "/0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLocker(client), srv
}

func TestRedisLockerExclusive(t *testing.T) {
	l, srv := newRedisLocker(t)
	ctx := context.Background()

	release, ok, err := l.TryLock(ctx, "varredura", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, srv.Exists("varredura"))

	_, ok, err = l.TryLock(ctx, "varredura", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, release())
	assert.False(t, srv.Exists("varredura"))

	release2, ok, err := l.TryLock(ctx, "varredura", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, release2())
}

func TestRedisLockerReleaseKeepsForeignLock(t *testing.T) {
	l, srv := newRedisLocker(t)
	ctx := context.Background()

	release, ok, err := l.TryLock(ctx, "varredura", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	// expirou e outro processo pegou a chave
	srv.FastForward(2 * time.Second)
	require.NoError(t, srv.Set("varredura", "outro-token"))

	require.NoError(t, release())
	v, err := srv.Get("varredura")
	require.NoError(t, err)
	assert.Equal(t, "outro-token", v)
}

func TestRedisLockerUnavailable(t *testing.T) {
	l, srv := newRedisLocker(t)
	srv.Close()

	_, ok, err := l.TryLock(context.Background(), "varredura", time.Minute)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisLockerReleaseReportsFailure(t *testing.T) {
	l, srv := newRedisLocker(t)

	release, ok, err := l.TryLock(context.Background(), "varredura", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	srv.Close()

	err = release()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "varredura")
}

func TestNoop(t *testing.T) {
	release, ok, err := Noop{}.TryLock(context.Background(), "x", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, release())
}

func TestNewRedisClientInvalidURL(t *testing.T) {
	_, err := NewRedisClient("http://nao-e-redis")
	assert.Error(t, err)
}
