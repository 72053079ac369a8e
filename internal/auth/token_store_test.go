package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rms/internal/cache"
)

func newRedisTokenStore(t *testing.T) (*TokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })
	return NewTokenStore(client), mr
}

func TestTokenStore_RevokeUntilExpiry(t *testing.T) {
	store, mr := newRedisTokenStore(t)
	ctx := context.Background()

	revoked, err := store.IsAccessTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.RevokeAccessToken(ctx, "jti-1", time.Hour))

	revoked, err = store.IsAccessTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.True(t, mr.Exists(revokedTokenKeyPrefix+"jti-1"))
	assert.InDelta(t, time.Hour.Seconds(), mr.TTL(revokedTokenKeyPrefix+"jti-1").Seconds(), 1)

	revoked, err = store.IsAccessTokenRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)

	// The entry lives only as long as the token could have been used.
	mr.FastForward(time.Hour + time.Second)
	revoked, err = store.IsAccessTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenStore_SkipsExpiredAndAnonymousTokens(t *testing.T) {
	store, mr := newRedisTokenStore(t)
	ctx := context.Background()

	require.NoError(t, store.RevokeAccessToken(ctx, "", time.Hour))
	require.NoError(t, store.RevokeAccessToken(ctx, "jti", 0))
	assert.Empty(t, mr.Keys())
}

func TestTokenStore_RevokeFailsWhenRedisIsDown(t *testing.T) {
	store, mr := newRedisTokenStore(t)
	ctx := context.Background()
	mr.Close()

	assert.Error(t, store.RevokeAccessToken(ctx, "jti", time.Hour))

	revoked, err := store.IsAccessTokenRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenStore_NilCacheFailsSafe(t *testing.T) {
	store := NewTokenStore(nil)
	ctx := context.Background()

	require.NoError(t, store.RevokeAccessToken(ctx, "jti", time.Minute))
	revoked, err := store.IsAccessTokenRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}
