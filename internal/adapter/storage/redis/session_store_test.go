package redis

import (
	"context"
	"testing"
	"time"

	"smart-wallet-core/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(last byte) domain.Address {
	var a domain.Address
	a[len(a)-1] = last
	return a
}

func TestSessionStore_PutAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)
	ctx := context.Background()

	session := &domain.Session{
		Wallet:    testAddress(0x10),
		Key:       testAddress(0x20),
		ExpiresAt: time.Now().UTC().Add(time.Hour).Truncate(time.Second),
	}
	require.NoError(t, store.Put(ctx, session))

	got, err := store.Get(ctx, session.Wallet)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, session.Key, got.Key)
	assert.True(t, session.ExpiresAt.Equal(got.ExpiresAt))
}

func TestSessionStore_Get_None(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)

	got, err := store.Get(context.Background(), testAddress(0x10))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_Put_SingleUseRejected(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)

	err := store.Put(context.Background(), &domain.Session{
		Wallet: testAddress(0x10),
		Key:    testAddress(0x20),
	})
	assert.Error(t, err, "single-use sessions must never be persisted")
}

func TestSessionStore_Put_ExpiredRejected(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)

	err := store.Put(context.Background(), &domain.Session{
		Wallet:    testAddress(0x10),
		Key:       testAddress(0x20),
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	})
	assert.Error(t, err)
}

func TestSessionStore_ExpiresWithSession(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)
	ctx := context.Background()

	session := &domain.Session{
		Wallet:    testAddress(0x10),
		Key:       testAddress(0x20),
		ExpiresAt: time.Now().UTC().Add(time.Second),
	}
	require.NoError(t, store.Put(ctx, session))

	s.FastForward(2 * time.Second)

	got, err := store.Get(ctx, session.Wallet)
	require.NoError(t, err)
	assert.Nil(t, got, "the Redis TTL tracks the session expiry")
}

func TestSessionStore_Delete(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)
	ctx := context.Background()

	session := &domain.Session{
		Wallet:    testAddress(0x10),
		Key:       testAddress(0x20),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	require.NoError(t, store.Put(ctx, session))
	require.NoError(t, store.Delete(ctx, session.Wallet))

	got, err := store.Get(ctx, session.Wallet)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting a missing session is a no-op.
	assert.NoError(t, store.Delete(ctx, session.Wallet))
}
