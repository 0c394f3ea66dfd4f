package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"smart-wallet-core/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// SessionStore implements ports.SessionStore. Entries carry a Redis TTL
// matching the session expiry, so stale sessions disappear on their own.
type SessionStore struct {
	client *goredis.Client
	prefix string
}

// NewSessionStore creates a new Redis-backed session store.
func NewSessionStore(client *goredis.Client) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "session:",
	}
}

// Put stores the wallet's session. Single-use sessions are never persisted;
// the relay consumes them inline.
func (s *SessionStore) Put(ctx context.Context, session *domain.Session) error {
	if session.SingleUse() {
		return fmt.Errorf("single-use sessions are not persisted")
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+session.Wallet.Hex(), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

// Get fetches the wallet's session, or nil when none is stored.
func (s *SessionStore) Get(ctx context.Context, wallet domain.Address) (*domain.Session, error) {
	data, err := s.client.Get(ctx, s.prefix+wallet.Hex()).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes the wallet's session.
func (s *SessionStore) Delete(ctx context.Context, wallet domain.Address) error {
	if err := s.client.Del(ctx, s.prefix+wallet.Hex()).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}
