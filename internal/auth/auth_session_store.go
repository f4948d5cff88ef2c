package auth

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	autherrors "go-payroll/internal/auth/errors"

	"github.com/redis/go-redis/v9"
)

const SessionKeyPrefix = "payroll:session:"

func SessionKey(id string) string {
	return SessionKeyPrefix + id
}

// SessionStore keeps issued sessions. Stores never evict on their own;
// expiry is checked lazily by the service.
//
//go:generate mockgen -source=auth_session_store.go -destination=mock/auth_session_store_mock.go -package=mock
type SessionStore interface {
	Save(ctx context.Context, session Session) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]Session)}
}

func (s *memorySessionStore) Save(_ context.Context, session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return Session{}, autherrors.ErrSessionNotFound
	}
	return session, nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

type redisSessionStore struct {
	rdb *redis.Client
}

// NewRedisSessionStore stores sessions as JSON without a Redis TTL.
func NewRedisSessionStore(rdb *redis.Client) SessionStore {
	return &redisSessionStore{rdb: rdb}
}

func (s *redisSessionStore) Save(ctx context.Context, session Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	if err := s.rdb.Set(ctx, SessionKey(session.ID), payload, 0).Err(); err != nil {
		return autherrors.ErrSessionStore.WithCause(err)
	}
	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, id string) (Session, error) {
	raw, err := s.rdb.Get(ctx, SessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, autherrors.ErrSessionNotFound
	}
	if err != nil {
		return Session{}, autherrors.ErrSessionStore.WithCause(err)
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return Session{}, autherrors.ErrSessionStore.WithCause(err)
	}
	return session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, SessionKey(id)).Err(); err != nil {
		return autherrors.ErrSessionStore.WithCause(err)
	}
	return nil
}
