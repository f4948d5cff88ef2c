package auth

import (
	"context"
	"sync"

	"go-payroll/internal/credential"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (User, bool)
	Add(ctx context.Context, user User)
}

type memoryUserStore struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryUserStore() UserStore {
	return &memoryUserStore{users: make(map[string]User)}
}

func (s *memoryUserStore) FindByUsername(_ context.Context, username string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	return u, ok
}

func (s *memoryUserStore) Add(_ context.Context, user User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.Username()] = user
}

const (
	DemoEmployeeUsername = "emp1"
	DemoEmployeePassword = "Emp@1234"
	DemoManagerUsername  = "manager1"
	DemoManagerPassword  = "Mng@1234"
)

// SeedDemoUsers adds the two demo accounts.
func SeedDemoUsers(ctx context.Context, store UserStore, h credential.Hasher) {
	store.Add(ctx, NewRegularEmployee(DemoEmployeeUsername, h.Digest(DemoEmployeePassword)))
	store.Add(ctx, NewManager(DemoManagerUsername, h.Digest(DemoManagerPassword)))
}
