package http_test

import (
	"context"
	"sync"
	"time"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(u *user.User) (ports.Token, error) {
	args := m.Called(u)
	return args.Get(0).(ports.Token), args.Error(1)
}

func (m *MockTokenIssuer) Parse(raw string) (ports.TokenClaims, error) {
	args := m.Called(raw)
	return args.Get(0).(ports.TokenClaims), args.Error(1)
}

type MockRevocationStore struct {
	mock.Mock
}

func (m *MockRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

type MockUserLookup struct {
	mock.Mock
}

func (m *MockUserLookup) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

// memoryRevocationStore keeps revoked ids in memory for end-to-end suites.
type memoryRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func newMemoryRevocationStore() *memoryRevocationStore {
	return &memoryRevocationStore{revoked: make(map[string]time.Time)}
}

func (s *memoryRevocationStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ttl > 0 {
		s.revoked[tokenID] = time.Now().Add(ttl)
	}
	return nil
}

func (s *memoryRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.revoked[tokenID]
	return ok && time.Now().Before(until), nil
}
