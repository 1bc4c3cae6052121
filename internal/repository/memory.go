package repository

import (
	"context"
	"sync"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
)

// MemoryStore keeps the ledger in process memory only. Everything is lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	state *domain.State
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the last saved state, or nil
func (s *MemoryStore) Load(ctx context.Context) (*domain.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return nil, nil
	}
	return s.state.Clone(), nil
}

// Save keeps a copy of state
func (s *MemoryStore) Save(ctx context.Context, state *domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Clone()
	return nil
}
