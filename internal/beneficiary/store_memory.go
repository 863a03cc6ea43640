package beneficiary

import (
	"context"
	"sync"
)

// InMemoryStore holds records in process memory for tests and local runs.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []Beneficiario
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Create(_ context.Context, record Beneficiario) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// All returns a copy of everything stored; test assertion helper.
func (s *InMemoryStore) All() []Beneficiario {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Beneficiario{}, s.records...)
}
