package orgunit

import (
	"context"
	"sync"
)

// InMemoryStore keeps unit documents in process memory. Used in tests and
// when running without a database.
type InMemoryStore struct {
	mu   sync.RWMutex
	docs []Document
}

func NewInMemoryStore(docs ...Document) *InMemoryStore {
	return &InMemoryStore{docs: docs}
}

func (s *InMemoryStore) ListDocuments(_ context.Context) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Document{}, s.docs...), nil
}

// Add appends a document; test seeding helper.
func (s *InMemoryStore) Add(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, doc)
}
