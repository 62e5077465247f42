// Package storage - In-memory backend
package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"quote-engine/internal/errors"
)

// MemoryStore keeps quotes in process memory. Useful for tests and for
// running the server without persistence.
type MemoryStore struct {
	mu     sync.RWMutex
	quotes map[string]*StoredQuote
}

// NewMemoryStore creates an in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{quotes: make(map[string]*StoredQuote)}
}

// Save stores a quote record
func (s *MemoryStore) Save(ctx context.Context, quote *StoredQuote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quote.ID == "" {
		quote.ID = uuid.NewString()
	}
	if quote.CreatedAt.IsZero() {
		quote.CreatedAt = time.Now().UTC()
	}
	copied := *quote
	s.quotes[quote.ID] = &copied
	return nil
}

// Get retrieves a quote by ID
func (s *MemoryStore) Get(ctx context.Context, id string) (*StoredQuote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quote, ok := s.quotes[id]
	if !ok {
		return nil, errors.NotFound("quote", id)
	}
	copied := *quote
	return &copied, nil
}

// List lists quotes, newest first
func (s *MemoryStore) List(ctx context.Context, filter *ListFilter) ([]*StoredQuote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*StoredQuote, 0, len(s.quotes))
	for _, quote := range s.quotes {
		if filter != nil && filter.Customer != "" && quote.Customer != filter.Customer {
			continue
		}
		copied := *quote
		results = append(results, &copied)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	if filter != nil && filter.Limit > 0 && len(results) > filter.Limit {
		results = results[:filter.Limit]
	}
	return results, nil
}

// Delete removes a quote
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quotes[id]; !ok {
		return errors.NotFound("quote", id)
	}
	delete(s.quotes, id)
	return nil
}

// Close is a no-op for the memory backend
func (s *MemoryStore) Close() error {
	return nil
}
