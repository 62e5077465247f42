// Package storage - File backend
package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"quote-engine/internal/errors"
)

// FileStore persists each quote as one JSON file in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.Config("file storage: no directory configured")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Storage("create storage directory", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Save stores a quote record
func (s *FileStore) Save(ctx context.Context, quote *StoredQuote) error {
	if quote.ID == "" {
		quote.ID = uuid.NewString()
	}
	if quote.CreatedAt.IsZero() {
		quote.CreatedAt = time.Now().UTC()
	}

	data, err := json.MarshalIndent(quote, "", "  ")
	if err != nil {
		return errors.Storage("encode quote", err)
	}
	if err := os.WriteFile(s.path(quote.ID), data, 0644); err != nil {
		return errors.Storage("write quote", err)
	}
	return nil
}

// Get retrieves a quote by ID
func (s *FileStore) Get(ctx context.Context, id string) (*StoredQuote, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("quote", id)
		}
		return nil, errors.Storage("read quote", err)
	}

	var quote StoredQuote
	if err := json.Unmarshal(data, &quote); err != nil {
		return nil, errors.Storage("decode quote", err)
	}
	return &quote, nil
}

// List lists quotes, newest first
func (s *FileStore) List(ctx context.Context, filter *ListFilter) ([]*StoredQuote, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Storage("list storage directory", err)
	}

	results := make([]*StoredQuote, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		quote, err := s.Get(ctx, strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return nil, err
		}
		if filter != nil && filter.Customer != "" && quote.Customer != filter.Customer {
			continue
		}
		results = append(results, quote)
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
func (s *FileStore) Delete(ctx context.Context, id string) error {
	err := os.Remove(s.path(id))
	if os.IsNotExist(err) {
		return errors.NotFound("quote", id)
	}
	if err != nil {
		return errors.Storage("delete quote", err)
	}
	return nil
}

// Close is a no-op for the file backend
func (s *FileStore) Close() error {
	return nil
}
