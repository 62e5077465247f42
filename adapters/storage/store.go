// Package storage persists priced quote snapshots for audit and history.
// A stored quote carries the request and the priced result exactly as the
// engine produced them, so a historical quote can be re-read without
// re-pricing against configuration that has since changed.
package storage

import (
	"context"
	"time"

	"quote-engine/core/types"
	"quote-engine/internal/config"
	"quote-engine/internal/errors"
)

// Backend is a storage backend type
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// StoredQuote is one persisted quote record
type StoredQuote struct {
	// ID uniquely identifies the quote record
	ID string `json:"id"`

	// Customer labels who the quote was prepared for
	Customer string `json:"customer,omitempty"`

	// CreatedAt is when the quote was priced
	CreatedAt time.Time `json:"created_at"`

	// SnapshotID identifies the pricing configuration used
	SnapshotID string `json:"snapshot_id,omitempty"`

	// Request is the package request as priced
	Request types.PackageRequest `json:"request"`

	// Result is the priced outcome
	Result *types.QuoteResult `json:"result"`
}

// ListFilter narrows quote listings
type ListFilter struct {
	// Customer filters by customer label
	Customer string

	// Limit caps the number of records returned (0 = no cap)
	Limit int
}

// Store is the quote persistence interface
type Store interface {
	// Save stores a quote record, assigning an ID when missing
	Save(ctx context.Context, quote *StoredQuote) error

	// Get retrieves a quote by ID
	Get(ctx context.Context, id string) (*StoredQuote, error)

	// List lists quotes, newest first
	List(ctx context.Context, filter *ListFilter) ([]*StoredQuote, error)

	// Delete removes a quote
	Delete(ctx context.Context, id string) error

	// Close releases backend resources
	Close() error
}

// Open constructs the store for a storage configuration
func Open(cfg config.StorageConfig) (Store, error) {
	switch Backend(cfg.Backend) {
	case BackendMemory, "":
		return NewMemoryStore(), nil
	case BackendFile:
		return NewFileStore(cfg.Path)
	case BackendSQLite:
		return NewSQLiteStore(cfg.Path)
	default:
		return nil, errors.Configf("unknown storage backend %q", cfg.Backend)
	}
}
