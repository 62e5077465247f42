package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"quote-engine/core/types"
	"quote-engine/internal/config"
	"quote-engine/internal/errors"
)

func testQuote(customer string) *StoredQuote {
	return &StoredQuote{
		Customer:   customer,
		SnapshotID: "2026-08",
		Request:    types.PackageRequest{Customer: customer},
		Result: &types.QuoteResult{
			Mode: types.ModePhased,
			Package: &types.PricedPackage{
				SubtotalMonthly: decimal.NewFromInt(1000),
				SubtotalAnnual:  decimal.NewFromInt(12000),
			},
		},
	}
}

func runStoreTests(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	quote := testQuote("acme")
	if err := store.Save(ctx, quote); err != nil {
		t.Fatalf("save: %v", err)
	}
	if quote.ID == "" {
		t.Fatal("save did not assign an ID")
	}
	if quote.CreatedAt.IsZero() {
		t.Fatal("save did not stamp CreatedAt")
	}

	got, err := store.Get(ctx, quote.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Customer != "acme" || got.SnapshotID != "2026-08" {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	if got.Result == nil || !got.Result.Package.SubtotalMonthly.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("round trip lost result: %+v", got.Result)
	}

	if _, err := store.Get(ctx, "missing"); !errors.IsType(err, errors.TypeNotFound) {
		t.Fatalf("get missing: want NOT_FOUND, got %v", err)
	}

	second := testQuote("globex")
	second.CreatedAt = time.Now().UTC().Add(time.Minute)
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	all, err := store.List(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("list = %d records, want 2", len(all))
	}
	if all[0].ID != second.ID {
		t.Fatal("list is not newest first")
	}

	filtered, err := store.List(ctx, &ListFilter{Customer: "acme"})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Customer != "acme" {
		t.Fatalf("customer filter returned %+v", filtered)
	}

	limited, err := store.List(ctx, &ListFilter{Limit: 1})
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limit ignored: %d records", len(limited))
	}

	if err := store.Delete(ctx, quote.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, quote.ID); !errors.IsType(err, errors.TypeNotFound) {
		t.Fatalf("get after delete: want NOT_FOUND, got %v", err)
	}
	if err := store.Delete(ctx, quote.ID); !errors.IsType(err, errors.TypeNotFound) {
		t.Fatalf("double delete: want NOT_FOUND, got %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	runStoreTests(t, store)
}

func TestMemoryStoreCopiesOnSave(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	quote := testQuote("acme")
	if err := store.Save(ctx, quote); err != nil {
		t.Fatalf("save: %v", err)
	}
	quote.Customer = "mutated"

	got, err := store.Get(ctx, quote.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Customer != "acme" {
		t.Fatal("stored record shares memory with the caller")
	}
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "quotes"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()
	runStoreTests(t, store)
}

func TestFileStoreRequiresDirectory(t *testing.T) {
	if _, err := NewFileStore(""); !errors.IsType(err, errors.TypeConfig) {
		t.Fatalf("want CONFIG_ERROR, got %v", err)
	}
}

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "quotes.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()
	runStoreTests(t, store)
}

func TestOpenSelectsBackend(t *testing.T) {
	store, err := Open(config.StorageConfig{Backend: "memory"})
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	if _, ok := store.(*MemoryStore); !ok {
		t.Fatalf("backend memory: got %T", store)
	}
	store.Close()

	store, err = Open(config.StorageConfig{})
	if err != nil {
		t.Fatalf("open default: %v", err)
	}
	if _, ok := store.(*MemoryStore); !ok {
		t.Fatalf("default backend: got %T", store)
	}
	store.Close()

	store, err = Open(config.StorageConfig{Backend: "file", Path: t.TempDir()})
	if err != nil {
		t.Fatalf("open file: %v", err)
	}
	if _, ok := store.(*FileStore); !ok {
		t.Fatalf("backend file: got %T", store)
	}
	store.Close()

	if _, err := Open(config.StorageConfig{Backend: "redis"}); !errors.IsType(err, errors.TypeConfig) {
		t.Fatalf("unknown backend: want CONFIG_ERROR, got %v", err)
	}
}
