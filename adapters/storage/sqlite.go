// Package storage - SQLite backend
package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"quote-engine/core/types"
	"quote-engine/internal/errors"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// SQLiteStore persists quotes in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) a SQLite quote database and
// runs pending migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, errors.Config("sqlite storage: no database path configured")
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Storage("open sqlite database", err)
	}

	if _, err := db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		db.Close()
		return nil, errors.Storage("set sqlite pragmas", err)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, errors.Storage("set goose dialect", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		db.Close()
		return nil, errors.Storage("run migrations", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save stores a quote record
func (s *SQLiteStore) Save(ctx context.Context, quote *StoredQuote) error {
	if quote.ID == "" {
		quote.ID = uuid.NewString()
	}
	if quote.CreatedAt.IsZero() {
		quote.CreatedAt = time.Now().UTC()
	}

	requestJSON, err := json.Marshal(quote.Request)
	if err != nil {
		return errors.Storage("encode request", err)
	}
	resultJSON, err := json.Marshal(quote.Result)
	if err != nil {
		return errors.Storage("encode result", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO quotes (id, customer, created_at, snapshot_id, request, result)
		VALUES (?, ?, ?, ?, ?, ?)`,
		quote.ID, quote.Customer, quote.CreatedAt.Format(time.RFC3339Nano),
		quote.SnapshotID, string(requestJSON), string(resultJSON))
	if err != nil {
		return errors.Storage("insert quote", err)
	}
	return nil
}

// Get retrieves a quote by ID
func (s *SQLiteStore) Get(ctx context.Context, id string) (*StoredQuote, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, customer, created_at, snapshot_id, request, result
		FROM quotes WHERE id = ?`, id)

	quote, err := scanQuote(row)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("quote", id)
	}
	if err != nil {
		return nil, errors.Storage("read quote", err)
	}
	return quote, nil
}

// List lists quotes, newest first
func (s *SQLiteStore) List(ctx context.Context, filter *ListFilter) ([]*StoredQuote, error) {
	query := `
		SELECT id, customer, created_at, snapshot_id, request, result
		FROM quotes`
	args := []interface{}{}

	if filter != nil && filter.Customer != "" {
		query += ` WHERE customer = ?`
		args = append(args, filter.Customer)
	}
	query += ` ORDER BY created_at DESC`
	if filter != nil && filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Storage("list quotes", err)
	}
	defer rows.Close()

	var results []*StoredQuote
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, errors.Storage("scan quote", err)
		}
		results = append(results, quote)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Storage("iterate quotes", err)
	}
	return results, nil
}

// Delete removes a quote
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		return errors.Storage("delete quote", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Storage("delete quote", err)
	}
	if affected == 0 {
		return errors.NotFound("quote", id)
	}
	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanQuote(row rowScanner) (*StoredQuote, error) {
	var (
		quote       StoredQuote
		createdAt   string
		requestJSON string
		resultJSON  string
	)
	if err := row.Scan(&quote.ID, &quote.Customer, &createdAt, &quote.SnapshotID, &requestJSON, &resultJSON); err != nil {
		return nil, err
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, err
	}
	quote.CreatedAt = ts

	if err := json.Unmarshal([]byte(requestJSON), &quote.Request); err != nil {
		return nil, err
	}
	var result types.QuoteResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, err
	}
	quote.Result = &result
	return &quote, nil
}
