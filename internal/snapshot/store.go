// Package snapshot persists the last successfully fetched list per entity
// type, so a cold start with an unreachable backend can still render stale
// data instead of nothing.
package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entity names used as snapshot keys.
const (
	EntityExpenses    = "expenses"
	EntityInvestments = "investments"
	EntityLoans       = "loans"
	EntitySIPs        = "sips"
)

// ErrNoSnapshot is returned when nothing has been saved for an entity yet.
var ErrNoSnapshot = errors.New("no snapshot for entity")

type Store struct {
	db *sql.DB
}

// Open creates the database (and its directory) if needed and runs the
// embedded migrations.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save stores v as the current snapshot for entity, replacing any previous
// one. A nil store is a no-op so callers need no guard when snapshots are
// disabled.
func (s *Store) Save(ctx context.Context, entity string, v any) error {
	if s == nil {
		return nil
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (entity, payload, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(entity) DO UPDATE SET
			payload = excluded.payload,
			fetched_at = excluded.fetched_at`,
		entity, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load decodes the stored snapshot for entity into out and reports when it
// was fetched. Returns ErrNoSnapshot when nothing was saved.
func (s *Store) Load(ctx context.Context, entity string, out any) (time.Time, error) {
	if s == nil {
		return time.Time{}, ErrNoSnapshot
	}
	var (
		payload   string
		fetchedAt time.Time
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM snapshots WHERE entity = ?`, entity).
		Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("load snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return time.Time{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return fetchedAt, nil
}
