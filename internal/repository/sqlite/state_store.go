package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/repository"
	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite"
)

// StateStore keeps the ledger as one JSON row in a SQLite database. The
// database is opened and migrated on first use.
type StateStore struct {
	path string
	db   *repository.LazyConn[*sql.DB]
}

// NewStateStore creates a StateStore for the database file at path
func NewStateStore(path string) *StateStore {
	s := &StateStore{path: path}
	s.db = repository.NewLazyConn(s.open)
	return s
}

func (s *StateStore) open(ctx context.Context) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	if err := RunMigrations(s.path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info().Str("path", s.path).Msg("SQLite state store opened")
	return db, nil
}

// Load returns the stored state, or nil when nothing has been saved
func (s *StateStore) Load(ctx context.Context) (*domain.State, error) {
	db, err := s.db.Get(ctx)
	if err != nil {
		return nil, err
	}

	var data string
	err = db.QueryRowContext(ctx, `SELECT data FROM app_state WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select state: %w", err)
	}

	var state domain.State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &state, nil
}

// Save replaces the stored state
func (s *StateStore) Save(ctx context.Context, state *domain.State) error {
	db, err := s.db.Get(ctx)
	if err != nil {
		return err
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO app_state (id, data, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(data), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert state: %w", err)
	}
	return nil
}

// Close closes the database if it was opened
func (s *StateStore) Close() error {
	return s.db.Close(func(db *sql.DB) error { return db.Close() })
}
