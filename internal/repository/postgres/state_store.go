package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const createStateTable = `
CREATE TABLE IF NOT EXISTS app_state (
    id         SMALLINT PRIMARY KEY CHECK (id = 1),
    data       JSONB       NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// StateStore keeps the ledger as one jsonb row in PostgreSQL. The pool is
// created on first use.
type StateStore struct {
	databaseURL string
	pool        *repository.LazyConn[*pgxpool.Pool]
}

// NewStateStore creates a StateStore for databaseURL
func NewStateStore(databaseURL string) *StateStore {
	s := &StateStore{databaseURL: databaseURL}
	s.pool = repository.NewLazyConn(s.open)
	return s
}

func (s *StateStore) open(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, s.databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, createStateTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}

	log.Info().Msg("Connected to database")
	return pool, nil
}

// Load returns the stored state, or nil when nothing has been saved
func (s *StateStore) Load(ctx context.Context) (*domain.State, error) {
	pool, err := s.pool.Get(ctx)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = pool.QueryRow(ctx, `SELECT data FROM app_state WHERE id = 1`).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select state: %w", err)
	}

	var state domain.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &state, nil
}

// Save replaces the stored state
func (s *StateStore) Save(ctx context.Context, state *domain.State) error {
	pool, err := s.pool.Get(ctx)
	if err != nil {
		return err
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO app_state (id, data, updated_at) VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		data,
	)
	if err != nil {
		return fmt.Errorf("upsert state: %w", err)
	}
	return nil
}

// Close closes the pool if it was opened
func (s *StateStore) Close() error {
	return s.pool.Close(func(p *pgxpool.Pool) error {
		p.Close()
		return nil
	})
}
