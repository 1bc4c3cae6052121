package service

import (
	"context"
	"sync"
	"time"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/util"
	"github.com/dafibh/fintrack/fintrack-backend/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// LedgerConfig holds the settings the ledger needs outside of its state
type LedgerConfig struct {
	DefaultMonthlyBudget decimal.Decimal
	DefaultMonthStartDay int
	Location             *time.Location
	WidgetPrivacy        bool
	Clock                func() time.Time
}

// Ledger owns the single in-memory ledger state. Every mutation runs against a
// clone which replaces the live state only after it validates and replays, so
// a rejected change leaves nothing behind.
type Ledger struct {
	mu             sync.RWMutex
	state          *domain.State
	config         LedgerConfig
	saver          *StateSaver
	eventPublisher websocket.EventPublisher
}

// NewLedger creates a ledger holding the default state
func NewLedger(config LedgerConfig) *Ledger {
	if config.Location == nil {
		config.Location = time.UTC
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}
	if config.DefaultMonthStartDay == 0 {
		config.DefaultMonthStartDay = domain.DefaultMonthStartDay
	}

	l := &Ledger{config: config}
	l.state = l.defaultState()
	return l
}

// SetStateSaver sets the saver that persists committed states
func (l *Ledger) SetStateSaver(saver *StateSaver) {
	l.saver = saver
}

// SetEventPublisher sets the event publisher for real-time updates
func (l *Ledger) SetEventPublisher(publisher websocket.EventPublisher) {
	l.eventPublisher = publisher
}

func (l *Ledger) publishEvent(event websocket.Event) {
	if l.eventPublisher != nil {
		l.eventPublisher.Publish(event)
	}
}

func (l *Ledger) defaultState() *domain.State {
	return domain.DefaultState(l.config.DefaultMonthlyBudget, l.config.DefaultMonthStartDay)
}

// Load replaces the in-memory state with the stored one. A missing or
// unreadable state leaves the ledger on defaults; startup never fails here.
func (l *Ledger) Load(ctx context.Context, store domain.StateStore) {
	stored, err := store.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load ledger state, starting from defaults")
		return
	}
	if stored == nil {
		log.Info().Msg("No saved ledger state, starting from defaults")
		return
	}

	stored.Normalize()
	stored.Accounts = RecalcAccounts(stored)

	l.mu.Lock()
	l.state = stored
	l.mu.Unlock()

	log.Info().
		Int("transactions", len(stored.Transactions)).
		Int("accounts", len(stored.Accounts)).
		Msg("Ledger state loaded")
}

// Now returns the current time in the ledger's location
func (l *Ledger) Now() time.Time {
	return l.config.Clock().In(l.config.Location)
}

// Today returns the current calendar date in the ledger's location
func (l *Ledger) Today() time.Time {
	return util.DateOnly(l.Now())
}

// WidgetPrivacy reports whether widget amounts are masked
func (l *Ledger) WidgetPrivacy() bool {
	return l.config.WidgetPrivacy
}

// Snapshot returns a deep copy of the current state
func (l *Ledger) Snapshot() *domain.State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.Clone()
}

// view runs fn against the live state under a read lock. fn must not modify it.
func (l *Ledger) view(fn func(s *domain.State)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(l.state)
}

// mutate applies fn to a clone of the state. If fn succeeds the clone's
// balances are replayed and it becomes the live state, then it is queued for
// saving and the widget payload is republished. Committed states are never
// modified again, so the saver may hold them without copying.
func (l *Ledger) mutate(op string, fn func(s *domain.State) error) (*domain.State, error) {
	l.mu.Lock()
	draft := l.state.Clone()
	if err := fn(draft); err != nil {
		l.mu.Unlock()
		log.Debug().Err(err).Str("op", op).Msg("Ledger change rejected")
		return nil, err
	}
	draft.Accounts = RecalcAccounts(draft)
	l.state = draft
	// Queued under the lock so the pending state is always the newest commit.
	// Enqueue does not block.
	if l.saver != nil {
		l.saver.Enqueue(draft)
	}
	l.mu.Unlock()

	log.Debug().Str("op", op).Int("transactions", len(draft.Transactions)).Msg("Ledger updated")

	l.publishEvent(websocket.WidgetUpdated(BuildWidgetPayload(draft, l.Today(), l.config.WidgetPrivacy)))
	return draft, nil
}
