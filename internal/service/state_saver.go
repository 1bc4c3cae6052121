package service

import (
	"context"
	"sync"
	"time"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/rs/zerolog"
)

// StateSaver writes committed ledger states to a StateStore in the background.
// Every save writes the whole state, so only the newest pending state is kept:
// a state queued while a save is running replaces any older pending one.
// Enqueue never blocks, whatever the store is doing. Each save is a single
// attempt; failures are logged and the next state is written as usual.
type StateSaver struct {
	store   domain.StateStore
	logger  zerolog.Logger
	timeout time.Duration

	mu        sync.Mutex
	pending   *domain.State
	coalesced int
	running   bool
	closed    bool

	wakeCh chan struct{}
	stopCh chan struct{}
	doneCh chan struct{}
}

// StateSaverConfig holds configuration for the state saver
type StateSaverConfig struct {
	SaveTimeout time.Duration // Deadline for a single save
}

// DefaultStateSaverConfig returns sensible defaults
func DefaultStateSaverConfig() StateSaverConfig {
	return StateSaverConfig{
		SaveTimeout: 10 * time.Second,
	}
}

// NewStateSaver creates a new state saver
func NewStateSaver(store domain.StateStore, logger zerolog.Logger, config StateSaverConfig) *StateSaver {
	if config.SaveTimeout <= 0 {
		config.SaveTimeout = DefaultStateSaverConfig().SaveTimeout
	}

	return &StateSaver{
		store:   store,
		logger:  logger.With().Str("component", "state_saver").Logger(),
		timeout: config.SaveTimeout,
		wakeCh:  make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start begins writing queued states
func (w *StateSaver) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running || w.closed {
		return
	}
	w.running = true

	w.logger.Info().Dur("save_timeout", w.timeout).Msg("Starting state saver")
	go w.run()
}

// Enqueue schedules state to be saved, replacing any state still waiting.
// The state must not be modified afterwards.
func (w *StateSaver) Enqueue(state *domain.State) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.logger.Warn().Msg("State saver closed, dropping save")
		return
	}
	if w.pending != nil {
		w.coalesced++
	}
	w.pending = state
	w.mu.Unlock()

	select {
	case w.wakeCh <- struct{}{}:
	default:
	}
}

// Close stops accepting states, writes the last pending one and waits for the
// worker to finish
func (w *StateSaver) Close(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.stopCh)
	running := w.running
	w.mu.Unlock()

	if !running {
		return nil
	}

	select {
	case <-w.doneCh:
		w.logger.Info().Msg("State saver stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pending reports whether a state is waiting to be written
func (w *StateSaver) Pending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pending != nil
}

func (w *StateSaver) run() {
	defer close(w.doneCh)

	for {
		select {
		case <-w.wakeCh:
			w.saveLatest()
		case <-w.stopCh:
			w.saveLatest()
			return
		}
	}
}

func (w *StateSaver) saveLatest() {
	w.mu.Lock()
	state := w.pending
	skipped := w.coalesced
	w.pending = nil
	w.coalesced = 0
	w.mu.Unlock()

	if state == nil {
		return
	}
	if skipped > 0 {
		w.logger.Debug().Int("skipped", skipped).Msg("Superseded states not written")
	}
	w.save(state)
}

func (w *StateSaver) save(state *domain.State) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	start := time.Now()
	if err := w.store.Save(ctx, state); err != nil {
		w.logger.Warn().
			Err(err).
			Int("transactions", len(state.Transactions)).
			Msg("Failed to save ledger state")
		return
	}

	w.logger.Debug().
		Int("transactions", len(state.Transactions)).
		Dur("latency", time.Since(start)).
		Msg("Ledger state saved")
}
