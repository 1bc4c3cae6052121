package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/websocket"
)

// MockStateStore is an in-memory domain.StateStore that records every save
type MockStateStore struct {
	mu      sync.Mutex
	State   *domain.State
	Saved   []*domain.State
	LoadErr error
	SaveErr error
	SaveFn  func(ctx context.Context, state *domain.State) error
	Loads   int
}

// NewMockStateStore creates a new MockStateStore holding state (nil means empty)
func NewMockStateStore(state *domain.State) *MockStateStore {
	return &MockStateStore{State: state}
}

// Load returns the stored state
func (m *MockStateStore) Load(ctx context.Context) (*domain.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Loads++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.State == nil {
		return nil, nil
	}
	return m.State.Clone(), nil
}

// Save stores the state and appends it to Saved
func (m *MockStateStore) Save(ctx context.Context, state *domain.State) error {
	if m.SaveFn != nil {
		if err := m.SaveFn(ctx, state); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.State = state.Clone()
	m.Saved = append(m.Saved, state)
	return nil
}

// SaveCount returns the number of successful saves
func (m *MockStateStore) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Saved)
}

// SavedStates returns a copy of the saved states in order
func (m *MockStateStore) SavedStates() []*domain.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.State, len(m.Saved))
	copy(out, m.Saved)
	return out
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mu     sync.Mutex
	Events []websocket.Event
}

// NewMockEventPublisher creates a new MockEventPublisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

// Publish records the event
func (m *MockEventPublisher) Publish(event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
}

// Types returns the type of every recorded event in order
func (m *MockEventPublisher) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.Events))
	for i, e := range m.Events {
		types[i] = e.Type
	}
	return types
}

// Reset clears the recorded events
func (m *MockEventPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = nil
}

// MockBackupStore is an in-memory domain.BackupStore
type MockBackupStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Times   map[string]time.Time
	PutErr  error
	Now     func() time.Time
}

// NewMockBackupStore creates a new MockBackupStore
func NewMockBackupStore() *MockBackupStore {
	return &MockBackupStore{
		Objects: make(map[string][]byte),
		Times:   make(map[string]time.Time),
		Now:     time.Now,
	}
}

// Put stores data under key
func (m *MockBackupStore) Put(ctx context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutErr != nil {
		return m.PutErr
	}
	m.Objects[key] = append([]byte(nil), data...)
	m.Times[key] = m.Now()
	return nil
}

// Get returns the data stored under key
func (m *MockBackupStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.Objects[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

// List returns every stored object ordered by key
func (m *MockBackupStore) List(ctx context.Context) ([]domain.BackupObject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	objects := make([]domain.BackupObject, 0, len(m.Objects))
	for key, data := range m.Objects {
		objects = append(objects, domain.BackupObject{
			Key:          key,
			Size:         int64(len(data)),
			LastModified: m.Times[key],
		})
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

// FixedClock returns a clock that always reports t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MutableClock is a test clock that can be moved
type MutableClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewMutableClock creates a clock starting at t
func NewMutableClock(t time.Time) *MutableClock {
	return &MutableClock{now: t}
}

// Now returns the current clock time
func (c *MutableClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t
func (c *MutableClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d
func (c *MutableClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
