package websocket

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for Client that captures sent messages
type mockClient struct {
	id       string
	messages [][]byte
	mu       sync.Mutex
	closed   bool
}

func newMockClient(id string) *mockClient {
	return &mockClient{
		id:       id,
		messages: make([][]byte, 0),
	}
}

func (m *mockClient) ID() string {
	return m.id
}

func (m *mockClient) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClientClosed
	}
	m.messages = append(m.messages, data)
	return nil
}

func (m *mockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockClient) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *mockClient) GetMessages() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([][]byte, len(m.messages))
	copy(copied, m.messages)
	return copied
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()

	client1 := newMockClient("client-1")
	client2 := newMockClient("client-2")

	hub.Register(client1)
	hub.Register(client2)
	assert.Equal(t, 2, hub.ClientCount())

	hub.Unregister(client1)
	assert.Equal(t, 1, hub.ClientCount())

	// Unregistering twice is harmless
	hub.Unregister(client1)
	assert.Equal(t, 1, hub.ClientCount())
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub()
	client1 := newMockClient("client-1")
	client2 := newMockClient("client-2")
	hub.Register(client1)
	hub.Register(client2)

	hub.Broadcast(WidgetUpdated(map[string]string{"month": "Oct 1 - Oct 31"}))

	require.Eventually(t, func() bool {
		return len(client1.GetMessages()) == 1 && len(client2.GetMessages()) == 1
	}, time.Second, 5*time.Millisecond)

	var received Event
	require.NoError(t, json.Unmarshal(client1.GetMessages()[0], &received))
	assert.Equal(t, "widget.updated", received.Type)
	assert.Equal(t, EntityTypeWidget, received.Entity)
}

func TestHub_BroadcastNoClients(t *testing.T) {
	hub := NewHub()

	assert.NotPanics(t, func() {
		hub.Broadcast(TransactionCreated(map[string]string{"id": "tx-1"}))
	})
}

func TestHub_BroadcastSkipsClosedClient(t *testing.T) {
	hub := NewHub()
	open := newMockClient("open")
	closed := newMockClient("closed")
	_ = closed.Close()
	hub.Register(open)
	hub.Register(closed)

	hub.Broadcast(TransactionDeleted(map[string]string{"id": "tx-1"}))

	require.Eventually(t, func() bool {
		return len(open.GetMessages()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, closed.GetMessages())
}

func TestHub_CloseAll(t *testing.T) {
	hub := NewHub()
	client := newMockClient("client-1")
	hub.Register(client)

	hub.CloseAll()

	assert.True(t, client.IsClosed())
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_ConcurrentAccess(t *testing.T) {
	hub := NewHub()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c := newMockClient(string(rune('a' + n)))
			hub.Register(c)
			hub.Broadcast(BudgetUpdated(n))
			hub.Unregister(c)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, hub.ClientCount())
}
