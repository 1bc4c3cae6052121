package websocket

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10 // must be less than pongWait
	maxMessageSize = 512

	// sendBuffer is how many ledger events may wait for a slow client
	sendBuffer = 64
)

// ErrClientLagging is returned when a client has too many undelivered events
var ErrClientLagging = errors.New("client is not keeping up with events")

// Client is one subscriber to ledger events. It only receives; anything the
// peer sends is read and discarded to keep the connection alive.
type Client struct {
	id          string
	conn        *websocket.Conn
	hub         *Hub
	send        chan []byte
	done        chan struct{}
	closeOnce   sync.Once
	closed      atomic.Bool
	delivered   atomic.Int64
	connectedAt time.Time
}

// NewClient creates a client for an upgraded connection
func NewClient(conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		id:          uuid.New().String(),
		conn:        conn,
		hub:         hub,
		send:        make(chan []byte, sendBuffer),
		done:        make(chan struct{}),
		connectedAt: time.Now(),
	}
}

// ID returns the client's unique identifier
func (c *Client) ID() string {
	return c.id
}

// Send queues an encoded event. A client whose buffer is full is disconnected
// rather than slowing down the broadcast; it can reconnect and receive the
// current widget again.
func (c *Client) Send(data []byte) error {
	if c.closed.Load() {
		return ErrClientClosed
	}

	select {
	case <-c.done:
		return ErrClientClosed
	case c.send <- data:
		return nil
	default:
		log.Warn().
			Str("client_id", c.id).
			Int("buffered", len(c.send)).
			Msg("WebSocket client lagging, disconnecting")
		go c.Close()
		return ErrClientLagging
	}
}

// Close ends the connection. It is safe to call more than once.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		close(c.done)
		err = c.conn.Close()
	})
	return err
}

// IsClosed reports whether Close has been called
func (c *Client) IsClosed() bool {
	return c.closed.Load()
}

// ReadPump keeps the read deadline moving with pongs and unregisters the
// client once the peer goes away. Run it in its own goroutine.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.Close()
		log.Info().
			Str("client_id", c.id).
			Int64("events_delivered", c.delivered.Load()).
			Dur("connected_for", time.Since(c.connectedAt)).
			Int("clients", c.hub.ClientCount()).
			Msg("WebSocket client disconnected")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("client_id", c.id).Msg("WebSocket unexpected close")
			}
			return
		}
	}
}

// WritePump writes queued events and keepalive pings until the client closes.
// Run it in its own goroutine.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case event := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, event); err != nil {
				log.Warn().Err(err).Str("client_id", c.id).Msg("WebSocket write error")
				return
			}
			c.delivered.Add(1)

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
