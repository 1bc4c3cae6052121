package repository

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// OpenTimeout bounds a shared open, which no single caller's context controls
const OpenTimeout = 30 * time.Second

// LazyConn opens a connection on first use and caches it. Concurrent first
// callers share a single open; a failed open is not cached and the next call
// tries again.
type LazyConn[T any] struct {
	open  func(ctx context.Context) (T, error)
	group singleflight.Group
	mu    sync.RWMutex
	conn  T
	ready bool
}

// NewLazyConn creates a LazyConn around open
func NewLazyConn[T any](open func(ctx context.Context) (T, error)) *LazyConn[T] {
	return &LazyConn[T]{open: open}
}

// Get returns the cached connection, opening it if needed. The open runs on a
// context detached from the caller, so one caller giving up does not fail the
// others waiting on the same open.
func (l *LazyConn[T]) Get(ctx context.Context) (T, error) {
	l.mu.RLock()
	if l.ready {
		conn := l.conn
		l.mu.RUnlock()
		return conn, nil
	}
	l.mu.RUnlock()

	ch := l.group.DoChan("open", func() (interface{}, error) {
		l.mu.RLock()
		if l.ready {
			conn := l.conn
			l.mu.RUnlock()
			return conn, nil
		}
		l.mu.RUnlock()

		openCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), OpenTimeout)
		defer cancel()
		conn, err := l.open(openCtx)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.conn = conn
		l.ready = true
		l.mu.Unlock()
		return conn, nil
	})

	var zero T
	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Close runs closeFn on the connection if one was opened
func (l *LazyConn[T]) Close(closeFn func(T) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.ready {
		return nil
	}
	l.ready = false
	conn := l.conn
	var zero T
	l.conn = zero
	return closeFn(conn)
}
