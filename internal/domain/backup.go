package domain

import (
	"context"
	"time"
)

// BackupObject describes a stored JSON backup
type BackupObject struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// BackupStore keeps full-state JSON exports outside the primary store
type BackupStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context) ([]BackupObject, error)
}
