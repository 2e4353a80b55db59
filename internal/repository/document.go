package repository

import (
	"context"
	"time"
)

// FileStat is the subset of filesystem metadata the service needs.
type FileStat struct {
	Name    string
	Size    int64
	ModTime time.Time
	IsDir   bool
}

// DocumentRepository defines raw persistence for JSON documents keyed by filename.
// Names are validated by the caller.
type DocumentRepository interface {
	// Write stores data under name, replacing any previous content.
	Write(ctx context.Context, name string, data []byte) error

	// Read returns the stored bytes. Missing files return an error wrapping fs.ErrNotExist.
	Read(ctx context.Context, name string) ([]byte, error)

	// Remove deletes name. Missing files return an error wrapping fs.ErrNotExist.
	Remove(ctx context.Context, name string) error

	// Stat returns metadata for name without reading its content.
	Stat(ctx context.Context, name string) (FileStat, error)

	// Names lists every entry of the store in directory order.
	Names(ctx context.Context) ([]string, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
