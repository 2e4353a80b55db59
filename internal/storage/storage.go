package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains the object storage abstraction used for uploaded map images.

// PutObjectOptions define optional parameters for uploading objects.
// ContentType is informational; the local backend does not persist it.
type PutObjectOptions struct {
	ContentType string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// Storage stores uploaded objects under a flat key space.
// Objects are never updated or removed through this interface.
type Storage interface {
	// Put writes an object under key from r, overwriting any previous object with the same key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
