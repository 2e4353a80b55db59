package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// localStorage implements Storage on a local directory.
// It is safe for concurrent use by multiple goroutines.
type localStorage struct {
	dir string
}

// NewLocal creates dir if it does not exist and returns a Storage rooted at it.
func NewLocal(dir string) (Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &localStorage{dir: dir}, nil
}

// Put streams r into dir/key. A failed copy removes the partial file.
func (l *localStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return ObjectInfo{}, fmt.Errorf("invalid object key %q", key)
	}

	p := filepath.Join(l.dir, key)
	f, err := os.Create(p)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create object: %w", err)
	}

	n, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		_ = os.Remove(p)
		return ObjectInfo{}, fmt.Errorf("write object: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(p)
		return ObjectInfo{}, fmt.Errorf("close object: %w", err)
	}

	fi, err := os.Stat(p)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("stat object: %w", err)
	}

	return ObjectInfo{
		Key:          key,
		Size:         n,
		ContentType:  opt.ContentType,
		LastModified: fi.ModTime(),
	}, nil
}

// Ping checks that the root directory is still present.
func (l *localStorage) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fi, err := os.Stat(l.dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s is not a directory", l.dir)
	}
	return nil
}
