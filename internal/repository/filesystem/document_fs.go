package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"mapapi/internal/repository"
)

// DocumentFS is a flat-directory implementation of repository.DocumentRepository.
// Each document is one file named after its key.
type DocumentFS struct {
	dir string
}

// NewDocumentFS creates the directory if needed and returns a repository rooted at it.
func NewDocumentFS(dir string) (*DocumentFS, error) {
	if dir == "" {
		return nil, fmt.Errorf("documents directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create documents directory: %w", err)
	}
	return &DocumentFS{dir: dir}, nil
}

var _ repository.DocumentRepository = (*DocumentFS)(nil)

func (r *DocumentFS) path(name string) string {
	return filepath.Join(r.dir, name)
}

// Write replaces the file content. Concurrent writers race; the last one wins.
func (r *DocumentFS) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(r.path(name), data, 0o644)
}

// Read returns the file content.
func (r *DocumentFS) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(r.path(name))
}

// Remove unlinks the file.
func (r *DocumentFS) Remove(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Remove(r.path(name))
}

// Stat returns file metadata.
func (r *DocumentFS) Stat(ctx context.Context, name string) (repository.FileStat, error) {
	if err := ctx.Err(); err != nil {
		return repository.FileStat{}, err
	}
	fi, err := os.Stat(r.path(name))
	if err != nil {
		return repository.FileStat{}, err
	}
	return repository.FileStat{
		Name:    fi.Name(),
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
		IsDir:   fi.IsDir(),
	}, nil
}

// Names returns every directory entry sorted by filename.
func (r *DocumentFS) Names(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// Ping checks that the root is still a directory.
func (r *DocumentFS) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fi, err := os.Stat(r.dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s is not a directory", r.dir)
	}
	return nil
}
