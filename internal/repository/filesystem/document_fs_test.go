package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*DocumentFS, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "files")
	repo, err := NewDocumentFS(dir)
	require.NoError(t, err)
	return repo, dir
}

func TestNewDocumentFS(t *testing.T) {
	t.Run("creates missing directory", func(t *testing.T) {
		_, dir := newTestRepo(t)
		fi, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, fi.IsDir())
	})

	t.Run("empty dir rejected", func(t *testing.T) {
		repo, err := NewDocumentFS("")
		assert.Error(t, err)
		assert.Nil(t, repo)
	})
}

func TestDocumentFS_WriteReadRemove(t *testing.T) {
	repo, dir := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Write(ctx, "a.json", []byte(`{"x":1}`)))
	require.NoError(t, repo.Write(ctx, "a.json", []byte(`{"x":2}`)))

	got, err := repo.Read(ctx, "a.json")
	require.NoError(t, err)
	assert.Equal(t, `{"x":2}`, string(got))

	_, err = os.Stat(filepath.Join(dir, "a.json"))
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, "a.json"))

	_, err = repo.Read(ctx, "a.json")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	err = repo.Remove(ctx, "a.json")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestDocumentFS_StatAndNames(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	for _, n := range []string{"c.json", "a.json", "b.json"} {
		require.NoError(t, repo.Write(ctx, n, []byte(`{}`)))
	}

	names, err := repo.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json", "c.json"}, names)

	st, err := repo.Stat(ctx, "b.json")
	require.NoError(t, err)
	assert.Equal(t, "b.json", st.Name)
	assert.Equal(t, int64(2), st.Size)
	assert.False(t, st.IsDir)
	assert.False(t, st.ModTime.IsZero())

	_, err = repo.Stat(ctx, "missing.json")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestDocumentFS_Ping(t *testing.T) {
	repo, dir := newTestRepo(t)
	ctx := context.Background()

	assert.NoError(t, repo.Ping(ctx))

	require.NoError(t, os.RemoveAll(dir))
	assert.Error(t, repo.Ping(ctx))
}

func TestDocumentFS_CanceledContext(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Write(ctx, "a.json", []byte(`{}`)), context.Canceled)
	_, err := repo.Names(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
