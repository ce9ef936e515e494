package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa/internal/adapters/driven/storage/memory"
	"docqa/internal/chunker"
	"docqa/internal/core/services"
)

func newTestWatcher(t *testing.T, dir string) (*Watcher, *memory.DocumentStore) {
	t.Helper()
	store := memory.NewDocumentStore()
	w, err := New(dir, services.NewIngestService(store, chunker.New()))
	require.NoError(t, err)
	return w, store
}

func TestNewRequiresDirectory(t *testing.T) {
	_, err := New("", nil)
	assert.Error(t, err)
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "drop")
	_, _ = newTestWatcher(t, dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestIngestPathRemovesFileOnSuccess(t *testing.T) {
	dir := t.TempDir()
	w, store := newTestWatcher(t, dir)

	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("vacation policy details"), 0600))

	w.ingestPath(context.Background(), path)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	docs, err := store.ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "notes.txt", docs[0].Name)
}

func TestIngestPathSkipsNonText(t *testing.T) {
	dir := t.TempDir()
	w, store := newTestWatcher(t, dir)

	path := filepath.Join(dir, "image.png")
	require.NoError(t, os.WriteFile(path, []byte("binary"), 0600))

	w.ingestPath(context.Background(), path)

	_, err := os.Stat(path)
	assert.NoError(t, err)

	docs, err := store.ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestIngestPathKeepsFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	w, store := newTestWatcher(t, dir)

	// Empty content fails ingest validation; the file stays for inspection.
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("   "), 0600))

	w.ingestPath(context.Background(), path)

	_, err := os.Stat(path)
	assert.NoError(t, err)

	docs, err := store.ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestIngestExisting(t *testing.T) {
	dir := t.TempDir()
	w, store := newTestWatcher(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("first file"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("second file"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.log"), []byte("ignored"), 0600))

	require.NoError(t, w.ingestExisting(context.Background()))

	docs, err := store.ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestRunPicksUpNewFiles(t *testing.T) {
	dir := t.TempDir()
	w, store := newTestWatcher(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to register before dropping the file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dropped.txt"), []byte("late arrival"), 0600))

	require.Eventually(t, func() bool {
		docs, err := store.ListDocuments(context.Background())
		return err == nil && len(docs) == 1
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
