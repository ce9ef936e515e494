// Package watch ingests plain-text files dropped into a watched
// directory, as an alternative to the HTTP upload endpoint.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"docqa/internal/core/ports/driving"
	"docqa/internal/logger"
)

// Watcher feeds new .txt files from a directory into the ingest service.
type Watcher struct {
	dir    string
	ingest driving.IngestService
}

// New creates a watcher over dir. The directory is created when missing.
func New(dir string, ingest driving.IngestService) (*Watcher, error) {
	if dir == "" {
		return nil, fmt.Errorf("watch: directory is required")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("watch: creating directory: %w", err)
	}
	return &Watcher{dir: dir, ingest: ingest}, nil
}

// Run watches the directory until ctx is cancelled. Files already
// present at startup are ingested first, so a pre-populated drop
// directory is not silently skipped.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch: watching %s: %w", w.dir, err)
	}

	if err := w.ingestExisting(ctx); err != nil {
		return err
	}

	logger.Info("Watching %s for new .txt files", w.dir)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			// Create covers both new files and most editor saves; Write
			// fires for files copied in place.
			if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) {
				w.ingestPath(ctx, event.Name)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// ingestExisting ingests files already sitting in the directory.
func (w *Watcher) ingestExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("watch: reading directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		w.ingestPath(ctx, filepath.Join(w.dir, entry.Name()))
	}
	return nil
}

// ingestPath ingests one file and removes it on success. Failures are
// logged and leave the file in place for inspection.
func (w *Watcher) ingestPath(ctx context.Context, path string) {
	if !strings.HasSuffix(strings.ToLower(path), ".txt") {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Reading %s: %v", path, err)
		return
	}

	result, err := w.ingest.Ingest(ctx, filepath.Base(path), string(data))
	if err != nil {
		logger.Warn("Ingesting %s: %v", path, err)
		return
	}

	logger.Info("Ingested %s (%d chunks)", result.Name, result.ChunkCount)
	if err := os.Remove(path); err != nil {
		logger.Warn("Removing ingested file %s: %v", path, err)
	}
}
