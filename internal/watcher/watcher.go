package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cosq-in/memochan/internal/logger"
)

type implWatcher struct {
	watchDir    string
	prefix      string
	extension   string
	gracePeriod time.Duration
	handler     EventHandler
	logger      logger.Logger
	watcher     *fsnotify.Watcher

	mu   sync.Mutex
	seen map[string]bool

	semaphore chan struct{}
	wg        sync.WaitGroup
}

// Start monitors the watch directory for newly arrived recordings. Files
// already present at startup never fire; each new name triggers at most one
// job. Processing runs in worker goroutines behind the semaphore so the
// event loop keeps detecting arrivals during long jobs.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for %s*%s", w.watchDir, w.prefix, w.extension)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Recording watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			name := filepath.Base(event.Name)
			if !w.isRecording(name) {
				w.logger.Debug(ctx, "Ignoring non-recording file: %s", name)
				continue
			}
			if !w.markSeen(name) {
				continue
			}

			w.logger.Info(ctx, "New recording detected: %s", name)
			w.wg.Add(1)
			go w.submit(ctx, event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// submit waits out the grace period so an in-progress download can finish
// writing, then runs the handler under the concurrency limit. Shutdown
// abandons jobs still waiting here, but once the handler starts it runs on a
// context detached from shutdown so the job finishes and wg.Wait drains it.
func (w *implWatcher) submit(ctx context.Context, filePath string) {
	defer w.wg.Done()

	select {
	case <-time.After(w.gracePeriod):
	case <-ctx.Done():
		return
	}

	select {
	case w.semaphore <- struct{}{}:
		defer func() { <-w.semaphore }()
	case <-ctx.Done():
		return
	}

	jobCtx := context.WithoutCancel(ctx)
	if err := w.handler(jobCtx, filePath); err != nil {
		w.logger.Error(jobCtx, "Failed to process %s: %v", filePath, err)
	}
}

// Stop closes the underlying filesystem watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isRecording checks the recording naming convention: fixed prefix plus
// audio extension.
func (w *implWatcher) isRecording(name string) bool {
	return strings.HasPrefix(name, w.prefix) &&
		strings.EqualFold(filepath.Ext(name), w.extension)
}

// markSeen records the name and reports whether it was new. Duplicate
// filesystem events for the same name submit only one job.
func (w *implWatcher) markSeen(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.seen[name] {
		return false
	}
	w.seen[name] = true
	return true
}
