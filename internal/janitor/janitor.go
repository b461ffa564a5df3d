package janitor

import (
	"context"
	"os"
	"sync"

	"github.com/cosq-in/memochan/internal/logger"
)

// Janitor tracks every transient file a job creates and deletes them all
// when the job finishes, whatever path it took to get there.
type Janitor struct {
	mu       sync.Mutex
	paths    []string
	released bool
	logger   logger.Logger
}

// New creates a Janitor for a single job.
func New(log logger.Logger) *Janitor {
	return &Janitor{logger: log}
}

// Register records a path for deletion on Release. Call it as soon as the
// file is created, before anything that can fail.
func (j *Janitor) Register(path string) {
	if path == "" {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.paths = append(j.paths, path)
}

// Release deletes every registered path that still exists. It runs at most
// once; later calls are no-ops. Deletion failures are logged, never returned.
func (j *Janitor) Release(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.released {
		return
	}
	j.released = true

	for _, path := range j.paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			j.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
		} else if err == nil {
			j.logger.Debug(ctx, "Cleaned up temp file: %s", path)
		}
	}
	j.paths = nil
}
