package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cosq-in/memochan/internal/config"
	"github.com/cosq-in/memochan/internal/logger"
)

// New creates a Watcher over watchDir submitting matching new files to the
// handler, at most maxConcurrent at a time.
func New(cfg config.WatcherConfig, watchDir string, handler EventHandler, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(watchDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}

	return &implWatcher{
		watchDir:    watchDir,
		prefix:      cfg.Prefix,
		extension:   cfg.Extension,
		gracePeriod: time.Duration(cfg.GracePeriodMs) * time.Millisecond,
		handler:     handler,
		logger:      log,
		watcher:     fsw,
		seen:        make(map[string]bool),
		semaphore:   make(chan struct{}, cfg.MaxConcurrent),
	}, nil
}
