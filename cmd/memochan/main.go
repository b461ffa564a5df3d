package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cosq-in/memochan/internal/config"
	"github.com/cosq-in/memochan/internal/diarize"
	"github.com/cosq-in/memochan/internal/logger"
	"github.com/cosq-in/memochan/internal/pipeline"
	"github.com/cosq-in/memochan/internal/preprocess"
	"github.com/cosq-in/memochan/internal/transcribe"
	"github.com/cosq-in/memochan/internal/watcher"
	"github.com/cosq-in/memochan/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "MemoChan Advanced Backend")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Watching: %s", cfg.Paths.WatchDir)
	log.Info(ctx, "Device: %s (Compute: %s)", cfg.Whisper.Device, cfg.Whisper.ComputeType)
	log.Info(ctx, "Whisper model: %s", cfg.Whisper.ModelSize)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Warm capabilities, initialized once and shared by every job.
	exec := executor.New()
	pre := preprocess.New(cfg.Paths.TempDir, exec, log)
	transcriber := transcribe.New(cfg.Whisper, exec, log)
	diarizer := diarize.New(cfg.Diarization, log)
	if diarizer == nil {
		log.Info(ctx, "Tip: set HF_TOKEN and diarization.endpoint to enable speaker identification")
	} else {
		log.Info(ctx, "Diarization ready: %s", cfg.Diarization.Endpoint)
	}

	// Watch mode emits the plain transcript artifact only; summaries are a
	// request-mode feature.
	pipe := pipeline.New(cfg, log, pre, transcriber, diarizer, nil)

	w, err := watcher.New(cfg.Watcher, cfg.Paths.WatchDir, pipe.ProcessFile, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	log.Info(ctx, "Backend is in watch mode. Drop a recording to start.")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		log.Info(ctx, "Shutting down gracefully...")
		cancel()
		// Start returns only after every in-flight job has drained.
		if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
			log.Error(ctx, "Watcher error: %v", err)
		}
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error(ctx, "Watcher error: %v", err)
		}
	}

	log.Info(ctx, "MemoChan stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.WatchDir,
		cfg.Paths.OutputDir,
		cfg.Paths.TempDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
