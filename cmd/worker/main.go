package main

import (
	"context"
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
	"github.com/cosq-in/memochan/internal/server"
	"github.com/cosq-in/memochan/internal/summarize"
	"github.com/cosq-in/memochan/internal/transcribe"
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
	log.Info(ctx, "Initializing MemoChan Worker (device: %s, model: %s)", cfg.Whisper.Device, cfg.Whisper.ModelSize)

	if err := os.MkdirAll(cfg.Paths.TempDir, 0755); err != nil {
		log.Error(ctx, "Failed to create temp dir: %v", err)
		os.Exit(1)
	}

	// Warm capabilities, initialized once at process start and shared
	// read-only across invocations.
	exec := executor.New()
	pre := preprocess.New(cfg.Paths.TempDir, exec, log)
	transcriber := transcribe.New(cfg.Whisper, exec, log)
	diarizer := diarize.New(cfg.Diarization, log)
	summarizer := summarize.New(cfg.Gemini, log)

	if diarizer == nil {
		log.Warn(ctx, "Diarization disabled (no endpoint/token configured)")
	}
	if summarizer == nil {
		log.Warn(ctx, "Summarization disabled (no Gemini API keys configured)")
	}

	pipe := pipeline.New(cfg, log, pre, transcriber, diarizer, summarizer)
	srv := server.New(cfg, log, pipe)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		log.Info(ctx, "Worker listening on %s", cfg.Server.Addr)
		if err := srv.Listen(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
		os.Exit(1)
	}

	if err := srv.Shutdown(); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
	}
	log.Info(ctx, "MemoChan worker stopped")
}
