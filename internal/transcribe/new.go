package transcribe

import (
	"github.com/cosq-in/memochan/internal/config"
	"github.com/cosq-in/memochan/internal/logger"
	"github.com/cosq-in/memochan/pkg/executor"
)

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber backed by the faster-whisper helper binary.
// The model is loaded once by the helper's first run and kept warm by the
// OS page cache; the pipeline serializes calls to this instance.
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
