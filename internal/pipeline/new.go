package pipeline

import (
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/cosq-in/memochan/internal/config"
	"github.com/cosq-in/memochan/internal/diarize"
	"github.com/cosq-in/memochan/internal/logger"
	"github.com/cosq-in/memochan/internal/preprocess"
	"github.com/cosq-in/memochan/internal/summarize"
	"github.com/cosq-in/memochan/internal/transcribe"
)

type implPipeline struct {
	cfg         *config.Config
	logger      logger.Logger
	pre         preprocess.Preprocessor
	transcriber transcribe.Transcriber
	diarizer    diarize.Diarizer     // nil when the capability is not configured
	summarizer  summarize.Summarizer // nil when the capability is not configured

	// One permit per capability: the backing inference runtimes are not safe
	// for concurrent calls, so in-flight jobs queue on these.
	transcribePermit *semaphore.Weighted
	diarizePermit    *semaphore.Weighted
	summarizePermit  *semaphore.Weighted

	capabilityTimeout time.Duration
}

// New creates a Pipeline around warm capability instances. Capabilities are
// initialized once at process start and shared by every job; nil diarizer
// and summarizer mean those stages are skipped.
func New(
	cfg *config.Config,
	log logger.Logger,
	pre preprocess.Preprocessor,
	transcriber transcribe.Transcriber,
	diarizer diarize.Diarizer,
	summarizer summarize.Summarizer,
) Pipeline {
	return &implPipeline{
		cfg:               cfg,
		logger:            log,
		pre:               pre,
		transcriber:       transcriber,
		diarizer:          diarizer,
		summarizer:        summarizer,
		transcribePermit:  semaphore.NewWeighted(1),
		diarizePermit:     semaphore.NewWeighted(1),
		summarizePermit:   semaphore.NewWeighted(1),
		capabilityTimeout: time.Duration(cfg.Pipeline.CapabilityTimeoutMinutes) * time.Minute,
	}
}
